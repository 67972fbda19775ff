package service

import "debt-projection/domain"

// FindProduct maps the first loan or card row of the customer to a
// Product. The bool is false when the customer has no such product.
func (a *DebtAnalyzer) FindProduct(customerID string, productType domain.ProductType) (domain.Product, bool) {
	switch productType {
	case domain.ProductTypeLoan:
		row, ok := a.repo.FindLoan(customerID)
		if !ok {
			return domain.Product{}, false
		}
		return domain.Product{
			ProductID:      row.LoanID,
			Type:           domain.ProductTypeLoan,
			SubProductType: row.ProductType,
			Balance:        row.Principal,
			AnnualRatePct:  row.AnnualRatePct,
			PenaltyRatePct: row.PenaltyRatePct,
			DaysPastDue:    row.DaysPastDue,
			LateFeeAmount:  row.LateFeeAmount,
			Loan: &domain.LoanTerms{
				MonthlyPayment:      row.MonthlyPayment,
				RemainingTermMonths: row.RemainingTermMonths,
				Collateral:          row.Collateral,
			},
		}, true

	case domain.ProductTypeCard:
		row, ok := a.repo.FindCard(customerID)
		if !ok {
			return domain.Product{}, false
		}
		return domain.Product{
			ProductID:      row.CardID,
			Type:           domain.ProductTypeCard,
			SubProductType: row.ProductType,
			Balance:        row.Balance,
			AnnualRatePct:  row.AnnualRatePct,
			PenaltyRatePct: row.PenaltyRatePct,
			DaysPastDue:    row.DaysPastDue,
			LateFeeAmount:  row.LateFeeAmount,
			Card: &domain.CardTerms{
				MinPaymentPct: row.MinPaymentPct,
				CreditLimit:   row.CreditLimit,
			},
		}, true
	}
	return domain.Product{}, false
}

// FindCustomer needs both a cashflow row and a credit score row; a
// customer missing either is treated as absent.
func (a *DebtAnalyzer) FindCustomer(customerID string) (domain.Customer, bool) {
	cashflow, ok := a.repo.FindCashflow(customerID)
	if !ok {
		return domain.Customer{}, false
	}
	credit, ok := a.repo.FindCreditScore(customerID)
	if !ok {
		return domain.Customer{}, false
	}
	return domain.Customer{
		MonthlyIncome:        cashflow.MonthlyIncomeAvg,
		EssentialExpenses:    cashflow.EssentialExpensesAvg,
		IncomeVariabilityPct: cashflow.IncomeVariabilityPct,
		CreditScore:          credit.CreditScore,
	}, true
}
