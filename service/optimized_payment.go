package service

import (
	"math"

	"debt-projection/domain"
)

// SafeMonthlyAllocation is the disposable income left after essential
// expenses and a reserve proportional to income variability.
func SafeMonthlyAllocation(customer domain.Customer) float64 {
	available := customer.MonthlyIncome - customer.EssentialExpenses
	buffer := available * (customer.IncomeVariabilityPct / 100)
	return available - buffer
}

// OptimizedPaymentScenario pays as much of the safe allocation as the
// balance allows, never less than the minimum plus any late fee.
func (a *DebtAnalyzer) OptimizedPaymentScenario(customerID string, product domain.Product, customer domain.Customer) domain.PaymentScenario {
	balance := product.Balance
	rate := monthlyRate(product.EffectiveRatePct())
	safeAllocation := SafeMonthlyAllocation(customer)

	projection := []domain.ProjectionEntry{}
	month := 0
	totalPaid := 0.0
	totalInterest := 0.0

	for balance > DebtBalanceTolerance && month < MaxPayoffMonths {
		month++

		interest := balance * rate
		minPayment := minimumRequiredPayment(product, balance)
		lateFee := lateFeeFor(product, month)

		// The late fee widens both bounds; the floor is applied last and wins.
		payment := math.Min(safeAllocation, balance+interest+lateFee)
		payment = math.Max(payment, minPayment+lateFee)

		principal := payment - interest - lateFee

		balance -= principal
		totalPaid += payment
		totalInterest += interest

		projection = append(projection, domain.ProjectionEntry{
			Month:     month,
			Payment:   roundTo2Decimals(payment),
			Interest:  roundTo2Decimals(interest),
			Principal: roundTo2Decimals(principal),
			LateFee:   roundTo2Decimals(lateFee),
			Balance:   roundTo2Decimals(math.Max(balance, 0)),
		})
	}

	summary := paymentSummary(product.Balance, totalPaid, totalInterest, month)
	safe := roundTo2Decimals(safeAllocation)
	summary.SafeMonthlyAllocation = &safe

	return domain.PaymentScenario{
		ScenarioHeader:    newHeader(ScenarioOptimizedPayment, customerID, product),
		Summary:           summary,
		MonthlyProjection: projection,
	}
}
