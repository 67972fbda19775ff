package service

import (
	"math"
	"testing"

	"debt-projection/domain"
	"debt-projection/repository"
)

func intPtr(v int) *int { return &v }

func newTestAnalyzer(snap *domain.Snapshot) *DebtAnalyzer {
	return NewDebtAnalyzer(repository.NewDebtDataRepositoryMemory(snap))
}

func loanProduct(balance, ratePct, payment float64, term int) domain.Product {
	return domain.Product{
		ProductID:      "L-1",
		Type:           domain.ProductTypeLoan,
		SubProductType: "personal_loan",
		Balance:        balance,
		AnnualRatePct:  ratePct,
		PenaltyRatePct: ratePct,
		Loan: &domain.LoanTerms{
			MonthlyPayment:      payment,
			RemainingTermMonths: term,
		},
	}
}

func cardProduct(balance, ratePct, minPct float64) domain.Product {
	return domain.Product{
		ProductID:      "C-1",
		Type:           domain.ProductTypeCard,
		SubProductType: "credit_card",
		Balance:        balance,
		AnnualRatePct:  ratePct,
		PenaltyRatePct: ratePct,
		Card: &domain.CardTerms{
			MinPaymentPct: minPct,
			CreditLimit:   5000,
		},
	}
}

func assertClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: expected %.4f, got %.4f", name, want, got)
	}
}
