package service

import (
	"github.com/labstack/gommon/log"

	"debt-projection/domain"
	"debt-projection/repository"
)

// DebtAnalyzer runs the three repayment scenarios for one customer
// product. It only reads from its repository and keeps all running
// balances in locals, so one analyzer can serve concurrent requests.
type DebtAnalyzer struct {
	repo repository.DebtDataRepository
}

func NewDebtAnalyzer(repo repository.DebtDataRepository) *DebtAnalyzer {
	return &DebtAnalyzer{repo: repo}
}

// Analyze returns a *domain.NotFoundError when the product or the
// customer profile is missing.
func (a *DebtAnalyzer) Analyze(customerID string, productType domain.ProductType) (domain.AnalysisResult, error) {
	product, ok := a.FindProduct(customerID, productType)
	if !ok {
		return domain.AnalysisResult{}, domain.NewProductNotFound(customerID, productType)
	}

	customer, ok := a.FindCustomer(customerID)
	if !ok {
		return domain.AnalysisResult{}, domain.NewCustomerNotFound(customerID)
	}

	log.Debugf("[DebtAnalyzer] customer=%s product=%s payment_history=%d",
		customerID, product.ProductID, len(a.repo.PaymentHistory(customerID)))

	minimum := a.MinimumPaymentScenario(customerID, product)
	optimized := a.OptimizedPaymentScenario(customerID, product, customer)
	consolidation := a.ConsolidationScenario(customerID, product, customer)

	return domain.AnalysisResult{
		CustomerID:  customerID,
		ProductType: productType,
		ProductID:   product.ProductID,
		Scenarios: domain.Scenarios{
			MinimumPayment:   minimum,
			OptimizedPayment: optimized,
			Consolidation:    consolidation,
		},
		Comparison: a.CompareScenarios(minimum, optimized, consolidation),
	}, nil
}
