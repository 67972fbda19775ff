package service

import (
	"fmt"
	"math"

	"debt-projection/domain"
)

// CheckConsolidationEligibility returns the first offer whose every
// condition holds. When none does, it returns every violated condition
// of every offer, in catalog order.
func (a *DebtAnalyzer) CheckConsolidationEligibility(product domain.Product, customer domain.Customer) (*domain.Offer, []string) {
	reasons := []string{}

	offers := a.repo.Offers()
	for i := range offers {
		offer := offers[i]
		var offerReasons []string

		if !offer.AcceptsSubProduct(product.SubProductType) {
			offerReasons = append(offerReasons, fmt.Sprintf(
				"Product type '%s' not eligible for offer %s.",
				product.SubProductType, offer.OfferID))
		}

		if maxDays := offer.Conditions.MaxDaysPastDue; maxDays != nil && product.DaysPastDue > *maxDays {
			offerReasons = append(offerReasons, fmt.Sprintf(
				"Days past due %d exceeds max allowed %d for offer %s.",
				product.DaysPastDue, *maxDays, offer.OfferID))
		}

		if minScore := offer.Conditions.MinCreditScore; minScore != nil && customer.CreditScore < *minScore {
			offerReasons = append(offerReasons, fmt.Sprintf(
				"Credit score %d is less than required %d for offer %s.",
				customer.CreditScore, *minScore, offer.OfferID))
		}

		if len(offerReasons) == 0 {
			return &offer, nil
		}
		reasons = append(reasons, offerReasons...)
	}

	return nil, reasons
}

// ConsolidationScenario refinances the balance under the first eligible
// offer and projects exactly max_term_months installments.
func (a *DebtAnalyzer) ConsolidationScenario(customerID string, product domain.Product, customer domain.Customer) domain.ConsolidationScenario {
	header := newHeader(ScenarioConsolidation, customerID, product)

	offer, reasons := a.CheckConsolidationEligibility(product, customer)
	if offer == nil {
		return domain.ConsolidationScenario{
			ScenarioHeader: header,
			Eligible:       false,
			Message:        NoConsolidationMessage,
			Reasons:        reasons,
		}
	}

	principal := product.Balance
	term := offer.MaxTermMonths
	rate := monthlyRate(offer.NewRatePct)
	payment := fixedInstallment(principal, rate, term)

	balance := principal
	projection := make([]domain.ConsolidationEntry, 0, term)
	totalPaid := 0.0
	totalInterest := 0.0

	for month := 1; month <= term; month++ {
		interest := balance * rate
		principalPaid := payment - interest

		balance -= principalPaid
		totalPaid += payment
		totalInterest += interest

		projection = append(projection, domain.ConsolidationEntry{
			Month:     month,
			Payment:   roundTo2Decimals(payment),
			Interest:  roundTo2Decimals(interest),
			Principal: roundTo2Decimals(principalPaid),
			Balance:   roundTo2Decimals(math.Max(balance, 0)),
		})
	}

	return domain.ConsolidationScenario{
		ScenarioHeader: header,
		Eligible:       true,
		OfferID:        offer.OfferID,
		OfferDetails: &domain.OfferDetails{
			NewRatePct:      offer.NewRatePct,
			NewTermMonths:   term,
			OriginalRatePct: product.AnnualRatePct,
		},
		Summary: &domain.ConsolidationSummary{
			OriginalBalance: roundTo2Decimals(principal),
			TotalPaid:       roundTo2Decimals(totalPaid),
			TotalInterest:   roundTo2Decimals(totalInterest),
			MonthsToPayoff:  term,
			MonthlyPayment:  roundTo2Decimals(payment),
		},
		MonthlyProjection: projection,
	}
}
