package domain

// OfferConditions are optional; a nil field means no restriction.
type OfferConditions struct {
	MaxDaysPastDue *int `json:"max_days_past_due,omitempty"`
	MinCreditScore *int `json:"min_credit_score,omitempty"`
}

// Offer is one consolidation offer from the bank catalog.
type Offer struct {
	OfferID              string          `json:"offer_id"`
	ProductTypesEligible []string        `json:"product_types_eligible"`
	Conditions           OfferConditions `json:"conditions"`
	NewRatePct           float64         `json:"new_rate_pct"`
	MaxTermMonths        int             `json:"max_term_months"`
}

func (o Offer) AcceptsSubProduct(subProductType string) bool {
	for _, t := range o.ProductTypesEligible {
		if t == subProductType {
			return true
		}
	}
	return false
}
