package repository

import (
	"encoding/json"
	"fmt"

	"debt-projection/domain"
)

// decodeOffers parses the offer catalog, keeping file order.
func decodeOffers(name string, data []byte) ([]domain.Offer, error) {
	var offers []domain.Offer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	for i, o := range offers {
		if o.OfferID == "" {
			return nil, fmt.Errorf("%s: offer %d has no offer_id", name, i)
		}
		if o.MaxTermMonths < 1 {
			return nil, fmt.Errorf("%s: offer %s max_term_months must be at least 1, got %d", name, o.OfferID, o.MaxTermMonths)
		}
		if o.NewRatePct < 0 {
			return nil, fmt.Errorf("%s: offer %s new_rate_pct must not be negative", name, o.OfferID)
		}
	}
	if offers == nil {
		offers = []domain.Offer{}
	}
	return offers, nil
}
