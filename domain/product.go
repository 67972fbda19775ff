package domain

type ProductType string

const (
	ProductTypeLoan ProductType = "loan"
	ProductTypeCard ProductType = "card"
)

// ParseProductType accepts only the exact lowercase discriminators.
func ParseProductType(s string) (ProductType, error) {
	switch ProductType(s) {
	case ProductTypeLoan, ProductTypeCard:
		return ProductType(s), nil
	}
	return "", ErrInvalidProductType
}

// LoanTerms holds the fields only a loan carries.
type LoanTerms struct {
	MonthlyPayment      float64
	RemainingTermMonths int
	Collateral          string
}

// CardTerms holds the fields only a credit card carries.
type CardTerms struct {
	MinPaymentPct float64
	CreditLimit   float64
}

// Product is a loan or card selected for one customer. Exactly one of
// Loan or Card is set, matching Type.
type Product struct {
	ProductID      string
	Type           ProductType
	SubProductType string
	Balance        float64
	AnnualRatePct  float64
	PenaltyRatePct float64
	DaysPastDue    int
	LateFeeAmount  float64

	Loan *LoanTerms
	Card *CardTerms
}

func (p Product) IsPastDue() bool {
	return p.DaysPastDue > 0
}

// EffectiveRatePct is the penalty rate while past due, the contract rate otherwise.
func (p Product) EffectiveRatePct() float64 {
	if p.IsPastDue() {
		return p.PenaltyRatePct
	}
	return p.AnnualRatePct
}

// Customer is the cashflow and credit profile used by the optimized
// and consolidation scenarios.
type Customer struct {
	MonthlyIncome        float64
	EssentialExpenses    float64
	IncomeVariabilityPct float64
	CreditScore          int
}
