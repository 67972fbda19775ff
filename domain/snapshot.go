package domain

import "time"

type LoanRow struct {
	CustomerID          string
	LoanID              string
	ProductType         string
	Principal           float64
	AnnualRatePct       float64
	RemainingTermMonths int
	DaysPastDue         int
	MonthlyPayment      float64
	LateFeeAmount       float64
	PenaltyRatePct      float64
	Collateral          string
}

type CardRow struct {
	CustomerID     string
	CardID         string
	ProductType    string
	Balance        float64
	AnnualRatePct  float64
	MinPaymentPct  float64
	DaysPastDue    int
	LateFeeAmount  float64
	PenaltyRatePct float64
	CreditLimit    float64
}

type CashflowRow struct {
	CustomerID           string
	MonthlyIncomeAvg     float64
	IncomeVariabilityPct float64
	EssentialExpensesAvg float64
}

type CreditScoreRow struct {
	CustomerID  string
	CreditScore int
	// Extra keeps columns the engine does not read, keyed by header.
	Extra map[string]string
}

// PaymentRow is kept opaque: only customer_id is interpreted.
type PaymentRow struct {
	CustomerID string
	Fields     map[string]string
}

// Snapshot is the full read-only dataset loaded once at startup.
type Snapshot struct {
	Loans        []LoanRow
	Cards        []CardRow
	Payments     []PaymentRow
	CreditScores []CreditScoreRow
	Cashflows    []CashflowRow
	Offers       []Offer
	LoadedAt     time.Time
}
