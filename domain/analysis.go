package domain

// AnalyzeRequest is the body accepted by the analyze endpoint.
type AnalyzeRequest struct {
	CustomerID  string `json:"customer_id"`
	ProductType string `json:"product_type"`
}

// ProjectionEntry is one period of the minimum and optimized ledgers.
type ProjectionEntry struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	LateFee   float64 `json:"late_fee"`
	Balance   float64 `json:"balance"`
}

// ConsolidationEntry is one period of the consolidated loan ledger.
type ConsolidationEntry struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

type ScenarioSummary struct {
	OriginalBalance       float64  `json:"original_balance"`
	TotalPaid             float64  `json:"total_paid"`
	TotalInterest         float64  `json:"total_interest"`
	MonthsToPayoff        int      `json:"months_to_payoff"`
	MonthlyPaymentAvg     float64  `json:"monthly_payment_avg"`
	SafeMonthlyAllocation *float64 `json:"safe_monthly_allocation,omitempty"`
}

type ConsolidationSummary struct {
	OriginalBalance float64 `json:"original_balance"`
	TotalPaid       float64 `json:"total_paid"`
	TotalInterest   float64 `json:"total_interest"`
	MonthsToPayoff  int     `json:"months_to_payoff"`
	MonthlyPayment  float64 `json:"monthly_payment"`
}

type ScenarioHeader struct {
	ScenarioName string      `json:"scenario_name"`
	CustomerID   string      `json:"customer_id"`
	ProductID    string      `json:"product_id"`
	ProductType  ProductType `json:"product_type"`
}

// PaymentScenario is the output of the minimum and optimized simulators.
type PaymentScenario struct {
	ScenarioHeader
	Summary           ScenarioSummary   `json:"summary"`
	MonthlyProjection []ProjectionEntry `json:"monthly_projection"`
}

type OfferDetails struct {
	NewRatePct      float64 `json:"new_rate_pct"`
	NewTermMonths   int     `json:"new_term_months"`
	OriginalRatePct float64 `json:"original_rate_pct"`
}

// ConsolidationScenario is either an eligible projection or, when no
// offer matched, the list of violated conditions.
type ConsolidationScenario struct {
	ScenarioHeader
	Eligible          bool                  `json:"eligible"`
	Message           string                `json:"message,omitempty"`
	Reasons           []string              `json:"reasons,omitempty"`
	OfferID           string                `json:"offer_id,omitempty"`
	OfferDetails      *OfferDetails         `json:"offer_details,omitempty"`
	Summary           *ConsolidationSummary `json:"summary,omitempty"`
	MonthlyProjection []ConsolidationEntry  `json:"monthly_projection,omitempty"`
}

type Scenarios struct {
	MinimumPayment   PaymentScenario       `json:"minimum_payment"`
	OptimizedPayment PaymentScenario       `json:"optimized_payment"`
	Consolidation    ConsolidationScenario `json:"consolidation"`
}

type Savings struct {
	InterestSaved   float64 `json:"interest_saved"`
	TotalSaved      float64 `json:"total_saved"`
	TimeSavedMonths int     `json:"time_saved_months"`
}

type BaselineComparison struct {
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
	Months        int     `json:"months"`
}

type ScenarioComparison struct {
	TotalPaid        float64 `json:"total_paid"`
	TotalInterest    float64 `json:"total_interest"`
	Months           int     `json:"months"`
	SavingsVsMinimum Savings `json:"savings_vs_minimum"`
}

// ConsolidationComparison serializes as the full comparison when
// eligible and as {"eligible": false} otherwise.
type ConsolidationComparison struct {
	*ScenarioComparison
	Eligible *bool `json:"eligible,omitempty"`
}

type Comparison struct {
	MinimumPayment   BaselineComparison      `json:"minimum_payment"`
	OptimizedPayment ScenarioComparison      `json:"optimized_payment"`
	Consolidation    ConsolidationComparison `json:"consolidation"`
}

// AnalysisResult is the full response for one customer/product pair.
type AnalysisResult struct {
	CustomerID  string      `json:"customer_id"`
	ProductType ProductType `json:"product_type"`
	ProductID   string      `json:"product_id"`
	Scenarios   Scenarios   `json:"scenarios"`
	Comparison  Comparison  `json:"comparison"`
}
