package service

import "math"

// monthlyRate converts an annual percentage rate to a monthly fraction.
func monthlyRate(annualRatePct float64) float64 {
	return (annualRatePct / 100) / 12
}

// fixedInstallment is the level payment that retires principal in
// termMonths periods at the given monthly rate.
func fixedInstallment(principal, rate float64, termMonths int) float64 {
	n := float64(termMonths)
	if rate > 0 {
		growth := math.Pow(1+rate, n)
		return principal * rate * growth / (growth - 1)
	}
	return principal / n
}

// cardMinimumPayment applies the card percentage with its $25 floor.
func cardMinimumPayment(balance, minPaymentPct float64) float64 {
	return math.Max(balance*(minPaymentPct/100), CardMinimumPayment)
}
