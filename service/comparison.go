package service

import "debt-projection/domain"

// savingsVsMinimum subtracts the reported summary values; it does not
// recompute anything from the ledgers.
func savingsVsMinimum(base domain.ScenarioSummary, totalPaid, totalInterest float64, months int) domain.Savings {
	return domain.Savings{
		InterestSaved:   roundTo2Decimals(base.TotalInterest - totalInterest),
		TotalSaved:      roundTo2Decimals(base.TotalPaid - totalPaid),
		TimeSavedMonths: base.MonthsToPayoff - months,
	}
}

// CompareScenarios uses the minimum payment scenario as the baseline.
func (a *DebtAnalyzer) CompareScenarios(
	minimum domain.PaymentScenario,
	optimized domain.PaymentScenario,
	consolidation domain.ConsolidationScenario,
) domain.Comparison {
	base := minimum.Summary

	comparison := domain.Comparison{
		MinimumPayment: domain.BaselineComparison{
			TotalPaid:     base.TotalPaid,
			TotalInterest: base.TotalInterest,
			Months:        base.MonthsToPayoff,
		},
		OptimizedPayment: domain.ScenarioComparison{
			TotalPaid:     optimized.Summary.TotalPaid,
			TotalInterest: optimized.Summary.TotalInterest,
			Months:        optimized.Summary.MonthsToPayoff,
			SavingsVsMinimum: savingsVsMinimum(base,
				optimized.Summary.TotalPaid,
				optimized.Summary.TotalInterest,
				optimized.Summary.MonthsToPayoff),
		},
	}

	if consolidation.Eligible && consolidation.Summary != nil {
		s := consolidation.Summary
		comparison.Consolidation = domain.ConsolidationComparison{
			ScenarioComparison: &domain.ScenarioComparison{
				TotalPaid:        s.TotalPaid,
				TotalInterest:    s.TotalInterest,
				Months:           s.MonthsToPayoff,
				SavingsVsMinimum: savingsVsMinimum(base, s.TotalPaid, s.TotalInterest, s.MonthsToPayoff),
			},
		}
	} else {
		eligible := false
		comparison.Consolidation = domain.ConsolidationComparison{Eligible: &eligible}
	}

	return comparison
}
