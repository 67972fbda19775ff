package service

import (
	"math"

	"debt-projection/domain"
)

// minimumRequiredPayment is the contractual payment for the current
// balance, without any late fee.
func minimumRequiredPayment(product domain.Product, balance float64) float64 {
	switch product.Type {
	case domain.ProductTypeLoan:
		if product.Loan == nil {
			return 0
		}
		return product.Loan.MonthlyPayment
	case domain.ProductTypeCard:
		if product.Card == nil {
			return cardMinimumPayment(balance, 0)
		}
		return cardMinimumPayment(balance, product.Card.MinPaymentPct)
	}
	return 0
}

// lateFeeFor charges the late fee once, in the first month, while past due.
func lateFeeFor(product domain.Product, month int) float64 {
	if product.IsPastDue() && month == 1 {
		return product.LateFeeAmount
	}
	return 0
}

func newHeader(name, customerID string, product domain.Product) domain.ScenarioHeader {
	return domain.ScenarioHeader{
		ScenarioName: name,
		CustomerID:   customerID,
		ProductID:    product.ProductID,
		ProductType:  product.Type,
	}
}

// MinimumPaymentScenario simula pagar solo el mínimo contractual hasta
// saldar la deuda o llegar a MaxPayoffMonths.
func (a *DebtAnalyzer) MinimumPaymentScenario(customerID string, product domain.Product) domain.PaymentScenario {
	balance := product.Balance
	rate := monthlyRate(product.EffectiveRatePct())

	projection := []domain.ProjectionEntry{}
	month := 0
	totalPaid := 0.0
	totalInterest := 0.0

	for balance > DebtBalanceTolerance && month < MaxPayoffMonths {
		month++

		interest := balance * rate
		payment := minimumRequiredPayment(product, balance)

		lateFee := lateFeeFor(product, month)
		payment += lateFee

		// No pagar más que el saldo más intereses
		if payment > balance+interest {
			payment = balance + interest
		}

		principal := payment - interest - lateFee

		balance -= principal
		totalPaid += payment
		totalInterest += interest

		projection = append(projection, domain.ProjectionEntry{
			Month:     month,
			Payment:   roundTo2Decimals(payment),
			Interest:  roundTo2Decimals(interest),
			Principal: roundTo2Decimals(principal),
			LateFee:   roundTo2Decimals(lateFee),
			Balance:   roundTo2Decimals(math.Max(balance, 0)),
		})
	}

	return domain.PaymentScenario{
		ScenarioHeader:    newHeader(ScenarioMinimumPayment, customerID, product),
		Summary:           paymentSummary(product.Balance, totalPaid, totalInterest, month),
		MonthlyProjection: projection,
	}
}

func paymentSummary(originalBalance, totalPaid, totalInterest float64, months int) domain.ScenarioSummary {
	avg := 0.0
	if months > 0 {
		avg = totalPaid / float64(months)
	}
	return domain.ScenarioSummary{
		OriginalBalance:   roundTo2Decimals(originalBalance),
		TotalPaid:         roundTo2Decimals(totalPaid),
		TotalInterest:     roundTo2Decimals(totalInterest),
		MonthsToPayoff:    months,
		MonthlyPaymentAvg: roundTo2Decimals(avg),
	}
}
