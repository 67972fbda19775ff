package repository

import "debt-projection/domain"

// DebtDataRepository gives the engine read-only access to one snapshot.
// The bool result is false on a lookup miss.
type DebtDataRepository interface {
	FindLoan(customerID string) (domain.LoanRow, bool)
	FindCard(customerID string) (domain.CardRow, bool)
	FindCashflow(customerID string) (domain.CashflowRow, bool)
	FindCreditScore(customerID string) (domain.CreditScoreRow, bool)
	PaymentHistory(customerID string) []domain.PaymentRow
	Offers() []domain.Offer
}
