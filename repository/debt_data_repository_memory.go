package repository

import "debt-projection/domain"

// DebtDataRepositoryMemory is an in-memory implementation of
// DebtDataRepository over a loaded snapshot. It never mutates the
// snapshot, so it is safe for concurrent readers.
type DebtDataRepositoryMemory struct {
	snap *domain.Snapshot
}

// NewDebtDataRepositoryMemory wraps a snapshot. A nil snapshot behaves as empty.
func NewDebtDataRepositoryMemory(snap *domain.Snapshot) *DebtDataRepositoryMemory {
	if snap == nil {
		snap = &domain.Snapshot{}
	}
	return &DebtDataRepositoryMemory{snap: snap}
}

// FindLoan returns the first loan row for the customer.
func (r *DebtDataRepositoryMemory) FindLoan(customerID string) (domain.LoanRow, bool) {
	for _, row := range r.snap.Loans {
		if row.CustomerID == customerID {
			return row, true
		}
	}
	return domain.LoanRow{}, false
}

// FindCard returns the first card row for the customer.
func (r *DebtDataRepositoryMemory) FindCard(customerID string) (domain.CardRow, bool) {
	for _, row := range r.snap.Cards {
		if row.CustomerID == customerID {
			return row, true
		}
	}
	return domain.CardRow{}, false
}

func (r *DebtDataRepositoryMemory) FindCashflow(customerID string) (domain.CashflowRow, bool) {
	for _, row := range r.snap.Cashflows {
		if row.CustomerID == customerID {
			return row, true
		}
	}
	return domain.CashflowRow{}, false
}

func (r *DebtDataRepositoryMemory) FindCreditScore(customerID string) (domain.CreditScoreRow, bool) {
	for _, row := range r.snap.CreditScores {
		if row.CustomerID == customerID {
			return row, true
		}
	}
	return domain.CreditScoreRow{}, false
}

func (r *DebtDataRepositoryMemory) PaymentHistory(customerID string) []domain.PaymentRow {
	var out []domain.PaymentRow
	for _, row := range r.snap.Payments {
		if row.CustomerID == customerID {
			out = append(out, row)
		}
	}
	return out
}

// Offers returns the catalog in file order.
func (r *DebtDataRepositoryMemory) Offers() []domain.Offer {
	return r.snap.Offers
}
