package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"

	"debt-projection/domain"
)

// BlobNames are the blob names of the six source datasets.
type BlobNames struct {
	Loans    string
	Cards    string
	Payments string
	Credit   string
	Cashflow string
	Offers   string
}

func DefaultBlobNames() BlobNames {
	return BlobNames{
		Loans:    "loans.csv",
		Cards:    "cards.csv",
		Payments: "payments_history.csv",
		Credit:   "credit_score_history.csv",
		Cashflow: "customer_cashflow.csv",
		Offers:   "bank_offers.json",
	}
}

// SnapshotLoader downloads and parses every dataset from a BlobStore.
type SnapshotLoader struct {
	store BlobStore
	names BlobNames
}

func NewSnapshotLoader(store BlobStore, names BlobNames) *SnapshotLoader {
	return &SnapshotLoader{store: store, names: names}
}

// Load fails on the first missing or malformed dataset.
func (l *SnapshotLoader) Load(ctx context.Context) (*domain.Snapshot, error) {
	log.Infof("[SnapshotLoader] Downloading datasets")

	loans, err := l.loadTable(ctx, l.names.Loans)
	if err != nil {
		return nil, err
	}
	cards, err := l.loadTable(ctx, l.names.Cards)
	if err != nil {
		return nil, err
	}
	payments, err := l.loadTable(ctx, l.names.Payments)
	if err != nil {
		return nil, err
	}
	credit, err := l.loadTable(ctx, l.names.Credit)
	if err != nil {
		return nil, err
	}
	cashflow, err := l.loadTable(ctx, l.names.Cashflow)
	if err != nil {
		return nil, err
	}
	offersData, err := l.store.Get(ctx, l.names.Offers)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", l.names.Offers, err)
	}

	snap := &domain.Snapshot{LoadedAt: time.Now()}

	if snap.Loans, err = parseLoans(loans); err != nil {
		return nil, err
	}
	if snap.Cards, err = parseCards(cards); err != nil {
		return nil, err
	}
	if snap.Payments, err = parsePayments(payments); err != nil {
		return nil, err
	}
	if snap.CreditScores, err = parseCreditScores(credit); err != nil {
		return nil, err
	}
	if snap.Cashflows, err = parseCashflows(cashflow); err != nil {
		return nil, err
	}
	if snap.Offers, err = decodeOffers(l.names.Offers, offersData); err != nil {
		return nil, err
	}

	log.Infof("[SnapshotLoader] Loaded loans=%d cards=%d payments=%d credit=%d cashflow=%d offers=%d",
		len(snap.Loans), len(snap.Cards), len(snap.Payments),
		len(snap.CreditScores), len(snap.Cashflows), len(snap.Offers))
	return snap, nil
}

func (l *SnapshotLoader) loadTable(ctx context.Context, name string) (*table, error) {
	data, err := l.store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	return readTable(name, data)
}

// skipRow drops rows without a customer id, as blank spreadsheet
// lines commonly appear at the end of exported files.
func skipRow(t *table, row []string, line int) bool {
	if t.cell(row, "customer_id") != "" {
		return false
	}
	log.Warnf("[SnapshotLoader] %s line %d: skipping row without customer_id", t.name, line)
	return true
}

func parseLoans(t *table) ([]domain.LoanRow, error) {
	if err := t.require("customer_id", "loan_id", "product_type", "principal",
		"annual_rate_pct", "remaining_term_months", "days_past_due",
		"loan_monthly_payment", "late_fee_amount", "penalty_rate_pct", "collateral"); err != nil {
		return nil, err
	}

	rows := make([]domain.LoanRow, 0, len(t.rows))
	for i, rec := range t.rows {
		line := i + 2
		if skipRow(t, rec, line) {
			continue
		}
		r := domain.LoanRow{
			CustomerID:  t.cell(rec, "customer_id"),
			LoanID:      t.cell(rec, "loan_id"),
			ProductType: t.cell(rec, "product_type"),
			Collateral:  t.cell(rec, "collateral"),
		}
		var err error
		if r.Principal, err = t.float(rec, line, "principal"); err != nil {
			return nil, err
		}
		if r.AnnualRatePct, err = t.float(rec, line, "annual_rate_pct"); err != nil {
			return nil, err
		}
		if r.RemainingTermMonths, err = t.int(rec, line, "remaining_term_months"); err != nil {
			return nil, err
		}
		if r.DaysPastDue, err = t.int(rec, line, "days_past_due"); err != nil {
			return nil, err
		}
		if r.MonthlyPayment, err = t.float(rec, line, "loan_monthly_payment"); err != nil {
			return nil, err
		}
		if r.LateFeeAmount, err = t.float(rec, line, "late_fee_amount"); err != nil {
			return nil, err
		}
		if r.PenaltyRatePct, err = t.float(rec, line, "penalty_rate_pct"); err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func parseCards(t *table) ([]domain.CardRow, error) {
	if err := t.require("customer_id", "card_id", "product_type", "balance",
		"annual_rate_pct", "min_payment_pct", "days_past_due",
		"late_fee_amount", "penalty_rate_pct", "card_credit_limit"); err != nil {
		return nil, err
	}

	rows := make([]domain.CardRow, 0, len(t.rows))
	for i, rec := range t.rows {
		line := i + 2
		if skipRow(t, rec, line) {
			continue
		}
		r := domain.CardRow{
			CustomerID:  t.cell(rec, "customer_id"),
			CardID:      t.cell(rec, "card_id"),
			ProductType: t.cell(rec, "product_type"),
		}
		var err error
		if r.Balance, err = t.float(rec, line, "balance"); err != nil {
			return nil, err
		}
		if r.AnnualRatePct, err = t.float(rec, line, "annual_rate_pct"); err != nil {
			return nil, err
		}
		if r.MinPaymentPct, err = t.float(rec, line, "min_payment_pct"); err != nil {
			return nil, err
		}
		if r.DaysPastDue, err = t.int(rec, line, "days_past_due"); err != nil {
			return nil, err
		}
		if r.LateFeeAmount, err = t.float(rec, line, "late_fee_amount"); err != nil {
			return nil, err
		}
		if r.PenaltyRatePct, err = t.float(rec, line, "penalty_rate_pct"); err != nil {
			return nil, err
		}
		if r.CreditLimit, err = t.float(rec, line, "card_credit_limit"); err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func parseCashflows(t *table) ([]domain.CashflowRow, error) {
	if err := t.require("customer_id", "monthly_income_avg",
		"income_variability_pct", "essential_expenses_avg"); err != nil {
		return nil, err
	}

	rows := make([]domain.CashflowRow, 0, len(t.rows))
	for i, rec := range t.rows {
		line := i + 2
		if skipRow(t, rec, line) {
			continue
		}
		r := domain.CashflowRow{CustomerID: t.cell(rec, "customer_id")}
		var err error
		if r.MonthlyIncomeAvg, err = t.float(rec, line, "monthly_income_avg"); err != nil {
			return nil, err
		}
		if r.IncomeVariabilityPct, err = t.float(rec, line, "income_variability_pct"); err != nil {
			return nil, err
		}
		if r.EssentialExpensesAvg, err = t.float(rec, line, "essential_expenses_avg"); err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func parseCreditScores(t *table) ([]domain.CreditScoreRow, error) {
	if err := t.require("customer_id", "credit_score"); err != nil {
		return nil, err
	}

	rows := make([]domain.CreditScoreRow, 0, len(t.rows))
	for i, rec := range t.rows {
		line := i + 2
		if skipRow(t, rec, line) {
			continue
		}
		score, err := t.int(rec, line, "credit_score")
		if err != nil {
			return nil, err
		}
		rows = append(rows, domain.CreditScoreRow{
			CustomerID:  t.cell(rec, "customer_id"),
			CreditScore: score,
			Extra:       t.extra(rec, "customer_id", "credit_score"),
		})
	}
	return rows, nil
}

func parsePayments(t *table) ([]domain.PaymentRow, error) {
	if err := t.require("customer_id"); err != nil {
		return nil, err
	}

	rows := make([]domain.PaymentRow, 0, len(t.rows))
	for i, rec := range t.rows {
		if skipRow(t, rec, i+2) {
			continue
		}
		rows = append(rows, domain.PaymentRow{
			CustomerID: t.cell(rec, "customer_id"),
			Fields:     t.extra(rec, "customer_id"),
		})
	}
	return rows, nil
}
