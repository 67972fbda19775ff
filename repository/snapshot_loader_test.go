package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

const (
	loansCSV = `customer_id,loan_id,product_type,principal,annual_rate_pct,remaining_term_months,days_past_due,loan_monthly_payment,late_fee_amount,penalty_rate_pct,collateral
CUST-1,LN-100,personal_loan,10000,12,36,0,332.14,35,20,
CUST-2,LN-200,auto_loan,15000.50,9.5,48.0,15,380,40,18,vehicle
`
	cardsCSV = `customer_id,card_id,product_type,balance,annual_rate_pct,min_payment_pct,days_past_due,late_fee_amount,penalty_rate_pct,card_credit_limit
CUST-1,CC-200,credit_card,1000,20,2,0,29,30,3000
`
	paymentsCSV = `customer_id,product_id,payment_date,amount
CUST-1,LN-100,2024-01-05,332.14
,,,
`
	creditCSV = `customer_id,date,credit_score
CUST-1,2024-01-01,720
`
	cashflowCSV = `customer_id,monthly_income_avg,income_variability_pct,essential_expenses_avg
CUST-1,3000,20,2000
`
	offersJSON = `[
  {"offer_id": "OFF-1", "product_types_eligible": ["personal_loan"],
   "conditions": {"max_days_past_due": 0, "min_credit_score": 700},
   "new_rate_pct": 8, "max_term_months": 36},
  {"offer_id": "OFF-2", "product_types_eligible": ["credit_card"],
   "conditions": {}, "new_rate_pct": 14, "max_term_months": 24}
]`
)

func fixtureStore() *MemoryBlobStore {
	names := DefaultBlobNames()
	store := NewMemoryBlobStore()
	store.Set(names.Loans, []byte(loansCSV))
	store.Set(names.Cards, []byte(cardsCSV))
	store.Set(names.Payments, []byte(paymentsCSV))
	store.Set(names.Credit, []byte(creditCSV))
	store.Set(names.Cashflow, []byte(cashflowCSV))
	store.Set(names.Offers, []byte(offersJSON))
	return store
}

func TestSnapshotLoader_LoadsAllDatasets(t *testing.T) {
	loader := NewSnapshotLoader(fixtureStore(), DefaultBlobNames())

	snap, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snap.Loans) != 2 || len(snap.Cards) != 1 || len(snap.CreditScores) != 1 || len(snap.Cashflows) != 1 {
		t.Fatalf("unexpected counts: loans=%d cards=%d credit=%d cashflow=%d",
			len(snap.Loans), len(snap.Cards), len(snap.CreditScores), len(snap.Cashflows))
	}
	if len(snap.Payments) != 1 {
		t.Errorf("expected the blank payment row to be skipped, got %d rows", len(snap.Payments))
	}

	loan := snap.Loans[1]
	if loan.Principal != 15000.50 || loan.RemainingTermMonths != 48 || loan.DaysPastDue != 15 || loan.Collateral != "vehicle" {
		t.Errorf("unexpected loan row %+v", loan)
	}
	if snap.CreditScores[0].CreditScore != 720 || snap.CreditScores[0].Extra["date"] != "2024-01-01" {
		t.Errorf("unexpected credit row %+v", snap.CreditScores[0])
	}
	if snap.Payments[0].Fields["amount"] != "332.14" {
		t.Errorf("unexpected payment row %+v", snap.Payments[0])
	}

	if len(snap.Offers) != 2 || snap.Offers[0].OfferID != "OFF-1" {
		t.Fatalf("unexpected offers %+v", snap.Offers)
	}
	cond := snap.Offers[0].Conditions
	if cond.MaxDaysPastDue == nil || *cond.MaxDaysPastDue != 0 || cond.MinCreditScore == nil || *cond.MinCreditScore != 700 {
		t.Errorf("unexpected conditions %+v", cond)
	}
	if snap.Offers[1].Conditions.MaxDaysPastDue != nil || snap.Offers[1].Conditions.MinCreditScore != nil {
		t.Errorf("empty conditions must stay nil")
	}
}

func TestSnapshotLoader_MissingBlob(t *testing.T) {
	store := fixtureStore()
	delete(store.Data, DefaultBlobNames().Cashflow)

	_, err := NewSnapshotLoader(store, DefaultBlobNames()).Load(context.Background())
	if !errors.Is(err, ErrBlobNotFound) {
		t.Fatalf("expected ErrBlobNotFound, got %v", err)
	}
}

func TestSnapshotLoader_MissingColumn(t *testing.T) {
	store := fixtureStore()
	store.Set(DefaultBlobNames().Cards, []byte("customer_id,card_id,balance\nCUST-1,CC-1,100\n"))

	_, err := NewSnapshotLoader(store, DefaultBlobNames()).Load(context.Background())
	if err == nil || !strings.Contains(err.Error(), "missing columns") {
		t.Fatalf("expected missing columns error, got %v", err)
	}
}

func TestSnapshotLoader_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"non numeric": "customer_id,monthly_income_avg,income_variability_pct,essential_expenses_avg\nCUST-1,abc,20,2000\n",
		"negative":    "customer_id,monthly_income_avg,income_variability_pct,essential_expenses_avg\nCUST-1,-5,20,2000\n",
	}
	for name, data := range cases {
		store := fixtureStore()
		store.Set(DefaultBlobNames().Cashflow, []byte(data))

		if _, err := NewSnapshotLoader(store, DefaultBlobNames()).Load(context.Background()); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	store := fixtureStore()
	store.Set(DefaultBlobNames().Credit, []byte("customer_id,credit_score\nCUST-1,700.5\n"))
	if _, err := NewSnapshotLoader(store, DefaultBlobNames()).Load(context.Background()); err == nil {
		t.Error("expected error for fractional credit score")
	}
}

func TestSnapshotLoader_RejectsInvalidOffers(t *testing.T) {
	cases := map[string]string{
		"malformed": `[{"offer_id": "X"`,
		"zero term": `[{"offer_id": "X", "product_types_eligible": [], "new_rate_pct": 5, "max_term_months": 0}]`,
		"no id":     `[{"product_types_eligible": [], "new_rate_pct": 5, "max_term_months": 12}]`,
	}
	for name, data := range cases {
		store := fixtureStore()
		store.Set(DefaultBlobNames().Offers, []byte(data))

		if _, err := NewSnapshotLoader(store, DefaultBlobNames()).Load(context.Background()); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestReadTable_XLSXMatchesCSV(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"customer_id", "card_id", "product_type", "balance", "annual_rate_pct", "min_payment_pct",
			"days_past_due", "late_fee_amount", "penalty_rate_pct", "card_credit_limit"},
		{"CUST-1", "CC-200", "credit_card", 1000, 20, 2, 0, 29, 30, 3000},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	names := DefaultBlobNames()
	names.Cards = "cards.xlsx"
	store := fixtureStore()
	store.Set(names.Cards, buf.Bytes())

	fromXLSX, err := NewSnapshotLoader(store, names).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromCSV, err := NewSnapshotLoader(fixtureStore(), DefaultBlobNames()).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fromXLSX.Cards) != 1 || fromXLSX.Cards[0] != fromCSV.Cards[0] {
		t.Errorf("xlsx row %+v differs from csv row %+v", fromXLSX.Cards, fromCSV.Cards)
	}
}

func TestReadTable_ShortRowsAndBOM(t *testing.T) {
	tbl, err := readTable("x.csv", []byte("\ufeffcustomer_id,credit_score,extra\nCUST-1,700\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tbl.require("customer_id", "credit_score"); err != nil {
		t.Fatalf("BOM must be stripped from the header: %v", err)
	}
	if got := tbl.cell(tbl.rows[0], "extra"); got != "" {
		t.Errorf("expected empty cell for short row, got %q", got)
	}
}
