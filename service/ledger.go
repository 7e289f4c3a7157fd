package service

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"clubfund/models"
	"clubfund/store"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used on every ledger record.
// Lexical descending order on it is also reverse-chronological order.
const DateLayout = "2006-01-02"

// MonthLayout labels a summary month, e.g. "March 2024".
const MonthLayout = "January 2006"

// MonthSummary aggregates funds and expenses for one calendar month.
type MonthSummary struct {
	Month    string          `json:"month"`
	Funds    decimal.Decimal `json:"funds"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// LedgerService computes totals, balance and monthly aggregation over
// the funds and expenses collections. Entries are append-only; no
// amount validation happens here, negative amounts included.
type LedgerService struct {
	store      store.Store
	fundsMu    sync.Mutex
	expensesMu sync.Mutex
}

// NewLedgerService creates a ledger service on top of st.
func NewLedgerService(st store.Store) *LedgerService {
	return &LedgerService{store: st}
}

// AddFund appends a fund entry with the next sequential id.
func (s *LedgerService) AddFund(name string, amount decimal.Decimal, date, method string) (models.FundEntry, error) {
	s.fundsMu.Lock()
	defer s.fundsMu.Unlock()

	var funds []models.FundEntry
	if err := s.store.Load(store.CollectionFunds, &funds); err != nil {
		return models.FundEntry{}, err
	}
	entry := models.FundEntry{
		ID:     len(funds) + 1,
		Name:   name,
		Amount: amount,
		Date:   date,
		Method: method,
	}
	funds = append(funds, entry)
	if err := s.store.Save(store.CollectionFunds, funds); err != nil {
		return models.FundEntry{}, err
	}
	return entry, nil
}

// AddExpense appends an expense entry with the next sequential id.
func (s *LedgerService) AddExpense(title string, amount decimal.Decimal, date, reason string) (models.ExpenseEntry, error) {
	s.expensesMu.Lock()
	defer s.expensesMu.Unlock()

	var expenses []models.ExpenseEntry
	if err := s.store.Load(store.CollectionExpenses, &expenses); err != nil {
		return models.ExpenseEntry{}, err
	}
	entry := models.ExpenseEntry{
		ID:     len(expenses) + 1,
		Title:  title,
		Amount: amount,
		Date:   date,
		Reason: reason,
	}
	expenses = append(expenses, entry)
	if err := s.store.Save(store.CollectionExpenses, expenses); err != nil {
		return models.ExpenseEntry{}, err
	}
	return entry, nil
}

// ListFunds returns all fund entries, most recent date first. Entries
// sharing a date keep their stored order.
func (s *LedgerService) ListFunds() ([]models.FundEntry, error) {
	var funds []models.FundEntry
	if err := s.store.Load(store.CollectionFunds, &funds); err != nil {
		return nil, err
	}
	sort.SliceStable(funds, func(i, j int) bool {
		return funds[i].Date > funds[j].Date
	})
	return funds, nil
}

// ListExpenses returns all expense entries, most recent date first.
func (s *LedgerService) ListExpenses() ([]models.ExpenseEntry, error) {
	var expenses []models.ExpenseEntry
	if err := s.store.Load(store.CollectionExpenses, &expenses); err != nil {
		return nil, err
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})
	return expenses, nil
}

// TotalFunds sums every fund entry.
func (s *LedgerService) TotalFunds() (decimal.Decimal, error) {
	var funds []models.FundEntry
	if err := s.store.Load(store.CollectionFunds, &funds); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, f := range funds {
		total = total.Add(f.Amount)
	}
	return total, nil
}

// TotalExpenses sums every expense entry.
func (s *LedgerService) TotalExpenses() (decimal.Decimal, error) {
	var expenses []models.ExpenseEntry
	if err := s.store.Load(store.CollectionExpenses, &expenses); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total, nil
}

// Balance is total funds minus total expenses. It is always derived,
// never stored.
func (s *LedgerService) Balance() (decimal.Decimal, error) {
	funds, err := s.TotalFunds()
	if err != nil {
		return decimal.Zero, err
	}
	expenses, err := s.TotalExpenses()
	if err != nil {
		return decimal.Zero, err
	}
	return funds.Sub(expenses), nil
}

// MonthlySummary groups funds and expenses by calendar month. Every
// month present in either collection yields exactly one row; rows are
// sorted by month start, most recent first.
func (s *LedgerService) MonthlySummary() ([]MonthSummary, error) {
	var funds []models.FundEntry
	if err := s.store.Load(store.CollectionFunds, &funds); err != nil {
		return nil, err
	}
	var expenses []models.ExpenseEntry
	if err := s.store.Load(store.CollectionExpenses, &expenses); err != nil {
		return nil, err
	}

	fundsByMonth := make(map[string]decimal.Decimal)
	expensesByMonth := make(map[string]decimal.Decimal)
	starts := make(map[string]time.Time)

	for _, f := range funds {
		month, start, err := monthOf(f.Date)
		if err != nil {
			return nil, err
		}
		fundsByMonth[month] = fundsByMonth[month].Add(f.Amount)
		starts[month] = start
	}
	for _, e := range expenses {
		month, start, err := monthOf(e.Date)
		if err != nil {
			return nil, err
		}
		expensesByMonth[month] = expensesByMonth[month].Add(e.Amount)
		starts[month] = start
	}

	months := make([]string, 0, len(starts))
	for m := range starts {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		return starts[months[i]].After(starts[months[j]])
	})

	summary := make([]MonthSummary, 0, len(months))
	for _, m := range months {
		f := fundsByMonth[m]
		e := expensesByMonth[m]
		summary = append(summary, MonthSummary{
			Month:    m,
			Funds:    f,
			Expenses: e,
			Balance:  f.Sub(e),
		})
	}
	return summary, nil
}

// monthOf maps a record date to its "January 2006" label and the
// month start used for chronological ordering.
func monthOf(date string) (string, time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: bad date %q: %v", store.ErrCorrupted, date, err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start.Format(MonthLayout), start, nil
}
