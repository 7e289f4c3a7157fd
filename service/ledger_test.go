package service

import (
	"testing"

	"clubfund/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLedgerService_BalanceExample(t *testing.T) {
	s := NewLedgerService(store.NewMemoryStore())

	_, err := s.AddFund("Alice", dec("100.0"), "2024-03-01", "Cash")
	require.NoError(t, err)
	_, err = s.AddExpense("Snacks", dec("30.0"), "2024-03-02", "party")
	require.NoError(t, err)

	balance, err := s.Balance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("70.0")), "balance = %s", balance)

	summary, err := s.MonthlySummary()
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "March 2024", summary[0].Month)
	assert.True(t, summary[0].Funds.Equal(dec("100.0")))
	assert.True(t, summary[0].Expenses.Equal(dec("30.0")))
	assert.True(t, summary[0].Balance.Equal(dec("70.0")))
}

func TestLedgerService_EmptyBalance(t *testing.T) {
	s := NewLedgerService(store.NewMemoryStore())

	balance, err := s.Balance()
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	summary, err := s.MonthlySummary()
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestLedgerService_SequentialIDs(t *testing.T) {
	s := NewLedgerService(store.NewMemoryStore())

	e1, err := s.AddFund("a", dec("1"), "2024-01-01", "Cash")
	require.NoError(t, err)
	e2, err := s.AddFund("b", dec("2"), "2024-01-02", "Cash")
	require.NoError(t, err)
	assert.Equal(t, 1, e1.ID)
	assert.Equal(t, 2, e2.ID)
}

func TestLedgerService_ListSortedByDateDesc(t *testing.T) {
	s := NewLedgerService(store.NewMemoryStore())

	for _, f := range []struct{ name, date string }{
		{"old", "2024-01-05"},
		{"newest", "2024-03-01"},
		{"tie-first", "2024-02-10"},
		{"tie-second", "2024-02-10"},
	} {
		_, err := s.AddFund(f.name, dec("1"), f.date, "Cash")
		require.NoError(t, err)
	}

	funds, err := s.ListFunds()
	require.NoError(t, err)
	require.Len(t, funds, 4)
	assert.Equal(t, "newest", funds[0].Name)
	// equal dates keep stored order
	assert.Equal(t, "tie-first", funds[1].Name)
	assert.Equal(t, "tie-second", funds[2].Name)
	assert.Equal(t, "old", funds[3].Name)
}

func TestLedgerService_NegativeAmountsAccepted(t *testing.T) {
	s := NewLedgerService(store.NewMemoryStore())

	// the service applies no amount validation
	_, err := s.AddFund("refund", dec("-25.5"), "2024-01-01", "Cash")
	require.NoError(t, err)

	total, err := s.TotalFunds()
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("-25.5")))
}

func TestLedgerService_MonthlySummaryOrdering(t *testing.T) {
	s := NewLedgerService(store.NewMemoryStore())

	// months spread across years, duplicated across both collections
	_, err := s.AddFund("a", dec("10"), "2023-12-15", "Cash")
	require.NoError(t, err)
	_, err = s.AddFund("b", dec("20"), "2024-02-01", "Cash")
	require.NoError(t, err)
	_, err = s.AddExpense("x", dec("5"), "2024-02-20", "r")
	require.NoError(t, err)
	_, err = s.AddExpense("y", dec("7"), "2024-01-10", "r")
	require.NoError(t, err)

	summary, err := s.MonthlySummary()
	require.NoError(t, err)
	require.Len(t, summary, 3)

	// strictly descending by month start, one row per month
	assert.Equal(t, "February 2024", summary[0].Month)
	assert.Equal(t, "January 2024", summary[1].Month)
	assert.Equal(t, "December 2023", summary[2].Month)

	assert.True(t, summary[0].Funds.Equal(dec("20")))
	assert.True(t, summary[0].Expenses.Equal(dec("5")))
	assert.True(t, summary[0].Balance.Equal(dec("15")))

	// expense-only month still yields a row
	assert.True(t, summary[1].Funds.IsZero())
	assert.True(t, summary[1].Expenses.Equal(dec("7")))
}

func TestLedgerService_MonthlySummaryBadDate(t *testing.T) {
	st := store.NewMemoryStore()
	s := NewLedgerService(st)

	_, err := s.AddFund("a", dec("10"), "not-a-date", "Cash")
	require.NoError(t, err)

	_, err = s.MonthlySummary()
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrCorrupted)
}

func TestLedgerService_CorruptedStore(t *testing.T) {
	st := store.NewMemoryStore()
	s := NewLedgerService(st)
	st.Corrupt(store.CollectionFunds)

	_, err := s.TotalFunds()
	assert.ErrorIs(t, err, store.ErrCorrupted)
	_, err = s.ListFunds()
	assert.ErrorIs(t, err, store.ErrCorrupted)
}
