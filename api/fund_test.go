package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFundHandler_Create(t *testing.T) {
	newTestConfig(t)
	_, _, ledger, _ := newTestServices()
	h := NewFundHandler(ledger)

	router := gin.New()
	router.POST("/funds", asAdmin(), h.Create)

	w := postJSON(router, "/funds", `{"name":"Alice","amount":100.0,"date":"2024-03-01","method":"Cash"}`)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "fund entry added successfully")

	funds, err := ledger.ListFunds()
	require.NoError(t, err)
	require.Len(t, funds, 1)
	assert.Equal(t, 1, funds[0].ID)
	assert.Equal(t, "Alice", funds[0].Name)
}

func TestFundHandler_CreateInvalid(t *testing.T) {
	newTestConfig(t)
	_, _, ledger, _ := newTestServices()
	h := NewFundHandler(ledger)

	router := gin.New()
	router.POST("/funds", asAdmin(), h.Create)

	// unknown payment method
	w := postJSON(router, "/funds", `{"name":"Alice","amount":100,"date":"2024-03-01","method":"PayPal"}`)
	assert.Equal(t, 400, w.Code)

	// malformed date
	w = postJSON(router, "/funds", `{"name":"Alice","amount":100,"date":"03/01/2024","method":"Cash"}`)
	assert.Equal(t, 400, w.Code)

	// malformed amount
	w = postJSON(router, "/funds", `{"name":"Alice","amount":"abc","date":"2024-03-01","method":"Cash"}`)
	assert.Equal(t, 400, w.Code)

	funds, err := ledger.ListFunds()
	require.NoError(t, err)
	assert.Empty(t, funds)
}

func TestFundHandler_List(t *testing.T) {
	newTestConfig(t)
	_, _, ledger, _ := newTestServices()
	seedLedger(t, ledger)

	h := NewFundHandler(ledger)
	router := gin.New()
	router.GET("/funds", h.List)

	req := httptest.NewRequest("GET", "/funds", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			Funds []struct {
				Name string `json:"name"`
				Date string `json:"date"`
			} `json:"funds"`
			Total json.Number `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Funds, 2)
	// most recent date first
	assert.Equal(t, "2024-03-02", resp.Data.Funds[0].Date)
	assert.Equal(t, "150", resp.Data.Total.String())
}

func TestExpenseHandler_CreateAndList(t *testing.T) {
	newTestConfig(t)
	_, _, ledger, _ := newTestServices()
	h := NewExpenseHandler(ledger)

	router := gin.New()
	router.POST("/expenses", asAdmin(), h.Create)
	router.GET("/expenses", h.List)

	w := postJSON(router, "/expenses", `{"title":"Snacks","amount":30.0,"date":"2024-03-02","reason":"party"}`)
	require.Equal(t, 200, w.Code)

	req := httptest.NewRequest("GET", "/expenses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Snacks")
	assert.Contains(t, rec.Body.String(), "party")
}
