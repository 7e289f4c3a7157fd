package api

import (
	"testing"
	"time"

	"clubfund/config"
	"clubfund/middleware"
	"clubfund/service"
	"clubfund/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestConfig installs a test configuration and JWT secret.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		Upload: config.UploadConfig{Dir: t.TempDir()},
		JWT:    config.JWTConfig{Secret: "test-jwt-secret-key", ExpireTime: time.Hour},
	}
	config.GlobalConfig = cfg
	t.Cleanup(func() { config.GlobalConfig = nil })
	middleware.InitJWT(cfg)
	gin.SetMode(gin.TestMode)
	return cfg
}

// newTestServices builds the service stack on an in-memory store.
func newTestServices() (*store.MemoryStore, *service.IdentityService, *service.LedgerService, *service.SubmissionService) {
	st := store.NewMemoryStore()
	identity := service.NewIdentityService(st)
	ledger := service.NewLedgerService(st)
	submissions := service.NewSubmissionService(st, ledger)
	return st, identity, ledger, submissions
}

// seedLedger loads a small known ledger: 150 in funds, 30 in expenses.
func seedLedger(t *testing.T, ledger *service.LedgerService) {
	t.Helper()
	_, err := ledger.AddFund("Alice", decimal.NewFromInt(100), "2024-03-01", "Cash")
	require.NoError(t, err)
	_, err = ledger.AddFund("Bob", decimal.NewFromInt(50), "2024-03-02", "bKash")
	require.NoError(t, err)
	_, err = ledger.AddExpense("Snacks", decimal.NewFromInt(30), "2024-03-02", "party")
	require.NoError(t, err)
}

// asAdmin stands in for JWTAuth+AdminOnly in handler tests.
func asAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", 1)
		c.Set("username", "admin")
		c.Set("isAdmin", true)
		c.Next()
	}
}
