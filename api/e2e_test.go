package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"api_transactions/api"
	"api_transactions/internal/transactions"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"resty.dev/v3"
)

type listResult struct {
	Transactions []transactions.Transaction `json:"transactions"`
}

type summaryResult struct {
	Summary transactions.Summary `json:"summary"`
}

func startServer(t *testing.T, storage transactions.Storage) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zaptest.NewLogger(t)
	router := gin.New()
	api.InitRoutes(router, transactions.NewService(storage, logger), logger)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, baseURL string) *resty.Client {
	t.Helper()
	c := resty.New().SetBaseURL(baseURL)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func findSessionCookie(cookies []*http.Cookie) *http.Cookie {
	for _, c := range cookies {
		if c.Name == "sessionId" {
			return c
		}
	}
	return nil
}

// runLedgerFlow posts a credit and a debit from a fresh client and reads
// everything back with the issued cookie.
func runLedgerFlow(t *testing.T, baseURL string) {
	client := newClient(t, baseURL)

	res, err := client.R().
		SetBody(map[string]any{"title": "Nova transação", "type": "credit", "amount": 5000}).
		Post("/transactions")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode())

	session := findSessionCookie(res.Cookies())
	require.NotNil(t, session, "expected the sessionId cookie to be issued")

	var list listResult
	res, err = client.R().SetCookie(session).SetResult(&list).Get("/transactions")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode())
	require.Len(t, list.Transactions, 1)
	assert.Equal(t, "Nova transação", list.Transactions[0].Title)
	assert.Equal(t, transactions.KindCredit, list.Transactions[0].Type)
	assert.Equal(t, 5000.0, list.Transactions[0].Amount)

	res, err = client.R().
		SetCookie(session).
		SetBody(map[string]any{"title": "Aluguel", "type": "debit", "amount": 2000}).
		Post("/transactions")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode())
	assert.Nil(t, findSessionCookie(res.Cookies()), "existing session must not be replaced")

	var summary summaryResult
	res, err = client.R().SetCookie(session).SetResult(&summary).Get("/transactions/summary")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode())
	assert.Equal(t, 3000.0, summary.Summary.Amount)

	// A client without the cookie is turned away.
	res, err = newClient(t, baseURL).R().Get("/transactions/summary")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode())
}

func TestLedgerFlow_InMemory(t *testing.T) {
	srv := startServer(t, transactions.NewLocalStorage())
	runLedgerFlow(t, srv.URL)
}

func TestLedgerFlow_SQLite(t *testing.T) {
	store, err := transactions.NewSQLiteStorage(filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.EnsureSchema(context.Background()))

	srv := startServer(t, store)
	runLedgerFlow(t, srv.URL)
}
