//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mariocampos1028/bankinc/internal/config"
	"github.com/mariocampos1028/bankinc/internal/handlers"
	"github.com/mariocampos1028/bankinc/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

// TestServer wraps the HTTP test server used by the end-to-end tests. It runs
// against the in-memory store so the suite needs no database.
type TestServer struct {
	Server *httptest.Server
	Store  *memory.Store
	t      *testing.T
}

type alwaysHealthy struct{}

func (alwaysHealthy) PingContext(context.Context) error { return nil }

// SetupTest creates a new test server with an empty store.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.New()
	router := handlers.NewRouter(store, alwaysHealthy{}, cfg, logger)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		Store:  store,
		t:      t,
	}
}

// Close shuts down the test server.
func (ts *TestServer) Close() {
	ts.Server.Close()
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// envelopeResponse mirrors the API response envelope.
type envelopeResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelopeResponse {
	t.Helper()
	defer resp.Body.Close()

	var env envelopeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func (ts *TestServer) get(t *testing.T, path string) *http.Response {
	t.Helper()

	resp, err := http.Get(ts.URL(path))
	require.NoError(t, err)
	return resp
}

func (ts *TestServer) post(t *testing.T, path string, body map[string]any) *http.Response {
	t.Helper()

	jsonBody, _ := json.Marshal(body)
	resp, err := http.Post(ts.URL(path), "application/json", bytes.NewReader(jsonBody))
	require.NoError(t, err)
	return resp
}

func (ts *TestServer) delete(t *testing.T, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, ts.URL(path), nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// IssueCard generates a card for the given product and holder.
func (ts *TestServer) IssueCard(t *testing.T, productID, firstName, lastName string) *http.Response {
	t.Helper()
	return ts.get(t, "/card/"+productID+"/number?firstName="+firstName+"&lastName="+lastName)
}

// EnrollCard activates a previously issued card.
func (ts *TestServer) EnrollCard(t *testing.T, cardID string) *http.Response {
	t.Helper()
	return ts.post(t, "/card/enroll", map[string]any{"cardId": cardID})
}

// BlockCard blocks a card.
func (ts *TestServer) BlockCard(t *testing.T, cardID string) *http.Response {
	t.Helper()
	return ts.delete(t, "/card?cardId="+cardID)
}

// TopUpCard adds funds to a card.
func (ts *TestServer) TopUpCard(t *testing.T, cardID string, balance float64) *http.Response {
	t.Helper()
	return ts.post(t, "/card/balance", map[string]any{"cardId": cardID, "balance": balance})
}

// GetBalance retrieves a card's balance.
func (ts *TestServer) GetBalance(t *testing.T, cardID string) *http.Response {
	t.Helper()
	return ts.get(t, "/card/balance/"+cardID)
}

// Purchase records a purchase transaction against a card.
func (ts *TestServer) Purchase(t *testing.T, cardID string, price float64) *http.Response {
	t.Helper()
	return ts.post(t, "/transaction/create", map[string]any{"cardId": cardID, "price": price})
}

// VoidTransaction reverses a purchase.
func (ts *TestServer) VoidTransaction(t *testing.T, cardID string, transactionID int64) *http.Response {
	t.Helper()
	return ts.post(t, "/transaction/anulation", map[string]any{"cardId": cardID, "transactionId": transactionID})
}
