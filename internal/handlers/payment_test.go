package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paycore/internal/repositories"
	"paycore/internal/routes"
	"paycore/internal/services/notification"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	routes.SetupRoutes(app,
		repositories.NewMemoryAccountRepository(),
		repositories.NewMemoryUserRepository(),
		notification.NewHub(),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func openAccount(t *testing.T, app *fiber.App, balance float64) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/accounts", map[string]interface{}{
		"owner_id":        "owner-1",
		"type":            "checking",
		"initial_balance": balance,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["data"].(map[string]interface{})["id"].(string)
}

func paymentBody(accountID string, amount float64) map[string]interface{} {
	return map[string]interface{}{
		"card": map[string]interface{}{
			"brand":        "visa",
			"number":       "4111111111111111",
			"installments": 3,
			"expiration":   "12/49",
			"cvv":          "123",
		},
		"account_id":  accountID,
		"amount":      amount,
		"description": "rent",
	}
}

func TestProcessPayment_Success(t *testing.T) {
	app := newTestApp()
	accountID := openAccount(t, app, 1000)

	resp, body := doJSON(t, app, http.MethodPost, "/api/payments", paymentBody(accountID, 1000))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	receipt := body["data"].(map[string]interface{})
	assert.Equal(t, 0.0, receipt["balance"])
	assert.Equal(t, 1000.0, receipt["amount"])
}

func TestProcessPayment_InsufficientFunds(t *testing.T) {
	app := newTestApp()
	accountID := openAccount(t, app, 50)

	resp, body := doJSON(t, app, http.MethodPost, "/api/payments", paymentBody(accountID, 100))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "insufficient funds", body["error"])

	// Failed charge left the balance alone.
	resp, body = doJSON(t, app, http.MethodGet, "/api/accounts/"+accountID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 50.0, body["data"].(map[string]interface{})["balance"])
}

func TestProcessPayment_AccountNotFound(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/payments", paymentBody("missing", 10))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProcessPayment_InvalidCard(t *testing.T) {
	app := newTestApp()
	accountID := openAccount(t, app, 1000)

	body := paymentBody(accountID, 10)
	body["card"].(map[string]interface{})["cvv"] = "12"

	resp, decoded := doJSON(t, app, http.MethodPost, "/api/payments", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid cvv for visa", decoded["error"])
}

func TestAccountEndpoints(t *testing.T) {
	app := newTestApp()
	accountID := openAccount(t, app, 100)

	resp, body := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/accounts/%s/deposit", accountID), map[string]interface{}{
		"amount": 25,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 125.0, body["data"].(map[string]interface{})["balance"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/accounts/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/accounts", map[string]interface{}{
		"owner_id": "owner-1",
		"type":     "investment",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserEndpoints(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/users", map[string]interface{}{
		"name":      "Ana Souza",
		"email":     "ana@example.com",
		"password":  "s3cret",
		"cpf":       "52998224725",
		"user_type": "customer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	userID := body["data"].(map[string]interface{})["id"].(string)

	resp, body = doJSON(t, app, http.MethodGet, "/api/users/"+userID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ana Souza", body["data"].(map[string]interface{})["name"])

	resp, _ = doJSON(t, app, http.MethodPut, "/api/users/"+userID, map[string]interface{}{
		"name": "Ana Lima",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/users/"+userID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/users/"+userID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := newTestApp()
	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}
