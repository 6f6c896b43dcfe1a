package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/wallet-pay/wallet_pay/internal/api"
	"github.com/wallet-pay/wallet_pay/internal/config"
	"github.com/wallet-pay/wallet_pay/internal/logging"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	deps := Deps{
		Cfg:    config.Config{AppName: "WalletPay", Env: "development"},
		Logger: logging.Discard(),
	}
	if err := Setup(app, deps); err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) (int, api.Envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var envelope api.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, envelope
}

func TestRegisterRechargeAndBalanceFlow(t *testing.T) {
	app := setupApp(t)

	status, env := do(t, app, fiber.MethodPost, "/api/v1/customers", fiber.Map{
		"document": "123456789",
		"name":     "Lorem Ipsum",
		"email":    "example@example.com",
		"phone":    "987654321",
	})
	if status != http.StatusOK || !env.Success || env.CodError != api.CodeOK {
		t.Fatalf("register failed: status=%d envelope=%+v", status, env)
	}

	status, env = do(t, app, fiber.MethodPost, "/api/v1/wallet/recharge", fiber.Map{
		"document": "123456789",
		"phone":    "987654321",
		"amount":   100000,
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("recharge failed: status=%d envelope=%+v", status, env)
	}

	status, env = do(t, app, fiber.MethodGet, "/api/v1/wallet/balance?document=123456789&phone=987654321", nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("balance failed: status=%d envelope=%+v", status, env)
	}

	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data payload: %+v", env.Data)
	}
	raw, err := json.Marshal(data["balance"])
	if err != nil {
		t.Fatalf("marshal balance: %v", err)
	}
	var balance decimal.Decimal
	if err := json.Unmarshal(raw, &balance); err != nil {
		t.Fatalf("parse balance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(100_000)) {
		t.Fatalf("expected balance 100000, got %s", balance)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	app := setupApp(t)

	body := fiber.Map{
		"document": "123456789",
		"name":     "Lorem Ipsum",
		"email":    "example@example.com",
		"phone":    "987654321",
	}
	if status, env := do(t, app, fiber.MethodPost, "/api/v1/customers", body); status != http.StatusOK || !env.Success {
		t.Fatalf("first register failed: status=%d envelope=%+v", status, env)
	}

	body["document"] = "555555555"
	status, env := do(t, app, fiber.MethodPost, "/api/v1/customers", body)
	if status != http.StatusConflict || env.Success || env.CodError != api.CodeConflict {
		t.Fatalf("expected 409 conflict, got status=%d envelope=%+v", status, env)
	}
	if env.MessageError == "" {
		t.Fatalf("expected an error message")
	}
}

func TestRechargeZeroAmountEnvelope(t *testing.T) {
	app := setupApp(t)

	do(t, app, fiber.MethodPost, "/api/v1/customers", fiber.Map{
		"document": "123", "name": "Name", "email": "a@b.c", "phone": "321",
	})

	status, env := do(t, app, fiber.MethodPost, "/api/v1/wallet/recharge", fiber.Map{
		"document": "123",
		"phone":    "321",
		"amount":   0,
	})
	if status != http.StatusBadRequest || env.Success || env.CodError != api.CodeBadInput {
		t.Fatalf("expected 400 for zero recharge, got status=%d envelope=%+v", status, env)
	}
}

func TestRequestPaymentForUnknownCustomer(t *testing.T) {
	app := setupApp(t)

	status, env := do(t, app, fiber.MethodPost, "/api/v1/payments", fiber.Map{
		"document": "999999999",
		"phone":    "000000000",
		"amount":   50,
	})
	if status != http.StatusBadRequest || env.Success || env.CodError != api.CodeBadInput {
		t.Fatalf("expected 400 for unknown customer, got status=%d envelope=%+v", status, env)
	}
}

func TestConfirmWithBadTokenEnvelope(t *testing.T) {
	app := setupApp(t)

	do(t, app, fiber.MethodPost, "/api/v1/customers", fiber.Map{
		"document": "123", "name": "Name", "email": "a@b.c", "phone": "321",
	})
	do(t, app, fiber.MethodPost, "/api/v1/wallet/recharge", fiber.Map{
		"document": "123", "phone": "321", "amount": 1000,
	})

	status, env := do(t, app, fiber.MethodPost, "/api/v1/payments", fiber.Map{
		"document": "123", "phone": "321", "amount": 100,
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("request payment failed: status=%d envelope=%+v", status, env)
	}

	data := env.Data.(map[string]any)
	request := data["request"].(map[string]any)
	requestID := request["id"].(string)

	status, env = do(t, app, fiber.MethodPost, "/api/v1/payments/confirm", fiber.Map{
		"id":    requestID,
		"token": "000000",
	})
	if status != http.StatusBadRequest || env.Success || env.CodError != api.CodeBadInput {
		t.Fatalf("expected 400 for bad token, got status=%d envelope=%+v", status, env)
	}

	// Funds stay untouched after the failed confirmation.
	status, env = do(t, app, fiber.MethodGet, "/api/v1/wallet/balance?document=123&phone=321", nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("balance failed: status=%d envelope=%+v", status, env)
	}
}
