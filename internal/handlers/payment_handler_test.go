package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sakura-sushi/backend/internal/service"
	"github.com/sakura-sushi/backend/pkg/logger"
)

func TestSimulatePayment(t *testing.T) {
	handler := NewPaymentHandler(service.NewPaymentService(), logger.New("error"))

	body := []byte(`{"amount": 34}`)
	req := httptest.NewRequest(http.MethodPost, "/api/payment/simulate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Simulate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp PaymentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Error("expected success = true")
	}
	if resp.Transaction.Status != "succeeded" {
		t.Errorf("transaction status = %s, want succeeded", resp.Transaction.Status)
	}
	if resp.Transaction.Currency != "EUR" {
		t.Errorf("currency = %s, want default EUR", resp.Transaction.Currency)
	}
	if resp.Transaction.ID == "" {
		t.Error("transaction ID is empty")
	}
}

func TestSimulatePayment_BadRequests(t *testing.T) {
	handler := NewPaymentHandler(service.NewPaymentService(), logger.New("error"))

	for _, body := range []string{`{"amount": 0}`, `{"amount": -5}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/payment/simulate", bytes.NewReader([]byte(body)))
		w := httptest.NewRecorder()
		handler.Simulate(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}
