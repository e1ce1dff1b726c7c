package notifier

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/techify/inventora/internal/domain"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeEmailer struct {
	sent []sentMail
}

func (e *fakeEmailer) Send(_ context.Context, to, subject, body string) error {
	e.sent = append(e.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func newTestHandler() (*Handler, *fakeEmailer) {
	emailer := &fakeEmailer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(emailer, logger), emailer
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	payload, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}
	return payload
}

func TestHandleOrderCreated(t *testing.T) {
	t.Run("emails the ordering user", func(t *testing.T) {
		handler, emailer := newTestHandler()

		payload := mustMarshal(t, domain.OrderCreatedEvent{
			OrderID:    "order-1",
			BusinessID: "biz-1",
			UserID:     "user-1",
			Status:     domain.OrderStatusPending,
			Timestamp:  time.Now().UTC(),
		})

		if err := handler.HandleOrderCreated(context.Background(), payload); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(emailer.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(emailer.sent))
		}
		if emailer.sent[0].to != "user-1@example.com" {
			t.Fatalf("unexpected recipient: %s", emailer.sent[0].to)
		}
		if emailer.sent[0].subject != "Order received: order-1" {
			t.Fatalf("unexpected subject: %s", emailer.sent[0].subject)
		}
	})

	t.Run("rejects malformed payloads", func(t *testing.T) {
		handler, emailer := newTestHandler()

		if err := handler.HandleOrderCreated(context.Background(), []byte("{not json")); err == nil {
			t.Fatal("expected an error")
		}
		if len(emailer.sent) != 0 {
			t.Fatalf("expected no email, got %d", len(emailer.sent))
		}
	})
}

func TestHandleInvoiceCreated(t *testing.T) {
	handler, emailer := newTestHandler()

	payload := mustMarshal(t, domain.InvoiceCreatedEvent{
		InvoiceID:       "inv-1",
		CustomerOrderID: "order-1",
		UserID:          "user-1",
		AmountDue:       19.98,
		DueDate:         time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Timestamp:       time.Now().UTC(),
	})

	if err := handler.HandleInvoiceCreated(context.Background(), payload); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(emailer.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(emailer.sent))
	}
	if emailer.sent[0].to != "user-1@example.com" {
		t.Fatalf("unexpected recipient: %s", emailer.sent[0].to)
	}
	if emailer.sent[0].body != "An invoice of 19.98 for order order-1 is due on 2026-02-01." {
		t.Fatalf("unexpected body: %s", emailer.sent[0].body)
	}
}

func TestHandleTransactionRecorded(t *testing.T) {
	t.Run("sends a receipt when the payment settles an invoice", func(t *testing.T) {
		handler, emailer := newTestHandler()
		invoiceID := "inv-1"

		payload := mustMarshal(t, domain.TransactionRecordedEvent{
			TransactionID: "txn-1",
			InvoiceID:     &invoiceID,
			AmountPaid:    19.98,
			PaymentStatus: domain.PaymentStatusCompleted,
			Timestamp:     time.Now().UTC(),
		})

		if err := handler.HandleTransactionRecorded(context.Background(), payload); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(emailer.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(emailer.sent))
		}
		if emailer.sent[0].to != "billing@example.com" {
			t.Fatalf("unexpected recipient: %s", emailer.sent[0].to)
		}
	})

	t.Run("skips payments with no invoice", func(t *testing.T) {
		handler, emailer := newTestHandler()

		payload := mustMarshal(t, domain.TransactionRecordedEvent{
			TransactionID: "txn-1",
			AmountPaid:    5,
			PaymentStatus: domain.PaymentStatusPending,
			Timestamp:     time.Now().UTC(),
		})

		if err := handler.HandleTransactionRecorded(context.Background(), payload); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(emailer.sent) != 0 {
			t.Fatalf("expected no email, got %d", len(emailer.sent))
		}
	})
}
