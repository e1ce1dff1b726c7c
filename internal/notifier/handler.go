// Package notifier consumes entity lifecycle events and sends customer
// notifications. It never writes back to the entity store: event handling is
// observation only.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/techify/inventora/internal/domain"
)

// Emailer delivers a single message. The production deployment plugs in a
// mail relay; LogEmailer stands in everywhere else.
type Emailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type LogEmailer struct {
	logger *slog.Logger
}

func NewLogEmailer(logger *slog.Logger) *LogEmailer {
	return &LogEmailer{logger: logger}
}

func (e *LogEmailer) Send(_ context.Context, to, subject, _ string) error {
	e.logger.Info("email sent", "to", to, "subject", subject)
	return nil
}

type Handler struct {
	emailer Emailer
	logger  *slog.Logger
}

func NewHandler(emailer Emailer, logger *slog.Logger) *Handler {
	return &Handler{emailer: emailer, logger: logger}
}

func (h *Handler) HandleOrderCreated(ctx context.Context, payload []byte) error {
	var event domain.OrderCreatedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("unmarshal order created event: %w", err)
	}

	h.logger.Info("processing order created event", "order_id", event.OrderID, "user_id", event.UserID)

	subject := "Order received: " + event.OrderID
	body := fmt.Sprintf("Your order %s has been received and is %s.", event.OrderID, event.Status)
	if err := h.emailer.Send(ctx, event.UserID+"@example.com", subject, body); err != nil {
		return fmt.Errorf("send order confirmation: %w", err)
	}

	return nil
}

func (h *Handler) HandleInvoiceCreated(ctx context.Context, payload []byte) error {
	var event domain.InvoiceCreatedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("unmarshal invoice created event: %w", err)
	}

	h.logger.Info("processing invoice created event", "invoice_id", event.InvoiceID, "user_id", event.UserID)

	subject := "Invoice issued: " + event.InvoiceID
	body := fmt.Sprintf("An invoice of %.2f for order %s is due on %s.",
		event.AmountDue, event.CustomerOrderID, event.DueDate.Format("2006-01-02"))
	if err := h.emailer.Send(ctx, event.UserID+"@example.com", subject, body); err != nil {
		return fmt.Errorf("send invoice notification: %w", err)
	}

	return nil
}

func (h *Handler) HandleTransactionRecorded(ctx context.Context, payload []byte) error {
	var event domain.TransactionRecordedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("unmarshal transaction recorded event: %w", err)
	}

	h.logger.Info("processing transaction recorded event",
		"transaction_id", event.TransactionID, "payment_status", event.PaymentStatus)

	// Receipts only make sense for payments that settled an invoice.
	if event.InvoiceID == nil {
		return nil
	}

	subject := "Payment received for invoice " + *event.InvoiceID
	body := fmt.Sprintf("A payment of %.2f was recorded with status %s.", event.AmountPaid, event.PaymentStatus)
	if err := h.emailer.Send(ctx, "billing@example.com", subject, body); err != nil {
		return fmt.Errorf("send payment receipt: %w", err)
	}

	return nil
}
