package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Transaction is a payment event. It conceptually settles exactly one of an
// invoice, a customer order or a business order; all three references are
// nullable and none is enforced. TransactionDate is stamped by the store at
// creation and never changes.
type Transaction struct {
	ID              string        `json:"id"`
	InvoiceID       *string       `json:"invoiceId,omitempty"`
	CustomerOrderID *string       `json:"customerOrderId,omitempty"`
	BusinessOrderID *string       `json:"businessOrderId,omitempty"`
	AmountPaid      float64       `json:"amountPaid"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	PaymentMethod   string        `json:"paymentMethod"`
	DueDate         time.Time     `json:"dueDate"`
	TransactionDate time.Time     `json:"transactionDate"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       *time.Time    `json:"updatedAt,omitempty"`
}

func ValidateNewTransaction(t *Transaction) error {
	if t.PaymentMethod == "" {
		return badRequest("Pass the required fields")
	}
	if t.PaymentStatus == "" {
		t.PaymentStatus = PaymentStatusPending
	}
	return nil
}

// TransactionPatch: the settled references, dueDate and transactionDate are
// fixed at creation.
type TransactionPatch struct {
	AmountPaid    *float64       `json:"amountPaid"`
	PaymentStatus *PaymentStatus `json:"paymentStatus"`
	PaymentMethod *string        `json:"paymentMethod"`
}

func (p TransactionPatch) Apply(t *Transaction) {
	if p.AmountPaid != nil {
		t.AmountPaid = *p.AmountPaid
	}
	if p.PaymentStatus != nil {
		t.PaymentStatus = *p.PaymentStatus
	}
	if p.PaymentMethod != nil {
		t.PaymentMethod = *p.PaymentMethod
	}
}
