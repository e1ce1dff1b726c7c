package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusUnpaid        InvoiceStatus = "UNPAID"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
	InvoiceStatusOverdue       InvoiceStatus = "OVERDUE"
	InvoiceStatusVoid          InvoiceStatus = "VOID"
)

// Invoice bills a customer order to a user. TransactionID is set once the
// invoice is settled. AmountDue is taken as given; it is not reconciled
// against the order's line items.
type Invoice struct {
	ID              string        `json:"id"`
	CustomerOrderID string        `json:"customerOrderId"`
	UserID          string        `json:"userId"`
	AmountDue       float64       `json:"amountDue"`
	Status          InvoiceStatus `json:"status"`
	DueDate         time.Time     `json:"dueDate"`
	TransactionID   *string       `json:"transactionId,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       *time.Time    `json:"updatedAt,omitempty"`
}

func ValidateNewInvoice(inv *Invoice) error {
	if inv.CustomerOrderID == "" || inv.UserID == "" {
		return badRequest("Pass the required fields")
	}
	if inv.Status == "" {
		inv.Status = InvoiceStatusUnpaid
	}
	return nil
}

// InvoicePatch: dueDate is fixed at creation, everything else follows the
// apply-if-present rule.
type InvoicePatch struct {
	CustomerOrderID *string        `json:"customerOrderId"`
	UserID          *string        `json:"userId"`
	AmountDue       *float64       `json:"amountDue"`
	Status          *InvoiceStatus `json:"status"`
	TransactionID   *string        `json:"transactionId"`
}

func (p InvoicePatch) Apply(inv *Invoice) {
	if p.CustomerOrderID != nil {
		inv.CustomerOrderID = *p.CustomerOrderID
	}
	if p.UserID != nil {
		inv.UserID = *p.UserID
	}
	if p.AmountDue != nil {
		inv.AmountDue = *p.AmountDue
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	if p.TransactionID != nil {
		inv.TransactionID = p.TransactionID
	}
}
