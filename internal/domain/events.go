package domain

import "time"

// Events published after successful creates. They carry ids, not embedded
// rows; consumers look up whatever else they need.

type OrderCreatedEvent struct {
	OrderID    string      `json:"orderId"`
	BusinessID string      `json:"businessId"`
	UserID     string      `json:"userId"`
	Status     OrderStatus `json:"status"`
	Timestamp  time.Time   `json:"timestamp"`
}

type InvoiceCreatedEvent struct {
	InvoiceID       string    `json:"invoiceId"`
	CustomerOrderID string    `json:"customerOrderId"`
	UserID          string    `json:"userId"`
	AmountDue       float64   `json:"amountDue"`
	DueDate         time.Time `json:"dueDate"`
	Timestamp       time.Time `json:"timestamp"`
}

type TransactionRecordedEvent struct {
	TransactionID string        `json:"transactionId"`
	InvoiceID     *string       `json:"invoiceId,omitempty"`
	AmountPaid    float64       `json:"amountPaid"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Timestamp     time.Time     `json:"timestamp"`
}
