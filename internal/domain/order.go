package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// BusinessOrder is a restock order placed by a business. Its line items live
// in order_items and reference it by id.
type BusinessOrder struct {
	ID         string      `json:"id"`
	BusinessID string      `json:"businessId"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  *time.Time  `json:"updatedAt,omitempty"`
}

func ValidateNewBusinessOrder(o *BusinessOrder) error {
	if o.BusinessID == "" {
		return badRequest("Pass the required fields")
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

type BusinessOrderPatch struct {
	BusinessID *string      `json:"businessId"`
	Status     *OrderStatus `json:"status"`
}

func (p BusinessOrderPatch) Apply(o *BusinessOrder) {
	if p.BusinessID != nil {
		o.BusinessID = *p.BusinessID
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
}

// CustomerOrder is a sales order placed by a user against a business.
type CustomerOrder struct {
	ID         string      `json:"id"`
	BusinessID string      `json:"businessId"`
	UserID     string      `json:"userId"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  *time.Time  `json:"updatedAt,omitempty"`
}

func ValidateNewCustomerOrder(o *CustomerOrder) error {
	if o.BusinessID == "" || o.UserID == "" {
		return badRequest("Pass the required fields")
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

type CustomerOrderPatch struct {
	BusinessID *string      `json:"businessId"`
	UserID     *string      `json:"userId"`
	Status     *OrderStatus `json:"status"`
}

func (p CustomerOrderPatch) Apply(o *CustomerOrder) {
	if p.BusinessID != nil {
		o.BusinessID = *p.BusinessID
	}
	if p.UserID != nil {
		o.UserID = *p.UserID
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
}
