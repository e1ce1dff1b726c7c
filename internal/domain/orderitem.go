package domain

import "time"

// OrderItem is one product line within exactly one order. Price is a unit
// price snapshot taken at order time, not a live product price.
type OrderItem struct {
	ID              string     `json:"id"`
	ProductID       string     `json:"productId"`
	CustomerOrderID *string    `json:"customerOrderId,omitempty"`
	BusinessOrderID *string    `json:"businessOrderId,omitempty"`
	Quantity        int        `json:"quantity"`
	Price           float64    `json:"price"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// ValidateNewOrderItem requires a product reference and exactly one owning
// order, customer or business.
func ValidateNewOrderItem(i *OrderItem) error {
	if i.ProductID == "" {
		return badRequest("Pass the required fields")
	}
	if (i.CustomerOrderID == nil) == (i.BusinessOrderID == nil) {
		return badRequest("An order item must belong to exactly one of a customer order or a business order")
	}
	return nil
}

// OrderItemPatch covers quantity and price only; the product and order
// references are fixed at creation.
type OrderItemPatch struct {
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
}

func (p OrderItemPatch) Apply(i *OrderItem) {
	if p.Quantity != nil {
		i.Quantity = *p.Quantity
	}
	if p.Price != nil {
		i.Price = *p.Price
	}
}
