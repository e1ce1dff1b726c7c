package domain

import "time"

// Product name is unique across all businesses, enforced by the store.
type Product struct {
	ID          string     `json:"id"`
	BusinessID  string     `json:"businessId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Quantity    int        `json:"quantity"`
	IsAvailable bool       `json:"isAvailable"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func ValidateNewProduct(p *Product) error {
	if p.Name == "" || p.BusinessID == "" {
		return badRequest("Pass the required fields")
	}
	return nil
}

// ProductPatch covers the mutable columns; the owning business is fixed at
// creation.
type ProductPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	IsAvailable *bool   `json:"isAvailable"`
}

func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Quantity != nil {
		p.Quantity = *pp.Quantity
	}
	if pp.IsAvailable != nil {
		p.IsAvailable = *pp.IsAvailable
	}
}
