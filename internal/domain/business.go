package domain

import "time"

// Business is a tenant on the platform: it owns products and both kinds of
// orders. The owner is a required reference to a User.
type Business struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	OwnerID     string     `json:"ownerId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func ValidateNewBusiness(b *Business) error {
	if b.Name == "" || b.OwnerID == "" {
		return badRequest("Pass the required fields")
	}
	return nil
}

type BusinessPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	OwnerID     *string `json:"ownerId"`
}

func (p BusinessPatch) Apply(b *Business) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.OwnerID != nil {
		b.OwnerID = *p.OwnerID
	}
}
