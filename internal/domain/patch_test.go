package domain

import (
	"testing"
	"time"
)

func strPtr(s string) *string    { return &s }
func intPtr(i int) *int          { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestUserPatch_Apply(t *testing.T) {
	base := func() User {
		return User{
			FirstName:  "Asha",
			MiddleName: strPtr("K"),
			LastName:   "Rao",
			Email:      "asha@example.com",
			Password:   "secret",
			Role:       UserRoleUser,
		}
	}

	t.Run("present fields overwrite", func(t *testing.T) {
		u := base()
		role := UserRoleAdmin
		UserPatch{
			FirstName:  strPtr("Usha"),
			MiddleName: strPtr("M"),
			Role:       &role,
		}.Apply(&u)

		if u.FirstName != "Usha" {
			t.Fatalf("expected firstName Usha, got %s", u.FirstName)
		}
		if u.MiddleName == nil || *u.MiddleName != "M" {
			t.Fatal("expected middleName M")
		}
		if u.Role != UserRoleAdmin {
			t.Fatalf("expected role ADMIN, got %s", u.Role)
		}
		if u.LastName != "Rao" || u.Email != "asha@example.com" {
			t.Fatal("absent fields changed")
		}
	})

	t.Run("absent middle name clears the stored value", func(t *testing.T) {
		u := base()
		UserPatch{LastName: strPtr("Iyer")}.Apply(&u)

		if u.LastName != "Iyer" {
			t.Fatalf("expected lastName Iyer, got %s", u.LastName)
		}
		if u.MiddleName != nil {
			t.Fatalf("expected middleName cleared, got %q", *u.MiddleName)
		}
	})
}

func TestBusinessPatch_Apply(t *testing.T) {
	b := Business{Name: "Acme", Description: "tools", OwnerID: "owner-1"}
	BusinessPatch{Description: strPtr("hardware")}.Apply(&b)

	if b.Description != "hardware" {
		t.Fatalf("expected patched description, got %s", b.Description)
	}
	if b.Name != "Acme" || b.OwnerID != "owner-1" {
		t.Fatal("absent fields changed")
	}
}

func TestProductPatch_Apply(t *testing.T) {
	p := Product{BusinessID: "biz-1", Name: "Widget", Quantity: 10, IsAvailable: true}
	available := false
	ProductPatch{Quantity: intPtr(3), IsAvailable: &available}.Apply(&p)

	if p.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", p.Quantity)
	}
	if p.IsAvailable {
		t.Fatal("expected isAvailable false")
	}
	if p.Name != "Widget" || p.BusinessID != "biz-1" {
		t.Fatal("absent fields changed")
	}
}

func TestOrderPatches_Apply(t *testing.T) {
	t.Run("business order", func(t *testing.T) {
		o := BusinessOrder{BusinessID: "biz-1", Status: OrderStatusPending}
		status := OrderStatusShipped
		BusinessOrderPatch{Status: &status}.Apply(&o)

		if o.Status != OrderStatusShipped {
			t.Fatalf("expected SHIPPED, got %s", o.Status)
		}
		if o.BusinessID != "biz-1" {
			t.Fatal("businessId changed")
		}
	})

	t.Run("customer order", func(t *testing.T) {
		o := CustomerOrder{BusinessID: "biz-1", UserID: "user-1", Status: OrderStatusPending}
		status := OrderStatusCancelled
		CustomerOrderPatch{Status: &status}.Apply(&o)

		if o.Status != OrderStatusCancelled {
			t.Fatalf("expected CANCELLED, got %s", o.Status)
		}
		if o.UserID != "user-1" || o.BusinessID != "biz-1" {
			t.Fatal("absent fields changed")
		}
	})
}

func TestInvoicePatch_Apply(t *testing.T) {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	inv := Invoice{
		CustomerOrderID: "order-1",
		UserID:          "user-1",
		AmountDue:       19.98,
		Status:          InvoiceStatusUnpaid,
		DueDate:         due,
	}

	status := InvoiceStatusPaid
	InvoicePatch{Status: &status}.Apply(&inv)

	if inv.Status != InvoiceStatusPaid {
		t.Fatalf("expected PAID, got %s", inv.Status)
	}
	if inv.AmountDue != 19.98 {
		t.Fatalf("amountDue changed: %v", inv.AmountDue)
	}
	if !inv.DueDate.Equal(due) {
		t.Fatal("dueDate changed")
	}
	if inv.TransactionID != nil {
		t.Fatal("transaction reference changed")
	}

	InvoicePatch{TransactionID: strPtr("txn-1")}.Apply(&inv)
	if inv.TransactionID == nil || *inv.TransactionID != "txn-1" {
		t.Fatal("expected transaction reference set")
	}
}

func TestTransactionPatch_Apply(t *testing.T) {
	tr := Transaction{
		AmountPaid:    19.98,
		PaymentStatus: PaymentStatusPending,
		PaymentMethod: "card",
	}

	status := PaymentStatusCompleted
	TransactionPatch{PaymentStatus: &status, AmountPaid: floatPtr(20)}.Apply(&tr)

	if tr.PaymentStatus != PaymentStatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", tr.PaymentStatus)
	}
	if tr.AmountPaid != 20 {
		t.Fatalf("expected amountPaid 20, got %v", tr.AmountPaid)
	}
	if tr.PaymentMethod != "card" {
		t.Fatal("paymentMethod changed")
	}
}

func TestValidateNewOrderItem(t *testing.T) {
	tests := []struct {
		name    string
		item    OrderItem
		wantErr bool
	}{
		{"customer order only", OrderItem{ProductID: "p1", CustomerOrderID: strPtr("c1"), Quantity: 1}, false},
		{"business order only", OrderItem{ProductID: "p1", BusinessOrderID: strPtr("b1"), Quantity: 1}, false},
		{"both orders", OrderItem{ProductID: "p1", CustomerOrderID: strPtr("c1"), BusinessOrderID: strPtr("b1")}, true},
		{"no order", OrderItem{ProductID: "p1"}, true},
		{"no product", OrderItem{CustomerOrderID: strPtr("c1")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNewOrderItem(&tt.item)
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateDefaults(t *testing.T) {
	t.Run("order status defaults to PENDING", func(t *testing.T) {
		o := CustomerOrder{BusinessID: "b1", UserID: "u1"}
		if err := ValidateNewCustomerOrder(&o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != OrderStatusPending {
			t.Fatalf("expected PENDING, got %s", o.Status)
		}
	})

	t.Run("invoice status defaults to UNPAID", func(t *testing.T) {
		inv := Invoice{CustomerOrderID: "c1", UserID: "u1"}
		if err := ValidateNewInvoice(&inv); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != InvoiceStatusUnpaid {
			t.Fatalf("expected UNPAID, got %s", inv.Status)
		}
	})

	t.Run("transaction requires a payment method", func(t *testing.T) {
		tr := Transaction{AmountPaid: 5}
		if err := ValidateNewTransaction(&tr); err == nil {
			t.Fatal("expected validation error")
		}

		tr.PaymentMethod = "card"
		if err := ValidateNewTransaction(&tr); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.PaymentStatus != PaymentStatusPending {
			t.Fatalf("expected PENDING, got %s", tr.PaymentStatus)
		}
	})
}
