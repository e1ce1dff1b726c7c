package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/techify/inventora/internal/crud"
	"github.com/techify/inventora/internal/domain"
	"github.com/techify/inventora/internal/messaging"
	"github.com/techify/inventora/internal/store/postgres"
)

// Publishers carries the per-topic event producers. Any of them may be nil,
// in which case the corresponding event is simply not published.
type Publishers struct {
	OrderCreated        *messaging.Producer
	InvoiceCreated      *messaging.Producer
	TransactionRecorded *messaging.Producer
}

// AddRoutes wires every entity's repository, service and resource handler
// onto the mux under /api/{entity}/.
func AddRoutes(mux *http.ServeMux, db *sql.DB, pubs Publishers, logger *slog.Logger) {
	users := postgres.NewUserRepository(db)
	NewResource("User", "USER",
		crud.NewService[domain.User, domain.UserPatch](users, domain.ValidateNewUser), logger).
		Register(mux, "/api/user/")

	businesses := postgres.NewBusinessRepository(db)
	NewResource("Business", "BUSINESS",
		crud.NewService[domain.Business, domain.BusinessPatch](businesses, domain.ValidateNewBusiness), logger).
		Register(mux, "/api/business/")

	products := postgres.NewProductRepository(db)
	NewResource("Product", "PRODUCT",
		crud.NewService[domain.Product, domain.ProductPatch](products, domain.ValidateNewProduct), logger).
		WithFilter("business", products.ListByBusiness).
		Register(mux, "/api/product/")

	businessOrders := postgres.NewBusinessOrderRepository(db)
	NewResource("BusinessOrder", "BUSINESS_ORDER",
		crud.NewService[domain.BusinessOrder, domain.BusinessOrderPatch](businessOrders, domain.ValidateNewBusinessOrder), logger).
		Register(mux, "/api/businessorder/")

	customerOrders := postgres.NewCustomerOrderRepository(db)
	NewResource("CustomerOrder", "CUSTOMER_ORDER",
		crud.NewService[domain.CustomerOrder, domain.CustomerOrderPatch](customerOrders, domain.ValidateNewCustomerOrder), logger).
		WithAfterCreate(func(ctx context.Context, o *domain.CustomerOrder) {
			publish(ctx, pubs.OrderCreated, logger, o.ID, domain.OrderCreatedEvent{
				OrderID:    o.ID,
				BusinessID: o.BusinessID,
				UserID:     o.UserID,
				Status:     o.Status,
				Timestamp:  time.Now().UTC(),
			})
		}).
		Register(mux, "/api/customerorder/")

	orderItems := postgres.NewOrderItemRepository(db)
	NewResource("OrderItem", "ORDER_ITEM",
		crud.NewService[domain.OrderItem, domain.OrderItemPatch](orderItems, domain.ValidateNewOrderItem), logger).
		WithFilter("customer_order", orderItems.ListByCustomerOrder).
		WithFilter("business_order", orderItems.ListByBusinessOrder).
		Register(mux, "/api/orderitem/")

	invoices := postgres.NewInvoiceRepository(db)
	NewResource("Invoice", "INVOICE",
		crud.NewService[domain.Invoice, domain.InvoicePatch](invoices, domain.ValidateNewInvoice), logger).
		WithFilter("user", invoices.ListByUser).
		WithAfterCreate(func(ctx context.Context, inv *domain.Invoice) {
			publish(ctx, pubs.InvoiceCreated, logger, inv.ID, domain.InvoiceCreatedEvent{
				InvoiceID:       inv.ID,
				CustomerOrderID: inv.CustomerOrderID,
				UserID:          inv.UserID,
				AmountDue:       inv.AmountDue,
				DueDate:         inv.DueDate,
				Timestamp:       time.Now().UTC(),
			})
		}).
		Register(mux, "/api/invoice/")

	transactions := postgres.NewTransactionRepository(db)
	NewResource("Transaction", "TRANSACTION",
		crud.NewService[domain.Transaction, domain.TransactionPatch](transactions, domain.ValidateNewTransaction), logger).
		WithAfterCreate(func(ctx context.Context, t *domain.Transaction) {
			publish(ctx, pubs.TransactionRecorded, logger, t.ID, domain.TransactionRecordedEvent{
				TransactionID: t.ID,
				InvoiceID:     t.InvoiceID,
				AmountPaid:    t.AmountPaid,
				PaymentStatus: t.PaymentStatus,
				Timestamp:     time.Now().UTC(),
			})
		}).
		Register(mux, "/api/transaction/")
}

// publish sends an event if the producer is configured. Publish failures are
// logged, never surfaced: the row is already committed.
func publish(ctx context.Context, p *messaging.Producer, logger *slog.Logger, key string, event any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, key, event); err != nil {
		logger.Error("failed to publish event", "key", key, "error", err)
	}
}
