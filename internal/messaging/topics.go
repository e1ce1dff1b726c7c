package messaging

// Topics carrying entity lifecycle events. One topic per event type; the
// message key is the entity id so updates for one entity stay ordered within
// a partition.
const (
	TopicOrderCreated        = "order.created"
	TopicInvoiceCreated      = "invoice.created"
	TopicTransactionRecorded = "transaction.recorded"
)
