package constant

// PurchaseOrderStatus is persisted as-is in purchase_order.status.
type PurchaseOrderStatus string

const (
	// StatusNone is the state of an order that has not been created yet.
	StatusNone       PurchaseOrderStatus = ""
	StatusPending    PurchaseOrderStatus = "PENDING"
	StatusApproved   PurchaseOrderStatus = "APPROVED"
	StatusAccepted   PurchaseOrderStatus = "ACCEPTED"
	StatusDispatched PurchaseOrderStatus = "DISPATCHED"
	StatusCompleted  PurchaseOrderStatus = "COMPLETED"
	StatusRejected   PurchaseOrderStatus = "REJECTED"
)

var PurchaseOrderStatuses = []PurchaseOrderStatus{
	StatusPending,
	StatusApproved,
	StatusAccepted,
	StatusDispatched,
	StatusCompleted,
	StatusRejected,
}

func (s PurchaseOrderStatus) Valid() bool {
	for _, st := range PurchaseOrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s PurchaseOrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

type OrderAction string

const (
	ActionCreate   OrderAction = "create"
	ActionApprove  OrderAction = "approve"
	ActionAccept   OrderAction = "accept"
	ActionReject   OrderAction = "reject"
	ActionDispatch OrderAction = "dispatch"
	ActionComplete OrderAction = "complete"
)

var OrderActions = []OrderAction{
	ActionCreate,
	ActionApprove,
	ActionAccept,
	ActionReject,
	ActionDispatch,
	ActionComplete,
}

// DeliveryDateLayout is the accepted format of the accept payload.
const DeliveryDateLayout = "2006-01-02"
