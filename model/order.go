package model

import (
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/shopspring/decimal"
)

// PurchaseOrder is one product/vendor restock request. Side-effect columns are
// nil until the transition that produces them.
type PurchaseOrder struct {
	ID              uint64                       `db:"id" json:"id"`
	ProductID       uint64                       `db:"product_id" json:"product_id"`
	VendorID        uint64                       `db:"vendor_id" json:"vendor_id"`
	VendorEmail     string                       `db:"vendor_email" json:"vendor_email"`
	Quantity        int                          `db:"quantity" json:"quantity"`
	ExpectedPrice   decimal.NullDecimal          `db:"expected_price" json:"expected_price" swaggertype:"string"`
	Status          constant.PurchaseOrderStatus `db:"status" json:"status"`
	TrackingNumber  *string                      `db:"tracking_number" json:"tracking_number,omitempty"`
	DeliveryDate    *time.Time                   `db:"delivery_date" json:"delivery_date,omitempty"`
	RejectionReason *string                      `db:"rejection_reason" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time                    `db:"created_at" json:"created_at"`
	ApprovedAt      *time.Time                   `db:"approved_at" json:"approved_at,omitempty"`
	AcceptedAt      *time.Time                   `db:"accepted_at" json:"accepted_at,omitempty"`
	DispatchDate    *time.Time                   `db:"dispatch_date" json:"dispatch_date,omitempty"`
	CompletedAt     *time.Time                   `db:"completed_at" json:"completed_at,omitempty"`
	RejectedAt      *time.Time                   `db:"rejected_at" json:"rejected_at,omitempty"`
}

// CreateOrderRequest creates a single PENDING order.
type CreateOrderRequest struct {
	ProductID     uint64              `json:"product_id" validate:"required"`
	VendorID      uint64              `json:"vendor_id" validate:"required"`
	Quantity      int                 `json:"quantity" validate:"required,gt=0"`
	ExpectedPrice decimal.NullDecimal `json:"expected_price" validate:"omitempty,gte=0" swaggertype:"string"`
}

type BatchItem struct {
	ProductID     uint64              `json:"product_id" validate:"required"`
	Quantity      int                 `json:"quantity" validate:"gt=0"`
	ExpectedPrice decimal.NullDecimal `json:"expected_price" validate:"omitempty,gte=0" swaggertype:"string"`
}

// BatchRequest creates one PENDING order per item for a single vendor.
type BatchRequest struct {
	VendorID uint64      `json:"vendor_id"`
	Items    []BatchItem `json:"items"`
}

type BatchFailure struct {
	Index  int       `json:"index"`
	Item   BatchItem `json:"item"`
	Reason string    `json:"reason"`
}

// BatchResult reports a best-effort batch item by item. Orders in Created are
// persisted even when Failed is non-empty.
type BatchResult struct {
	VendorID uint64          `json:"vendor_id"`
	Created  []PurchaseOrder `json:"created"`
	Failed   []BatchFailure  `json:"failed"`
}

type InsertPurchaseOrder struct {
	ProductID     uint64
	VendorID      uint64
	VendorEmail   string
	Quantity      int
	ExpectedPrice decimal.NullDecimal
	Status        constant.PurchaseOrderStatus
	CreatedAt     time.Time
}

// TransitionPayload carries the action specific input of a transition.
type TransitionPayload struct {
	DeliveryDate string `json:"delivery_date"`
	Reason       string `json:"reason"`
	TrackingInfo string `json:"tracking_info"`
}

// TransitionFields are the side-effect columns written by one transition.
// Nil means untouched.
type TransitionFields struct {
	ApprovedAt      *time.Time
	AcceptedAt      *time.Time
	DeliveryDate    *time.Time
	DispatchDate    *time.Time
	TrackingNumber  *string
	CompletedAt     *time.Time
	RejectedAt      *time.Time
	RejectionReason *string
}

type PurchaseOrderFilter struct {
	VendorID    uint64
	VendorEmail string
	ProductID   uint64
	Status      constant.PurchaseOrderStatus
	Limit       int
	Offset      int
}

type ListOrdersResponse struct {
	Items   []PurchaseOrder `json:"items"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
}
