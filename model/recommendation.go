package model

import "github.com/muhammadheryan/restock/constant"

// RestockRecommendation is produced by the forecasting service and never mutated.
type RestockRecommendation struct {
	ProductID           uint64           `json:"product_id"`
	ProductName         string           `json:"product_name"`
	SKU                 string           `json:"sku"`
	CurrentStock        int64            `json:"current_stock"`
	ReorderLevel        int64            `json:"reorder_level"`
	RecommendedQuantity int              `json:"recommended_quantity"`
	VendorID            uint64           `json:"vendor_id"`
	VendorName          string           `json:"vendor_name"`
	Urgency             constant.Urgency `json:"urgency"`
	Confidence          *float64         `json:"confidence,omitempty"`
}

// ReconciledItem is a recommendation overlaid with the user's edits.
type ReconciledItem struct {
	RestockRecommendation
	ModifiedQuantity   int    `json:"modified_quantity"`
	ModifiedVendorID   uint64 `json:"modified_vendor_id"`
	ModifiedVendorName string `json:"modified_vendor_name"`
	IsDeleted          bool   `json:"is_deleted"`
}

// OrderIntent is a resolved tuple ready to become a purchase order.
type OrderIntent struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int    `json:"quantity"`
	VendorID  uint64 `json:"vendor_id"`
}

type ReconciliationView struct {
	SessionID string           `json:"session_id"`
	Items     []ReconciledItem `json:"items"`
	Selected  []uint64         `json:"selected"`
}

type SetItemRequest struct {
	Quantity *string `json:"quantity"`
	VendorID *uint64 `json:"vendor_id"`
}

type SelectionRequest struct {
	Action    string `json:"action" validate:"required,oneof=select toggle urgency all clear"`
	ProductID uint64 `json:"product_id" validate:"required_if=Action select,required_if=Action toggle"`
	Urgency   string `json:"urgency" validate:"required_if=Action urgency"`
}

type SubmitResponse struct {
	Batches []BatchResult `json:"batches"`
}
