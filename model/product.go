package model

// Product is the catalog record the restock flow reads and stocks in.
type Product struct {
	ID           uint64 `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	SKU          string `db:"sku" json:"sku"`
	Quantity     int64  `db:"quantity" json:"quantity"`
	ReorderLevel int64  `db:"reorder_level" json:"reorder_level"`
}

type Vendor struct {
	ID       uint64 `db:"id" json:"id"`
	Email    string `db:"email" json:"email"`
	FullName string `db:"full_name" json:"full_name"`
}
