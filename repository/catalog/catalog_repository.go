package catalog

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/utils/errors"
	pkgerrors "github.com/pkg/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type CatalogRepository interface {
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	ListVendors(ctx context.Context) ([]model.Vendor, error)
	GetVendor(ctx context.Context, id uint64) (*model.Vendor, error)
	StockInTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int) error
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

const (
	getProductQuery  = `SELECT id, name, sku, quantity, reorder_level FROM product WHERE id = ?`
	listVendorsQuery = `SELECT id, email, full_name FROM vendor ORDER BY id`
	getVendorQuery   = `SELECT id, email, full_name FROM vendor WHERE id = ?`
	stockInQuery     = `UPDATE product SET quantity = quantity + ? WHERE id = ?`
)

// GetProduct returns nil, nil for an unknown product.
func (s *SQL) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	var p model.Product
	if err := s.conn.QueryRowxContext(ctx, getProductQuery, id).StructScan(&p); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrapf(err, "get product %d", id)
	}
	return &p, nil
}

func (s *SQL) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	vendors := make([]model.Vendor, 0)
	if err := s.conn.SelectContext(ctx, &vendors, listVendorsQuery); err != nil {
		return nil, pkgerrors.Wrap(err, "list vendors")
	}
	return vendors, nil
}

// GetVendor returns nil, nil for an unknown vendor.
func (s *SQL) GetVendor(ctx context.Context, id uint64) (*model.Vendor, error) {
	var v model.Vendor
	if err := s.conn.QueryRowxContext(ctx, getVendorQuery, id).StructScan(&v); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrapf(err, "get vendor %d", id)
	}
	return &v, nil
}

// StockInTx adds a received quantity to the product's on-hand stock.
func (s *SQL) StockInTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int) error {
	res, err := tx.ExecContext(ctx, stockInQuery, quantity, productID)
	if err != nil {
		return pkgerrors.Wrapf(err, "stock in product %d", productID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return pkgerrors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
