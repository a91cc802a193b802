package order

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

type OrderRepository interface {
	InsertOrder(ctx context.Context, req *model.InsertPurchaseOrder) (*model.PurchaseOrder, error)
	GetByID(ctx context.Context, orderID uint64) (*model.PurchaseOrder, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.PurchaseOrder, error)
	List(ctx context.Context, filter *model.PurchaseOrderFilter) ([]model.PurchaseOrder, error)
	SaveTransitionTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, expected, next constant.PurchaseOrderStatus, fields *model.TransitionFields) (*model.PurchaseOrder, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = `id, product_id, vendor_id, vendor_email, quantity, expected_price, status, tracking_number, delivery_date, rejection_reason, created_at, approved_at, accepted_at, dispatch_date, completed_at, rejected_at`

	insertOrderQuery = "INSERT INTO purchase_order (product_id, vendor_id, vendor_email, quantity, expected_price, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)"

	getOrderQuery = "SELECT " + orderColumns + " FROM purchase_order WHERE id = ?"

	listOrdersBase = "SELECT " + orderColumns + " FROM purchase_order WHERE true"

	// Side-effect columns only ever go from NULL to a value.
	saveTransitionQuery = `UPDATE purchase_order SET status = ?,
	approved_at = COALESCE(approved_at, ?),
	accepted_at = COALESCE(accepted_at, ?),
	delivery_date = COALESCE(delivery_date, ?),
	dispatch_date = COALESCE(dispatch_date, ?),
	tracking_number = COALESCE(tracking_number, ?),
	completed_at = COALESCE(completed_at, ?),
	rejected_at = COALESCE(rejected_at, ?),
	rejection_reason = COALESCE(rejection_reason, ?)
WHERE id = ? AND status = ?`
)

func (r *SQL) InsertOrder(ctx context.Context, req *model.InsertPurchaseOrder) (*model.PurchaseOrder, error) {
	res, err := r.conn.ExecContext(ctx, insertOrderQuery, req.ProductID, req.VendorID, req.VendorEmail, req.Quantity, req.ExpectedPrice, req.Status, req.CreatedAt)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "insert purchase order")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "last insert id")
	}
	return &model.PurchaseOrder{
		ID:            uint64(id),
		ProductID:     req.ProductID,
		VendorID:      req.VendorID,
		VendorEmail:   req.VendorEmail,
		Quantity:      req.Quantity,
		ExpectedPrice: req.ExpectedPrice,
		Status:        req.Status,
		CreatedAt:     req.CreatedAt,
	}, nil
}

// GetByID returns nil, nil when the order does not exist.
func (r *SQL) GetByID(ctx context.Context, orderID uint64) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	if err := r.conn.QueryRowxContext(ctx, getOrderQuery, orderID).StructScan(&po); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrapf(err, "get purchase order %d", orderID)
	}
	return &po, nil
}

// GetByIDTx returns nil, nil when the order does not exist.
func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	if err := tx.QueryRowxContext(ctx, getOrderQuery, orderID).StructScan(&po); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrapf(err, "get purchase order %d", orderID)
	}
	return &po, nil
}

func (r *SQL) List(ctx context.Context, filter *model.PurchaseOrderFilter) ([]model.PurchaseOrder, error) {
	query := listOrdersBase
	args := make([]any, 0, 6)

	if filter.VendorID != 0 {
		query += " AND vendor_id = ?"
		args = append(args, filter.VendorID)
	}
	if filter.VendorEmail != "" {
		query += " AND vendor_email = ?"
		args = append(args, filter.VendorEmail)
	}
	if filter.ProductID != 0 {
		query += " AND product_id = ?"
		args = append(args, filter.ProductID)
	}
	if filter.Status != constant.StatusNone {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	query += " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list purchase orders")
	}
	defer rows.Close()

	items := make([]model.PurchaseOrder, 0)
	for rows.Next() {
		var po model.PurchaseOrder
		if err := rows.StructScan(&po); err != nil {
			return nil, pkgerrors.Wrap(err, "scan purchase order")
		}
		items = append(items, po)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "iterate purchase orders")
	}
	return items, nil
}

// SaveTransitionTx moves the order from expected to next only if its status is
// still expected. A lost race surfaces as ErrConcurrentModification.
func (r *SQL) SaveTransitionTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, expected, next constant.PurchaseOrderStatus, fields *model.TransitionFields) (*model.PurchaseOrder, error) {
	if fields == nil {
		fields = &model.TransitionFields{}
	}
	res, err := tx.ExecContext(ctx, saveTransitionQuery,
		next,
		fields.ApprovedAt,
		fields.AcceptedAt,
		fields.DeliveryDate,
		fields.DispatchDate,
		fields.TrackingNumber,
		fields.CompletedAt,
		fields.RejectedAt,
		fields.RejectionReason,
		orderID,
		expected,
	)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "save transition of purchase order %d", orderID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return nil, errors.SetCustomError(constant.ErrConcurrentModification)
	}

	po, err := r.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, errors.SetCustomError(constant.ErrConcurrentModification)
	}
	return po, nil
}
