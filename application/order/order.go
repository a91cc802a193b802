package order

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	catalogrepo "github.com/muhammadheryan/restock/repository/catalog"
	orderrepo "github.com/muhammadheryan/restock/repository/order"
	txrepo "github.com/muhammadheryan/restock/repository/tx"
	"github.com/muhammadheryan/restock/thirdparty/rabbitmq"
	"github.com/muhammadheryan/restock/utils/errors"
	"github.com/muhammadheryan/restock/utils/logger"
	validatorx "github.com/muhammadheryan/restock/utils/validator"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type OrderApp interface {
	Create(ctx context.Context, actor model.Actor, req *model.CreateOrderRequest) (*model.PurchaseOrder, error)
	CreateBatch(ctx context.Context, actor model.Actor, req *model.BatchRequest) (*model.BatchResult, error)
	Approve(ctx context.Context, orderID uint64, actor model.Actor, payload model.TransitionPayload) (*model.PurchaseOrder, error)
	Accept(ctx context.Context, orderID uint64, actor model.Actor, payload model.TransitionPayload) (*model.PurchaseOrder, error)
	Reject(ctx context.Context, orderID uint64, actor model.Actor, payload model.TransitionPayload) (*model.PurchaseOrder, error)
	Dispatch(ctx context.Context, orderID uint64, actor model.Actor, payload model.TransitionPayload) (*model.PurchaseOrder, error)
	Complete(ctx context.Context, orderID uint64, actor model.Actor, payload model.TransitionPayload) (*model.PurchaseOrder, error)
	Get(ctx context.Context, actor model.Actor, orderID uint64) (*model.PurchaseOrder, error)
	List(ctx context.Context, actor model.Actor, filter *model.PurchaseOrderFilter) ([]model.PurchaseOrder, error)
}

// EventPublisher receives lifecycle events after commit. *rabbitmq.Publisher implements it.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, msg rabbitmq.PurchaseOrderEvent) error
}

type orderAppImpl struct {
	txRepo      txrepo.TxRepository
	orderRepo   orderrepo.OrderRepository
	catalogRepo catalogrepo.CatalogRepository
	publisher   EventPublisher
	now         func() time.Time
}

// NewOrderApp wires the order service. publisher may be nil.
func NewOrderApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, catalogRepo catalogrepo.CatalogRepository, publisher EventPublisher) OrderApp {
	return &orderAppImpl{
		txRepo:      txRepo,
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		publisher:   publisher,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Second)
		},
	}
}

func (s *orderAppImpl) Create(ctx context.Context, actor model.Actor, req *model.CreateOrderRequest) (*model.PurchaseOrder, error) {
	if err := CanCreate(actor); err != nil {
		return nil, err
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrValidation, validatorx.Messages(err)...)
	}

	vendor, err := s.catalogRepo.GetVendor(ctx, req.VendorID)
	if err != nil {
		logger.Error("[Create] get vendor", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if vendor == nil {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrValidation, "unknown vendor")
	}

	product, err := s.catalogRepo.GetProduct(ctx, req.ProductID)
	if err != nil {
		logger.Error("[Create] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrValidation, "unknown product")
	}

	po, err := s.orderRepo.InsertOrder(ctx, &model.InsertPurchaseOrder{
		ProductID:     req.ProductID,
		VendorID:      vendor.ID,
		VendorEmail:   model.NormalizeEmail(vendor.Email),
		Quantity:      req.Quantity,
		ExpectedPrice: req.ExpectedPrice,
		Status:        constant.StatusPending,
		CreatedAt:     s.now(),
	})
	if err != nil {
		logger.Error("[Create] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[Create] purchase order created", zap.Uint64("order_id", po.ID), zap.String("actor", actor.Email))
	s.publish(ctx, po, constant.ActionCreate, actor)
	return po, nil
}

// CreateBatch is best effort: every item is inserted on its own and failures
// are reported by index. Orders already created are kept when a later item fails.
func (s *orderAppImpl) CreateBatch(ctx context.Context, actor model.Actor, req *model.BatchRequest) (*model.BatchResult, error) {
	if err := CanCreate(actor); err != nil {
		return nil, err
	}
	if req.VendorID == 0 {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrValidation, "vendor_id is required")
	}
	if len(req.Items) == 0 {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrValidation, "items must not be empty")
	}

	vendor, err := s.catalogRepo.GetVendor(ctx, req.VendorID)
	if err != nil {
		logger.Error("[CreateBatch] get vendor", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if vendor == nil {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrValidation, "unknown vendor")
	}

	result := &model.BatchResult{
		VendorID: vendor.ID,
		Created:  make([]model.PurchaseOrder, 0, len(req.Items)),
		Failed:   make([]model.BatchFailure, 0),
	}
	fail := func(i int, item model.BatchItem, reason string) {
		result.Failed = append(result.Failed, model.BatchFailure{Index: i, Item: item, Reason: reason})
	}

	for i, item := range req.Items {
		if err := validatorx.ValidateStruct(&item); err != nil {
			fail(i, item, strings.Join(validatorx.Messages(err), "; "))
			continue
		}

		product, err := s.catalogRepo.GetProduct(ctx, item.ProductID)
		if err != nil {
			logger.Error("[CreateBatch] get product", zap.Uint64("product_id", item.ProductID), zap.String("error", err.Error()))
			fail(i, item, "catalog lookup failed")
			continue
		}
		if product == nil {
			fail(i, item, "unknown product")
			continue
		}

		po, err := s.orderRepo.InsertOrder(ctx, &model.InsertPurchaseOrder{
			ProductID:     item.ProductID,
			VendorID:      vendor.ID,
			VendorEmail:   model.NormalizeEmail(vendor.Email),
			Quantity:      item.Quantity,
			ExpectedPrice: item.ExpectedPrice,
			Status:        constant.StatusPending,
			CreatedAt:     s.now(),
		})
		if err != nil {
			logger.Error("[CreateBatch] insert order", zap.Uint64("product_id", item.ProductID), zap.String("error", err.Error()))
			fail(i, item, "order store rejected item")
			continue
		}
		result.Created = append(result.Created, *po)
		s.publish(ctx, po, constant.ActionCreate, actor)
	}

	logger.Info("[CreateBatch] batch processed",
		zap.Uint64("vendor_id", vendor.ID),
		zap.Int("created", len(result.Created)),
		zap.Int("failed", len(result.Failed)),
		zap.String("actor", actor.Email),
	)
	return result, nil
}

func (s *orderAppImpl) Approve(ctx context.Context, orderID uint64, actor model.Actor, payload model.TransitionPayload) (*model.PurchaseOrder, error) {
	return s.transition(ctx, orderID, constant.ActionApprove, actor, payload)
}

func (s *orderAppImpl) Accept(ctx context.Context, orderID uint64, actor model.Actor, payload model.TransitionPayload) (*model.PurchaseOrder, error) {
	return s.transition(ctx, orderID, constant.ActionAccept, actor, payload)
}

func (s *orderAppImpl) Reject(ctx context.Context, orderID uint64, actor model.Actor, payload model.TransitionPayload) (*model.PurchaseOrder, error) {
	return s.transition(ctx, orderID, constant.ActionReject, actor, payload)
}

func (s *orderAppImpl) Dispatch(ctx context.Context, orderID uint64, actor model.Actor, payload model.TransitionPayload) (*model.PurchaseOrder, error) {
	return s.transition(ctx, orderID, constant.ActionDispatch, actor, payload)
}

// Complete also stocks the ordered quantity into the product, in the same transaction.
func (s *orderAppImpl) Complete(ctx context.Context, orderID uint64, actor model.Actor, payload model.TransitionPayload) (*model.PurchaseOrder, error) {
	return s.transition(ctx, orderID, constant.ActionComplete, actor, payload)
}

func (s *orderAppImpl) transition(ctx context.Context, orderID uint64, action constant.OrderAction, actor model.Actor, payload model.TransitionPayload) (*model.PurchaseOrder, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Transition] begin tx", zap.String("action", string(action)), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	current, err := s.orderRepo.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[Transition] get order", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if current == nil {
		return nil, notFoundFor(actor)
	}

	next, fields, err := Transition(*current, action, actor, payload, s.now())
	if err != nil {
		return nil, err
	}

	saved, err := s.orderRepo.SaveTransitionTx(ctx, tx, orderID, current.Status, next.Status, fields)
	if err != nil {
		if errors.Is(err, constant.ErrConcurrentModification) {
			logger.Info("[Transition] lost status race", zap.Uint64("order_id", orderID), zap.String("action", string(action)))
			return nil, err
		}
		logger.Error("[Transition] save transition", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if action == constant.ActionComplete {
		if err := s.catalogRepo.StockInTx(ctx, tx, saved.ProductID, saved.Quantity); err != nil {
			logger.Error("[Transition] stock in", zap.Uint64("order_id", orderID), zap.Uint64("product_id", saved.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Transition] commit tx", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[Transition] purchase order moved",
		zap.Uint64("order_id", orderID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(saved.Status)),
		zap.String("actor", actor.Email),
	)
	s.publish(ctx, saved, action, actor)
	return saved, nil
}

func (s *orderAppImpl) Get(ctx context.Context, actor model.Actor, orderID uint64) (*model.PurchaseOrder, error) {
	po, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("[Get] get order", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if po == nil {
		return nil, notFoundFor(actor)
	}
	if actor.Is(constant.RoleVendor) && !ownsOrder(*po, actor) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}
	return po, nil
}

// List scopes vendors to their own orders regardless of the filter they send.
func (s *orderAppImpl) List(ctx context.Context, actor model.Actor, filter *model.PurchaseOrderFilter) ([]model.PurchaseOrder, error) {
	f := model.PurchaseOrderFilter{}
	if filter != nil {
		f = *filter
	}
	if f.Status != constant.StatusNone && !f.Status.Valid() {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrValidation, "unknown status")
	}
	if actor.Is(constant.RoleVendor) {
		f.VendorEmail = actor.Email
	}
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	items, err := s.orderRepo.List(ctx, &f)
	if err != nil {
		logger.Error("[List] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// notFoundFor hides order existence from vendors.
func notFoundFor(actor model.Actor) error {
	if actor.Is(constant.RoleVendor) {
		return errors.SetCustomError(constant.ErrPermissionDenied)
	}
	return errors.SetCustomError(constant.ErrNotFound)
}

func (s *orderAppImpl) publish(ctx context.Context, po *model.PurchaseOrder, action constant.OrderAction, actor model.Actor) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.PurchaseOrderEvent{
		EventID:     uuid.NewString(),
		OrderID:     po.ID,
		ProductID:   po.ProductID,
		VendorID:    po.VendorID,
		VendorEmail: po.VendorEmail,
		Quantity:    po.Quantity,
		Action:      action,
		Status:      po.Status,
		ActorEmail:  actor.Email,
		OccurredAt:  s.now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, msg); err != nil {
		logger.Error("[publish] purchase order event", zap.Uint64("order_id", po.ID), zap.String("error", err.Error()))
	}
}
