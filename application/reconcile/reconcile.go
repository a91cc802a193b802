package reconcile

import (
	"context"
	stderrors "errors"
	"fmt"

	catalogapp "github.com/muhammadheryan/restock/application/catalog"
	orderapp "github.com/muhammadheryan/restock/application/order"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/thirdparty/forecast"
	"github.com/muhammadheryan/restock/utils/errors"
	"github.com/muhammadheryan/restock/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ReconcileApp interface {
	StartSession(ctx context.Context, actor model.Actor) (*model.ReconciliationView, error)
	View(ctx context.Context, actor model.Actor, sessionID string) (*model.ReconciliationView, error)
	SetQuantity(ctx context.Context, actor model.Actor, sessionID string, productID uint64, value string) (*model.ReconciliationView, error)
	SetVendor(ctx context.Context, actor model.Actor, sessionID string, productID, vendorID uint64) (*model.ReconciliationView, error)
	Delete(ctx context.Context, actor model.Actor, sessionID string, productID uint64) (*model.ReconciliationView, error)
	Restore(ctx context.Context, actor model.Actor, sessionID string, productID uint64) (*model.ReconciliationView, error)
	Reset(ctx context.Context, actor model.Actor, sessionID string, productID uint64) (*model.ReconciliationView, error)
	UpdateSelection(ctx context.Context, actor model.Actor, sessionID string, req *model.SelectionRequest) (*model.ReconciliationView, error)
	Submit(ctx context.Context, actor model.Actor, sessionID string) (*model.SubmitResponse, error)
	Close(ctx context.Context, actor model.Actor, sessionID string) error
}

type reconcileAppImpl struct {
	forecast          forecast.Client
	catalogApp        catalogapp.CatalogApp
	orderApp          orderapp.OrderApp
	registry          *Registry
	enrichConcurrency int
}

func NewReconcileApp(forecastClient forecast.Client, catalogApp catalogapp.CatalogApp, orderApp orderapp.OrderApp, registry *Registry, enrichConcurrency int) ReconcileApp {
	if enrichConcurrency <= 0 {
		enrichConcurrency = 1
	}
	return &reconcileAppImpl{
		forecast:          forecastClient,
		catalogApp:        catalogApp,
		orderApp:          orderApp,
		registry:          registry,
		enrichConcurrency: enrichConcurrency,
	}
}

// StartSession fetches a fresh recommendation list and opens a session on it.
// Only actors that may create orders can reconcile.
func (s *reconcileAppImpl) StartSession(ctx context.Context, actor model.Actor) (*model.ReconciliationView, error) {
	if err := orderapp.CanCreate(actor); err != nil {
		return nil, err
	}

	var (
		recs    []model.RestockRecommendation
		vendors []model.Vendor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.forecast.ListRecommendations(gctx)
		if err != nil {
			logger.Error("[StartSession] forecast.ListRecommendations", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		recs = r
		return nil
	})
	g.Go(func() error {
		v, err := s.catalogApp.ListVendors(gctx)
		if err != nil {
			return err
		}
		vendors = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recs = firstPerProduct(recs)
	s.enrich(ctx, recs, vendors)

	sess := NewSession(vendors)
	sess.Load(recs)
	id := s.registry.Put(actor.Email, sess)

	logger.Info("[StartSession] reconciliation session opened",
		zap.String("session_id", id),
		zap.Int("items", sess.Len()),
		zap.String("actor", actor.Email),
	)

	view := sess.Snapshot()
	view.SessionID = id
	return &view, nil
}

// firstPerProduct keeps the first recommendation of every product, the same
// one Session.Load keeps.
func firstPerProduct(recs []model.RestockRecommendation) []model.RestockRecommendation {
	seen := make(map[uint64]struct{}, len(recs))
	out := make([]model.RestockRecommendation, 0, len(recs))
	for _, rec := range recs {
		if _, dup := seen[rec.ProductID]; dup {
			continue
		}
		seen[rec.ProductID] = struct{}{}
		out = append(out, rec)
	}
	return out
}

// enrich fills display fields the forecast left empty. Lookup failures leave
// the recommendation as it is.
func (s *reconcileAppImpl) enrich(ctx context.Context, recs []model.RestockRecommendation, vendors []model.Vendor) {
	names := make(map[uint64]string, len(vendors))
	for _, v := range vendors {
		names[v.ID] = v.FullName
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.enrichConcurrency)
	for i := range recs {
		if recs[i].VendorName == "" {
			recs[i].VendorName = names[recs[i].VendorID]
		}
		if recs[i].ProductName != "" && recs[i].SKU != "" {
			continue
		}
		g.Go(func() error {
			product, err := s.catalogApp.GetProduct(gctx, recs[i].ProductID)
			if err != nil {
				logger.Warn("[StartSession] enrich product", zap.Uint64("product_id", recs[i].ProductID), zap.String("error", err.Error()))
				return nil
			}
			if recs[i].ProductName == "" {
				recs[i].ProductName = product.Name
			}
			if recs[i].SKU == "" {
				recs[i].SKU = product.SKU
			}
			if recs[i].CurrentStock == 0 {
				recs[i].CurrentStock = product.Quantity
			}
			if recs[i].ReorderLevel == 0 {
				recs[i].ReorderLevel = product.ReorderLevel
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (s *reconcileAppImpl) edit(actor model.Actor, sessionID string, fn func(*Session) error) (*model.ReconciliationView, error) {
	var view model.ReconciliationView
	err := s.registry.With(sessionID, actor.Email, func(sess *Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		view = sess.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	view.SessionID = sessionID
	return &view, nil
}

func (s *reconcileAppImpl) View(ctx context.Context, actor model.Actor, sessionID string) (*model.ReconciliationView, error) {
	return s.edit(actor, sessionID, func(*Session) error { return nil })
}

func (s *reconcileAppImpl) SetQuantity(ctx context.Context, actor model.Actor, sessionID string, productID uint64, value string) (*model.ReconciliationView, error) {
	return s.edit(actor, sessionID, func(sess *Session) error {
		sess.SetQuantity(productID, value)
		return nil
	})
}

func (s *reconcileAppImpl) SetVendor(ctx context.Context, actor model.Actor, sessionID string, productID, vendorID uint64) (*model.ReconciliationView, error) {
	return s.edit(actor, sessionID, func(sess *Session) error {
		sess.SetVendor(productID, vendorID)
		return nil
	})
}

func (s *reconcileAppImpl) Delete(ctx context.Context, actor model.Actor, sessionID string, productID uint64) (*model.ReconciliationView, error) {
	return s.edit(actor, sessionID, func(sess *Session) error {
		sess.Delete(productID)
		return nil
	})
}

func (s *reconcileAppImpl) Restore(ctx context.Context, actor model.Actor, sessionID string, productID uint64) (*model.ReconciliationView, error) {
	return s.edit(actor, sessionID, func(sess *Session) error {
		sess.Restore(productID)
		return nil
	})
}

func (s *reconcileAppImpl) Reset(ctx context.Context, actor model.Actor, sessionID string, productID uint64) (*model.ReconciliationView, error) {
	return s.edit(actor, sessionID, func(sess *Session) error {
		sess.Reset(productID)
		return nil
	})
}

func (s *reconcileAppImpl) UpdateSelection(ctx context.Context, actor model.Actor, sessionID string, req *model.SelectionRequest) (*model.ReconciliationView, error) {
	var urgency constant.Urgency
	if req.Action == "urgency" {
		u, ok := constant.ParseUrgency(req.Urgency)
		if !ok {
			return nil, errors.SetCustomErrorWithDetails(constant.ErrValidation, "unknown urgency")
		}
		urgency = u
	}

	return s.edit(actor, sessionID, func(sess *Session) error {
		switch req.Action {
		case "select":
			sess.Select(req.ProductID)
		case "toggle":
			sess.ToggleSelect(req.ProductID)
		case "urgency":
			sess.SelectByUrgency(urgency)
		case "all":
			sess.SelectAll()
		case "clear":
			sess.ClearSelection()
		default:
			return errors.SetCustomErrorWithDetails(constant.ErrValidation, "unknown selection action")
		}
		return nil
	})
}

// Submit turns the selection into one best-effort batch per vendor. The
// session stays locked for the whole submission so it cannot be submitted
// twice in parallel. Products whose order was created are deselected; failed
// ones stay selected for a retry.
func (s *reconcileAppImpl) Submit(ctx context.Context, actor model.Actor, sessionID string) (*model.SubmitResponse, error) {
	if err := orderapp.CanCreate(actor); err != nil {
		return nil, err
	}

	resp := &model.SubmitResponse{Batches: make([]model.BatchResult, 0)}
	err := s.registry.With(sessionID, actor.Email, func(sess *Session) error {
		intents, err := sess.BuildOrderIntents(sess.Selection())
		if err != nil {
			return err
		}

		for _, batch := range GroupByVendor(intents) {
			result, err := s.orderApp.CreateBatch(ctx, actor, &batch)
			if err != nil {
				result = failedBatch(batch, err)
			}
			for _, po := range result.Created {
				sess.Deselect(po.ProductID)
			}
			resp.Batches = append(resp.Batches, *result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// failedBatch reports a batch the order service refused as a whole.
func failedBatch(batch model.BatchRequest, err error) *model.BatchResult {
	reason := err.Error()
	var ce errors.CustomError
	if stderrors.As(err, &ce) && len(ce.Details()) > 0 {
		reason = fmt.Sprintf("%s: %s", ce.Error(), ce.Details()[0])
	}
	result := &model.BatchResult{
		VendorID: batch.VendorID,
		Created:  []model.PurchaseOrder{},
		Failed:   make([]model.BatchFailure, 0, len(batch.Items)),
	}
	for i, item := range batch.Items {
		result.Failed = append(result.Failed, model.BatchFailure{Index: i, Item: item, Reason: reason})
	}
	return result
}

func (s *reconcileAppImpl) Close(ctx context.Context, actor model.Actor, sessionID string) error {
	return s.registry.Remove(sessionID, actor.Email)
}
