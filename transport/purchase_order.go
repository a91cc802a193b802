package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/utils/errors"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
	// keeps (page-1)*per_page far below the int range
	maxPage = 1_000_000
)

// CreateOrder handler
// @Summary Create purchase order
// @Description Creates a single PENDING purchase order
// @Tags PurchaseOrder
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} model.PurchaseOrder
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /v1/purchase-orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.Create(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// CreateBatch handler
// @Summary Create purchase orders for one vendor
// @Description Best effort: created orders are kept and failed items are reported by index
// @Tags PurchaseOrder
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BatchRequest true "Batch Request"
// @Success 200 {object} model.BatchResult
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /v1/purchase-orders/batch [post]
func (s *RestHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.BatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.CreateBatch(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListOrders handler
// @Summary List purchase orders
// @Description Vendors only ever see their own orders
// @Tags PurchaseOrder
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param vendor_id query int false "Vendor filter"
// @Param product_id query int false "Product filter"
// @Param page query int false "Page, starting at 1, at most 1000000"
// @Param per_page query int false "Items per page, at most 100"
// @Success 200 {object} model.ListOrdersResponse
// @Failure 422 {object} ErrorResponse
// @Router /v1/purchase-orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	page, err := queryInt(q.Get("page"), 1)
	if err != nil || page < 1 || page > maxPage {
		writeError(w, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, "page must be between 1 and "+strconv.Itoa(maxPage)))
		return
	}
	perPage, err := queryInt(q.Get("per_page"), defaultPerPage)
	if err != nil || perPage < 1 || perPage > maxPerPage {
		writeError(w, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, "per_page must be between 1 and "+strconv.Itoa(maxPerPage)))
		return
	}
	vendorID, err := queryUint(q.Get("vendor_id"))
	if err != nil {
		writeError(w, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, "vendor_id must be an integer"))
		return
	}
	productID, err := queryUint(q.Get("product_id"))
	if err != nil {
		writeError(w, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, "product_id must be an integer"))
		return
	}

	filter := &model.PurchaseOrderFilter{
		VendorID:  vendorID,
		ProductID: productID,
		Status:    constant.PurchaseOrderStatus(q.Get("status")),
		Limit:     perPage,
		Offset:    (page - 1) * perPage,
	}
	items, err := s.OrderApp.List(r.Context(), actor, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.ListOrdersResponse{Items: items, Page: page, PerPage: perPage})
}

// GetOrder handler
// @Summary Get purchase order
// @Tags PurchaseOrder
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Success 200 {object} model.PurchaseOrder
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/purchase-orders/{orderId} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	orderID, err := pathID(r, "orderId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.Get(r.Context(), actor, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// TransitionOrder handler
// @Summary Move a purchase order through its lifecycle
// @Description accept needs delivery_date (YYYY-MM-DD), reject needs reason, dispatch needs tracking_info
// @Tags PurchaseOrder
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Param action path string true "Action" Enums(approve, accept, reject, dispatch, complete)
// @Param request body model.TransitionPayload false "Transition payload"
// @Success 200 {object} model.PurchaseOrder
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/purchase-orders/{orderId}/{action} [post]
func (s *RestHandler) TransitionOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	orderID, err := pathID(r, "orderId")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.TransitionPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	var res *model.PurchaseOrder
	switch constant.OrderAction(mux.Vars(r)["action"]) {
	case constant.ActionApprove:
		res, err = s.OrderApp.Approve(ctx, orderID, actor, payload)
	case constant.ActionAccept:
		res, err = s.OrderApp.Accept(ctx, orderID, actor, payload)
	case constant.ActionReject:
		res, err = s.OrderApp.Reject(ctx, orderID, actor, payload)
	case constant.ActionDispatch:
		res, err = s.OrderApp.Dispatch(ctx, orderID, actor, payload)
	case constant.ActionComplete:
		res, err = s.OrderApp.Complete(ctx, orderID, actor, payload)
	default:
		err = errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func queryInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func queryUint(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}
