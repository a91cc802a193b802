package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/utils/errors"
	validatorx "github.com/muhammadheryan/restock/utils/validator"
)

// StartSession handler
// @Summary Start reconciliation session
// @Description Fetches the current restock recommendations and opens an editable session on them
// @Tags Reconciliation
// @Produce json
// @Security BearerAuth
// @Success 201 {object} model.ReconciliationView
// @Failure 403 {object} ErrorResponse
// @Router /v1/reconciliation/sessions [post]
func (s *RestHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ReconcileApp.StartSession(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ViewSession handler
// @Summary View reconciliation session
// @Tags Reconciliation
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} model.ReconciliationView
// @Failure 404 {object} ErrorResponse
// @Router /v1/reconciliation/sessions/{sessionId} [get]
func (s *RestHandler) ViewSession(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ReconcileApp.View(r.Context(), actor, mux.Vars(r)["sessionId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CloseSession handler
// @Summary Close reconciliation session
// @Tags Reconciliation
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /v1/reconciliation/sessions/{sessionId} [delete]
func (s *RestHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ReconcileApp.Close(r.Context(), actor, mux.Vars(r)["sessionId"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": "closed"})
}

// EditItem handler
// @Summary Override quantity or vendor of a recommendation
// @Description quantity is free text parsed by its leading digits; vendor_id swaps the vendor
// @Tags Reconciliation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param productId path int true "Product ID"
// @Param request body model.SetItemRequest true "Overrides"
// @Success 200 {object} model.ReconciliationView
// @Failure 400 {object} ErrorResponse
// @Router /v1/reconciliation/sessions/{sessionId}/items/{productId} [patch]
func (s *RestHandler) EditItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.SetItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Quantity == nil && req.VendorID == nil {
		writeError(w, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, "quantity or vendor_id is required"))
		return
	}

	sessionID := mux.Vars(r)["sessionId"]
	var res *model.ReconciliationView
	if req.Quantity != nil {
		if res, err = s.ReconcileApp.SetQuantity(ctx, actor, sessionID, productID, *req.Quantity); err != nil {
			writeError(w, err)
			return
		}
	}
	if req.VendorID != nil {
		if res, err = s.ReconcileApp.SetVendor(ctx, actor, sessionID, productID, *req.VendorID); err != nil {
			writeError(w, err)
			return
		}
	}
	writeSuccess(w, res)
}

// ItemOp handler
// @Summary Delete, restore or reset a recommendation
// @Tags Reconciliation
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param productId path int true "Product ID"
// @Param op path string true "Operation" Enums(delete, restore, reset)
// @Success 200 {object} model.ReconciliationView
// @Failure 404 {object} ErrorResponse
// @Router /v1/reconciliation/sessions/{sessionId}/items/{productId}/{op} [post]
func (s *RestHandler) ItemOp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	var res *model.ReconciliationView
	switch vars["op"] {
	case "delete":
		res, err = s.ReconcileApp.Delete(ctx, actor, vars["sessionId"], productID)
	case "restore":
		res, err = s.ReconcileApp.Restore(ctx, actor, vars["sessionId"], productID)
	default:
		res, err = s.ReconcileApp.Reset(ctx, actor, vars["sessionId"], productID)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateSelection handler
// @Summary Change the selection of a session
// @Tags Reconciliation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param request body model.SelectionRequest true "Selection change"
// @Success 200 {object} model.ReconciliationView
// @Failure 422 {object} ErrorResponse
// @Router /v1/reconciliation/sessions/{sessionId}/selection [post]
func (s *RestHandler) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.SelectionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorWithDetails(constant.ErrValidation, validatorx.Messages(err)...))
		return
	}

	res, err := s.ReconcileApp.UpdateSelection(r.Context(), actor, mux.Vars(r)["sessionId"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubmitSession handler
// @Summary Submit the selection as purchase orders
// @Description Creates one best-effort batch per vendor from the selected active items
// @Tags Reconciliation
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} model.SubmitResponse
// @Failure 422 {object} ErrorResponse
// @Router /v1/reconciliation/sessions/{sessionId}/submit [post]
func (s *RestHandler) SubmitSession(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ReconcileApp.Submit(r.Context(), actor, mux.Vars(r)["sessionId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
