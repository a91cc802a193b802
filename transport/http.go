package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	actorapp "github.com/muhammadheryan/restock/application/actor"
	catalogapp "github.com/muhammadheryan/restock/application/catalog"
	orderapp "github.com/muhammadheryan/restock/application/order"
	reconcileapp "github.com/muhammadheryan/restock/application/reconcile"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	utilsContext "github.com/muhammadheryan/restock/utils/context"
	"github.com/muhammadheryan/restock/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ReconcileApp reconcileapp.ReconcileApp
	OrderApp     orderapp.OrderApp
	CatalogApp   catalogapp.CatalogApp
}

func NewTransport(reconcileApp reconcileapp.ReconcileApp, orderApp orderapp.OrderApp, catalogApp catalogapp.CatalogApp, actorApp actorapp.ActorApp, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		ReconcileApp: reconcileApp,
		OrderApp:     orderApp,
		CatalogApp:   catalogApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// reconciliation sessions
	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/reconciliation/sessions", rh.StartSession).Methods(http.MethodPost)
	v1.HandleFunc("/reconciliation/sessions/{sessionId}", rh.ViewSession).Methods(http.MethodGet)
	v1.HandleFunc("/reconciliation/sessions/{sessionId}", rh.CloseSession).Methods(http.MethodDelete)
	v1.HandleFunc("/reconciliation/sessions/{sessionId}/items/{productId}", rh.EditItem).Methods(http.MethodPatch)
	v1.HandleFunc("/reconciliation/sessions/{sessionId}/items/{productId}/{op:delete|restore|reset}", rh.ItemOp).Methods(http.MethodPost)
	v1.HandleFunc("/reconciliation/sessions/{sessionId}/selection", rh.UpdateSelection).Methods(http.MethodPost)
	v1.HandleFunc("/reconciliation/sessions/{sessionId}/submit", rh.SubmitSession).Methods(http.MethodPost)

	// purchase orders
	v1.HandleFunc("/purchase-orders", rh.CreateOrder).Methods(http.MethodPost)
	v1.HandleFunc("/purchase-orders/batch", rh.CreateBatch).Methods(http.MethodPost)
	v1.HandleFunc("/purchase-orders", rh.ListOrders).Methods(http.MethodGet)
	v1.HandleFunc("/purchase-orders/{orderId:[0-9]+}", rh.GetOrder).Methods(http.MethodGet)
	v1.HandleFunc("/purchase-orders/{orderId:[0-9]+}/{action:approve|accept|reject|dispatch|complete}", rh.TransitionOrder).Methods(http.MethodPost)

	// internal routes
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/vendors/cache/invalidate", rh.InvalidateVendorCache).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(actorApp))

	return router
}

func actorFrom(r *http.Request) (model.Actor, error) {
	a, ok := utilsContext.GetActor(r.Context())
	if !ok {
		return model.Actor{}, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return a, nil
}

func pathID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, name+" must be a positive integer")
	}
	return id, nil
}

// decodeBody decodes a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || stderrors.Is(err, io.EOF) {
		return nil
	}
	return errors.SetCustomError(constant.ErrInvalidRequest)
}

// InvalidateVendorCache handler
// @Summary Invalidate vendor cache
// @Description Drops the cached vendor list so the next read goes to the database
// @Tags Internal
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 403 {object} ErrorResponse
// @Router /internal/v1/vendors/cache/invalidate [post]
func (s *RestHandler) InvalidateVendorCache(w http.ResponseWriter, r *http.Request) {
	if err := s.CatalogApp.InvalidateVendors(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": "ok"})
}
