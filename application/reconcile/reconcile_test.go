package reconcile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/restock/application/reconcile"
	"github.com/muhammadheryan/restock/constant"
	catalogmocks "github.com/muhammadheryan/restock/mocks/application/catalog"
	ordermocks "github.com/muhammadheryan/restock/mocks/application/order"
	forecastmocks "github.com/muhammadheryan/restock/mocks/thirdparty/forecast"
	"github.com/muhammadheryan/restock/model"
	cerr "github.com/muhammadheryan/restock/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	manager = model.Actor{Role: constant.RoleManager, Email: "manager@store.test"}
	admin   = model.Actor{Role: constant.RoleAdmin, Email: "admin@store.test"}
	vendor  = model.Actor{Role: constant.RoleVendor, Email: "acme@vendor.test"}
)

type appFixture struct {
	forecast   *forecastmocks.Client
	catalogApp *catalogmocks.CatalogApp
	orderApp   *ordermocks.OrderApp
	registry   *reconcile.Registry
	app        reconcile.ReconcileApp
}

func newAppFixture(t *testing.T) *appFixture {
	f := &appFixture{
		forecast:   forecastmocks.NewClient(t),
		catalogApp: catalogmocks.NewCatalogApp(t),
		orderApp:   ordermocks.NewOrderApp(t),
		registry:   reconcile.NewRegistry(time.Hour),
	}
	f.app = reconcile.NewReconcileApp(f.forecast, f.catalogApp, f.orderApp, f.registry, 2)
	return f
}

// start opens a session over the test recommendations without enrichment.
func (f *appFixture) start(t *testing.T, actor model.Actor) string {
	t.Helper()
	f.forecast.On("ListRecommendations", mock.Anything).Return(testRecommendations(), nil).Once()
	f.catalogApp.On("ListVendors", mock.Anything).Return(testVendors, nil).Once()
	view, err := f.app.StartSession(context.Background(), actor)
	require.NoError(t, err)
	return view.SessionID
}

func requireType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, cerr.Is(err, want), "got %v", err)
}

func TestReconcileApp_StartSession(t *testing.T) {
	t.Run("vendor cannot reconcile", func(t *testing.T) {
		f := newAppFixture(t)
		_, err := f.app.StartSession(context.Background(), vendor)
		requireType(t, err, constant.ErrPermissionDenied)
		assert.Equal(t, 0, f.registry.Len())
	})

	t.Run("enriches missing display fields", func(t *testing.T) {
		f := newAppFixture(t)
		f.forecast.On("ListRecommendations", mock.Anything).Return([]model.RestockRecommendation{
			{ProductID: 1, RecommendedQuantity: 10, VendorID: 2, Urgency: constant.UrgencyCritical},
			{ProductID: 2, ProductName: "Nut", SKU: "N-2", CurrentStock: 3, RecommendedQuantity: 5, VendorID: 1, VendorName: "Acme Ltd", Urgency: constant.UrgencyLow},
			{ProductID: 3, RecommendedQuantity: 1, VendorID: 9, Urgency: constant.UrgencyLow},
		}, nil).Once()
		f.catalogApp.On("ListVendors", mock.Anything).Return(testVendors, nil).Once()
		f.catalogApp.On("GetProduct", mock.Anything, uint64(1)).Return(&model.Product{ID: 1, Name: "Bolt", SKU: "B-1", Quantity: 2, ReorderLevel: 20}, nil).Once()
		f.catalogApp.On("GetProduct", mock.Anything, uint64(3)).Return(nil, cerr.SetCustomError(constant.ErrNotFound)).Once()

		view, err := f.app.StartSession(context.Background(), manager)
		require.NoError(t, err)
		require.NotEmpty(t, view.SessionID)
		require.Len(t, view.Items, 3)

		first := view.Items[0]
		assert.Equal(t, "Bolt", first.ProductName)
		assert.Equal(t, "B-1", first.SKU)
		assert.Equal(t, int64(2), first.CurrentStock)
		assert.Equal(t, int64(20), first.ReorderLevel)
		assert.Equal(t, "Beta", first.VendorName)
		assert.Equal(t, "Beta", first.ModifiedVendorName)

		// forecast names are kept
		assert.Equal(t, "Acme Ltd", view.Items[1].VendorName)
		assert.Equal(t, int64(3), view.Items[1].CurrentStock)

		// failed lookups leave the item as is
		assert.Equal(t, "", view.Items[2].ProductName)
		assert.Equal(t, "", view.Items[2].VendorName)
		assert.Empty(t, view.Selected)
		assert.Equal(t, 1, f.registry.Len())
	})

	t.Run("duplicate products are enriched once", func(t *testing.T) {
		f := newAppFixture(t)
		f.forecast.On("ListRecommendations", mock.Anything).Return([]model.RestockRecommendation{
			{ProductID: 1, ProductName: "Bolt", SKU: "B-1", RecommendedQuantity: 10, VendorID: 1, Urgency: constant.UrgencyHigh},
			{ProductID: 1, RecommendedQuantity: 99, VendorID: 2, Urgency: constant.UrgencyLow},
			{ProductID: 2, RecommendedQuantity: 5, VendorID: 2, Urgency: constant.UrgencyLow},
			{ProductID: 2, RecommendedQuantity: 7, VendorID: 3, Urgency: constant.UrgencyLow},
		}, nil).Once()
		f.catalogApp.On("ListVendors", mock.Anything).Return(testVendors, nil).Once()
		f.catalogApp.On("GetProduct", mock.Anything, uint64(2)).Return(&model.Product{ID: 2, Name: "Nut", SKU: "N-2"}, nil).Once()

		view, err := f.app.StartSession(context.Background(), manager)
		require.NoError(t, err)
		require.Len(t, view.Items, 2)
		assert.Equal(t, "Bolt", view.Items[0].ProductName)
		assert.Equal(t, 10, view.Items[0].ModifiedQuantity)
		assert.Equal(t, "Nut", view.Items[1].ProductName)
		assert.Equal(t, 5, view.Items[1].ModifiedQuantity)
		f.catalogApp.AssertNumberOfCalls(t, "GetProduct", 1)
	})

	t.Run("forecast failure", func(t *testing.T) {
		f := newAppFixture(t)
		f.forecast.On("ListRecommendations", mock.Anything).Return(nil, errors.New("timeout")).Once()
		f.catalogApp.On("ListVendors", mock.Anything).Return(testVendors, nil).Maybe()

		_, err := f.app.StartSession(context.Background(), manager)
		requireType(t, err, constant.ErrInternal)
		assert.Equal(t, 0, f.registry.Len())
	})

	t.Run("vendor list failure", func(t *testing.T) {
		f := newAppFixture(t)
		f.forecast.On("ListRecommendations", mock.Anything).Return(testRecommendations(), nil).Maybe()
		f.catalogApp.On("ListVendors", mock.Anything).Return(nil, cerr.SetCustomError(constant.ErrInternal)).Once()

		_, err := f.app.StartSession(context.Background(), admin)
		requireType(t, err, constant.ErrInternal)
	})
}

func TestReconcileApp_Edits(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()
	id := f.start(t, manager)

	view, err := f.app.SetQuantity(ctx, manager, id, 1, "25.9")
	require.NoError(t, err)
	assert.Equal(t, id, view.SessionID)
	assert.Equal(t, 25, view.Items[0].ModifiedQuantity)

	view, err = f.app.SetVendor(ctx, manager, id, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "Gamma", view.Items[0].ModifiedVendorName)

	view, err = f.app.Delete(ctx, manager, id, 2)
	require.NoError(t, err)
	assert.True(t, view.Items[1].IsDeleted)

	view, err = f.app.Restore(ctx, manager, id, 2)
	require.NoError(t, err)
	assert.False(t, view.Items[1].IsDeleted)

	view, err = f.app.Reset(ctx, manager, id, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, view.Items[0].ModifiedQuantity)
	assert.Equal(t, uint64(1), view.Items[0].ModifiedVendorID)

	// sessions are private to their owner
	_, err = f.app.View(ctx, admin, id)
	requireType(t, err, constant.ErrNotFound)

	require.NoError(t, f.app.Close(ctx, manager, id))
	_, err = f.app.View(ctx, manager, id)
	requireType(t, err, constant.ErrNotFound)
}

func TestReconcileApp_UpdateSelection(t *testing.T) {
	tests := []struct {
		name    string
		req     *model.SelectionRequest
		want    []uint64
		wantErr bool
	}{
		{name: "select", req: &model.SelectionRequest{Action: "select", ProductID: 2}, want: []uint64{2}},
		{name: "toggle", req: &model.SelectionRequest{Action: "toggle", ProductID: 4}, want: []uint64{4}},
		{name: "urgency", req: &model.SelectionRequest{Action: "urgency", Urgency: "critical"}, want: []uint64{1, 3}},
		{name: "all", req: &model.SelectionRequest{Action: "all"}, want: []uint64{1, 2, 3, 4}},
		{name: "clear", req: &model.SelectionRequest{Action: "clear"}, want: []uint64{}},
		{name: "unknown urgency", req: &model.SelectionRequest{Action: "urgency", Urgency: "SOON"}, wantErr: true},
		{name: "unknown action", req: &model.SelectionRequest{Action: "invert"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAppFixture(t)
			id := f.start(t, manager)

			view, err := f.app.UpdateSelection(context.Background(), manager, id, tt.req)
			if tt.wantErr {
				requireType(t, err, constant.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, view.Selected)
		})
	}
}

func TestReconcileApp_Submit(t *testing.T) {
	t.Run("empty selection", func(t *testing.T) {
		f := newAppFixture(t)
		id := f.start(t, manager)

		_, err := f.app.Submit(context.Background(), manager, id)
		requireType(t, err, constant.ErrValidation)
	})

	t.Run("vendor cannot submit", func(t *testing.T) {
		f := newAppFixture(t)
		_, err := f.app.Submit(context.Background(), vendor, "whatever")
		requireType(t, err, constant.ErrPermissionDenied)
	})

	t.Run("critical selection submits edited quantities per vendor", func(t *testing.T) {
		f := newAppFixture(t)
		ctx := context.Background()
		id := f.start(t, manager)

		_, err := f.app.SetQuantity(ctx, manager, id, 3, "12")
		require.NoError(t, err)
		_, err = f.app.SetVendor(ctx, manager, id, 3, 2)
		require.NoError(t, err)
		_, err = f.app.SetQuantity(ctx, manager, id, 1, "40")
		require.NoError(t, err)
		view, err := f.app.UpdateSelection(ctx, manager, id, &model.SelectionRequest{Action: "urgency", Urgency: "CRITICAL"})
		require.NoError(t, err)
		require.Equal(t, []uint64{1, 3}, view.Selected)

		f.orderApp.On("CreateBatch", mock.Anything, manager, &model.BatchRequest{
			VendorID: 1,
			Items:    []model.BatchItem{{ProductID: 1, Quantity: 40}},
		}).Return(&model.BatchResult{
			VendorID: 1,
			Created:  []model.PurchaseOrder{{ID: 100, ProductID: 1, VendorID: 1, Quantity: 40, Status: constant.StatusPending}},
			Failed:   []model.BatchFailure{},
		}, nil).Once()
		f.orderApp.On("CreateBatch", mock.Anything, manager, &model.BatchRequest{
			VendorID: 2,
			Items:    []model.BatchItem{{ProductID: 3, Quantity: 12}},
		}).Return(&model.BatchResult{
			VendorID: 2,
			Created:  []model.PurchaseOrder{{ID: 101, ProductID: 3, VendorID: 2, Quantity: 12, Status: constant.StatusPending}},
			Failed:   []model.BatchFailure{},
		}, nil).Once()

		res, err := f.app.Submit(ctx, manager, id)
		require.NoError(t, err)
		require.Len(t, res.Batches, 2)
		assert.Equal(t, uint64(1), res.Batches[0].VendorID)
		assert.Equal(t, uint64(2), res.Batches[1].VendorID)

		view, err = f.app.View(ctx, manager, id)
		require.NoError(t, err)
		assert.Empty(t, view.Selected)
	})

	t.Run("one batch per vendor, created items are deselected", func(t *testing.T) {
		f := newAppFixture(t)
		ctx := context.Background()
		id := f.start(t, manager)

		_, err := f.app.SetQuantity(ctx, manager, id, 2, "9")
		require.NoError(t, err)
		_, err = f.app.UpdateSelection(ctx, manager, id, &model.SelectionRequest{Action: "all"})
		require.NoError(t, err)
		_, err = f.app.Delete(ctx, manager, id, 3)
		require.NoError(t, err)

		f.orderApp.On("CreateBatch", mock.Anything, manager, &model.BatchRequest{
			VendorID: 1,
			Items:    []model.BatchItem{{ProductID: 1, Quantity: 10}},
		}).Return(&model.BatchResult{
			VendorID: 1,
			Created:  []model.PurchaseOrder{{ID: 100, ProductID: 1, VendorID: 1, Quantity: 10, Status: constant.StatusPending}},
			Failed:   []model.BatchFailure{},
		}, nil).Once()
		f.orderApp.On("CreateBatch", mock.Anything, manager, &model.BatchRequest{
			VendorID: 2,
			Items:    []model.BatchItem{{ProductID: 2, Quantity: 9}, {ProductID: 4, Quantity: 8}},
		}).Return(nil, cerr.SetCustomErrorWithDetails(constant.ErrValidation, "unknown vendor")).Once()

		res, err := f.app.Submit(ctx, manager, id)
		require.NoError(t, err)
		require.Len(t, res.Batches, 2)

		assert.Len(t, res.Batches[0].Created, 1)
		assert.Empty(t, res.Batches[0].Failed)

		assert.Equal(t, uint64(2), res.Batches[1].VendorID)
		assert.Empty(t, res.Batches[1].Created)
		require.Len(t, res.Batches[1].Failed, 2)
		assert.Equal(t, 1, res.Batches[1].Failed[1].Index)
		assert.Contains(t, res.Batches[1].Failed[0].Reason, "unknown vendor")

		view, err := f.app.View(ctx, manager, id)
		require.NoError(t, err)
		assert.Equal(t, []uint64{2, 4}, view.Selected)
	})
}
