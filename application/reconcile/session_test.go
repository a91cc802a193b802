package reconcile_test

import (
	"math"
	"slices"
	"testing"

	"github.com/muhammadheryan/restock/application/reconcile"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	cerr "github.com/muhammadheryan/restock/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testVendors = []model.Vendor{
	{ID: 1, Email: "acme@vendor.test", FullName: "Acme"},
	{ID: 2, Email: "beta@vendor.test", FullName: "Beta"},
	{ID: 3, Email: "gamma@vendor.test", FullName: "Gamma"},
}

func testRecommendations() []model.RestockRecommendation {
	return []model.RestockRecommendation{
		{ProductID: 1, ProductName: "Bolt", SKU: "B-1", RecommendedQuantity: 10, VendorID: 1, VendorName: "Acme", Urgency: constant.UrgencyCritical},
		{ProductID: 2, ProductName: "Nut", SKU: "N-2", RecommendedQuantity: 5, VendorID: 2, VendorName: "Beta", Urgency: constant.UrgencyHigh},
		{ProductID: 3, ProductName: "Washer", SKU: "W-3", RecommendedQuantity: 0, VendorID: 1, VendorName: "Acme", Urgency: constant.UrgencyCritical},
		{ProductID: 4, ProductName: "Screw", SKU: "S-4", RecommendedQuantity: 8, VendorID: 2, VendorName: "Beta", Urgency: constant.UrgencyLow},
		{ProductID: 1, ProductName: "Bolt again", RecommendedQuantity: 99, VendorID: 2, Urgency: constant.UrgencyLow},
	}
}

func newLoadedSession() *reconcile.Session {
	s := reconcile.NewSession(testVendors)
	s.Load(testRecommendations())
	return s
}

func productIDs(seq func(func(model.ReconciledItem) bool)) []uint64 {
	var out []uint64
	for item := range seq {
		out = append(out, item.ProductID)
	}
	return out
}

func TestSession_Load(t *testing.T) {
	s := newLoadedSession()

	require.Equal(t, 4, s.Len())
	item, ok := s.Item(1)
	require.True(t, ok)
	assert.Equal(t, "Bolt", item.ProductName, "first occurrence wins")
	assert.Equal(t, 10, item.ModifiedQuantity)
	assert.Equal(t, uint64(1), item.ModifiedVendorID)
	assert.Equal(t, "Acme", item.ModifiedVendorName)
	assert.False(t, item.IsDeleted)
	assert.Empty(t, s.Selection())
	assert.Equal(t, []uint64{1, 2, 3, 4}, productIDs(s.ActiveItems()))

	// reload discards edits and selection
	s.SetQuantity(2, "50")
	s.Delete(3)
	s.Select(1)
	s.Load(testRecommendations())
	item, _ = s.Item(2)
	assert.Equal(t, 5, item.ModifiedQuantity)
	assert.Equal(t, []uint64{1, 2, 3, 4}, productIDs(s.ActiveItems()))
	assert.Empty(t, s.Selection())

	_, ok = s.Item(42)
	assert.False(t, ok)
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "12", want: 12},
		{in: "12.7", want: 12},
		{in: " 7 ", want: 7},
		{in: "+5", want: 5},
		{in: "3abc", want: 3},
		{in: "0", want: 0},
		{in: "-3", want: 0},
		{in: "abc", want: 0},
		{in: "", want: 0},
		{in: "2147483647", want: math.MaxInt32},
		{in: "2147483648", want: math.MaxInt32},
		{in: "99999999999999999999", want: math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.ParseQuantity(tt.in))
		})
	}
}

func TestSession_Overrides(t *testing.T) {
	s := newLoadedSession()

	s.SetQuantity(1, "25")
	s.SetVendor(1, 3)
	item, _ := s.Item(1)
	assert.Equal(t, 25, item.ModifiedQuantity)
	assert.Equal(t, uint64(3), item.ModifiedVendorID)
	assert.Equal(t, "Gamma", item.ModifiedVendorName)
	assert.Equal(t, 10, item.RecommendedQuantity, "recommendation is never mutated")
	assert.Equal(t, uint64(1), item.VendorID)

	s.SetVendor(2, 42)
	item, _ = s.Item(2)
	assert.Equal(t, uint64(42), item.ModifiedVendorID)
	assert.Equal(t, "Beta", item.ModifiedVendorName)

	s.SetQuantity(2, "lots")
	item, _ = s.Item(2)
	assert.Equal(t, 0, item.ModifiedQuantity)

	// unknown product is a no-op
	s.SetQuantity(42, "3")
	s.SetVendor(42, 1)
	assert.Equal(t, 4, s.Len())

	s.Reset(1)
	item, _ = s.Item(1)
	assert.Equal(t, 10, item.ModifiedQuantity)
	assert.Equal(t, uint64(1), item.ModifiedVendorID)
	assert.Equal(t, "Acme", item.ModifiedVendorName)
}

func TestSession_SetVendorBackToRecommended(t *testing.T) {
	s := reconcile.NewSession([]model.Vendor{{ID: 1, Email: "acme@vendor.test", FullName: "Acme Corporation"}})
	s.Load([]model.RestockRecommendation{
		{ProductID: 1, ProductName: "Bolt", RecommendedQuantity: 10, VendorID: 1, VendorName: "Acme Ltd", Urgency: constant.UrgencyHigh},
	})
	loaded, _ := s.Item(1)
	require.Equal(t, "Acme Ltd", loaded.ModifiedVendorName)

	s.SetVendor(1, 1)
	item, _ := s.Item(1)
	assert.Equal(t, "Acme Ltd", item.ModifiedVendorName)

	s.Reset(1)
	s.SetQuantity(1, "10")
	s.SetVendor(1, 1)
	item, _ = s.Item(1)
	assert.Equal(t, loaded, item)
}

func TestSession_DeleteRestore(t *testing.T) {
	s := newLoadedSession()
	s.SetQuantity(2, "17")
	s.Select(2)
	s.Select(4)

	s.Delete(2)
	assert.Equal(t, []uint64{1, 3, 4}, productIDs(s.ActiveItems()))
	assert.Equal(t, []uint64{2}, productIDs(s.DeletedItems()))
	assert.False(t, s.IsSelected(2), "deleting drops the item from the selection")
	assert.Equal(t, []uint64{4}, s.Selection())

	// reset does not undelete
	s.Reset(2)
	assert.Equal(t, []uint64{2}, productIDs(s.DeletedItems()))

	s.SetQuantity(2, "17")
	s.Restore(2)
	item, _ := s.Item(2)
	assert.False(t, item.IsDeleted)
	assert.Equal(t, 17, item.ModifiedQuantity, "restore keeps the overlay")
	assert.False(t, s.IsSelected(2), "restore does not reselect")
	assert.Empty(t, productIDs(s.DeletedItems()))

	view := s.Snapshot()
	assert.Len(t, view.Items, 4)
}

func TestSession_ActiveItemsIsLive(t *testing.T) {
	s := newLoadedSession()
	active := s.ActiveItems()

	assert.Len(t, productIDs(active), 4)
	s.Delete(1)
	assert.Len(t, productIDs(active), 3)

	// early break stops the iteration
	var first uint64
	for item := range active {
		first = item.ProductID
		break
	}
	assert.Equal(t, uint64(2), first)
}

func TestSession_Selection(t *testing.T) {
	tests := []struct {
		name string
		ops  func(s *reconcile.Session)
		want []uint64
	}{
		{
			name: "select ignores deleted and unknown items",
			ops: func(s *reconcile.Session) {
				s.Delete(3)
				s.Select(3)
				s.Select(42)
				s.Select(1)
			},
			want: []uint64{1},
		},
		{
			name: "toggle adds and removes",
			ops: func(s *reconcile.Session) {
				s.ToggleSelect(2)
				s.ToggleSelect(4)
				s.ToggleSelect(2)
			},
			want: []uint64{4},
		},
		{
			name: "toggle on a deleted item does nothing",
			ops: func(s *reconcile.Session) {
				s.Delete(2)
				s.ToggleSelect(2)
			},
			want: []uint64{},
		},
		{
			name: "select by urgency replaces the selection",
			ops: func(s *reconcile.Session) {
				s.Select(2)
				s.SelectByUrgency(constant.UrgencyCritical)
			},
			want: []uint64{1, 3},
		},
		{
			name: "select by urgency skips deleted",
			ops: func(s *reconcile.Session) {
				s.Delete(1)
				s.SelectByUrgency(constant.UrgencyCritical)
			},
			want: []uint64{3},
		},
		{
			name: "select all takes active items only",
			ops: func(s *reconcile.Session) {
				s.Delete(4)
				s.SelectAll()
			},
			want: []uint64{1, 2, 3},
		},
		{
			name: "clear selection",
			ops: func(s *reconcile.Session) {
				s.SelectAll()
				s.ClearSelection()
			},
			want: []uint64{},
		},
		{
			name: "selection is reported in load order",
			ops: func(s *reconcile.Session) {
				s.Select(4)
				s.Select(1)
				s.Select(3)
			},
			want: []uint64{1, 3, 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newLoadedSession()
			tt.ops(s)
			assert.Equal(t, tt.want, s.Selection())
		})
	}
}

func TestSession_BuildOrderIntents(t *testing.T) {
	tests := []struct {
		name      string
		prepare   func(s *reconcile.Session)
		selection []uint64
		want      []model.OrderIntent
		wantErr   bool
	}{
		{
			name:      "empty selection",
			selection: nil,
			wantErr:   true,
		},
		{
			name: "only deleted items",
			prepare: func(s *reconcile.Session) {
				s.Delete(1)
				s.Delete(2)
			},
			selection: []uint64{1, 2},
			wantErr:   true,
		},
		{
			name:      "only unknown items",
			selection: []uint64{42, 43},
			wantErr:   true,
		},
		{
			name: "uses the current overlay",
			prepare: func(s *reconcile.Session) {
				s.SetQuantity(1, "30")
				s.SetVendor(2, 3)
			},
			selection: []uint64{1, 2},
			want: []model.OrderIntent{
				{ProductID: 1, Quantity: 30, VendorID: 1},
				{ProductID: 2, Quantity: 5, VendorID: 3},
			},
		},
		{
			name:      "duplicates and deleted ids are dropped",
			prepare:   func(s *reconcile.Session) { s.Delete(4) },
			selection: []uint64{2, 4, 2, 42, 3},
			want: []model.OrderIntent{
				{ProductID: 2, Quantity: 5, VendorID: 2},
				{ProductID: 3, Quantity: 0, VendorID: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newLoadedSession()
			if tt.prepare != nil {
				tt.prepare(s)
			}
			got, err := s.BuildOrderIntents(tt.selection)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, constant.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_CriticalSubmissionScenario(t *testing.T) {
	s := newLoadedSession()
	s.SetQuantity(3, "12")
	s.SetVendor(3, 2)
	s.SetQuantity(1, "40")

	s.SelectByUrgency(constant.UrgencyCritical)
	intents, err := s.BuildOrderIntents(s.Selection())
	require.NoError(t, err)
	require.Len(t, intents, 2)

	batches := reconcile.GroupByVendor(intents)
	require.Len(t, batches, 2)
	assert.Equal(t, uint64(1), batches[0].VendorID)
	assert.Equal(t, []model.BatchItem{{ProductID: 1, Quantity: 40}}, batches[0].Items)
	assert.Equal(t, uint64(2), batches[1].VendorID)
	assert.Equal(t, []model.BatchItem{{ProductID: 3, Quantity: 12}}, batches[1].Items)

	for _, b := range batches {
		for _, item := range b.Items {
			assert.True(t, slices.Contains(s.Selection(), item.ProductID))
		}
	}
}
