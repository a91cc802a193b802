package reconcile_test

import (
	"testing"

	"github.com/muhammadheryan/restock/application/reconcile"
	"github.com/muhammadheryan/restock/model"
	"github.com/stretchr/testify/assert"
)

func TestGroupByVendor(t *testing.T) {
	tests := []struct {
		name    string
		intents []model.OrderIntent
		want    []model.BatchRequest
	}{
		{
			name:    "no intents",
			intents: nil,
			want:    []model.BatchRequest{},
		},
		{
			name: "vendors keep first-seen order",
			intents: []model.OrderIntent{
				{ProductID: 1, Quantity: 10, VendorID: 2},
				{ProductID: 2, Quantity: 5, VendorID: 1},
				{ProductID: 3, Quantity: 7, VendorID: 2},
			},
			want: []model.BatchRequest{
				{VendorID: 2, Items: []model.BatchItem{{ProductID: 1, Quantity: 10}, {ProductID: 3, Quantity: 7}}},
				{VendorID: 1, Items: []model.BatchItem{{ProductID: 2, Quantity: 5}}},
			},
		},
		{
			name: "repeated vendor and product pair is merged",
			intents: []model.OrderIntent{
				{ProductID: 1, Quantity: 10, VendorID: 2},
				{ProductID: 1, Quantity: 4, VendorID: 2},
				{ProductID: 1, Quantity: 6, VendorID: 3},
			},
			want: []model.BatchRequest{
				{VendorID: 2, Items: []model.BatchItem{{ProductID: 1, Quantity: 14}}},
				{VendorID: 3, Items: []model.BatchItem{{ProductID: 1, Quantity: 6}}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.GroupByVendor(tt.intents))
		})
	}
}
