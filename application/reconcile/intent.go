package reconcile

import "github.com/muhammadheryan/restock/model"

// GroupByVendor turns intents into one batch request per vendor, vendors in
// first-seen order. A repeated (vendor, product) pair is merged by summing.
func GroupByVendor(intents []model.OrderIntent) []model.BatchRequest {
	batches := make([]model.BatchRequest, 0)
	byVendor := make(map[uint64]int)
	type pair struct{ vendorID, productID uint64 }
	byPair := make(map[pair]int)

	for _, in := range intents {
		bi, ok := byVendor[in.VendorID]
		if !ok {
			bi = len(batches)
			byVendor[in.VendorID] = bi
			batches = append(batches, model.BatchRequest{VendorID: in.VendorID})
		}

		key := pair{in.VendorID, in.ProductID}
		if ii, dup := byPair[key]; dup {
			batches[bi].Items[ii].Quantity += in.Quantity
			continue
		}
		byPair[key] = len(batches[bi].Items)
		batches[bi].Items = append(batches[bi].Items, model.BatchItem{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
		})
	}
	return batches
}
