package reconcile

import (
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/utils/errors"
)

// Session is the editable working set of one actor. It is not safe for
// concurrent use; Registry serializes access to a shared session.
type Session struct {
	vendors  map[uint64]model.Vendor
	items    []*model.ReconciledItem
	index    map[uint64]int
	selected map[uint64]struct{}
}

func NewSession(vendors []model.Vendor) *Session {
	s := &Session{
		vendors:  make(map[uint64]model.Vendor, len(vendors)),
		index:    make(map[uint64]int),
		selected: make(map[uint64]struct{}),
	}
	for _, v := range vendors {
		s.vendors[v.ID] = v
	}
	return s
}

// Load replaces the working set and the selection wholesale.
func (s *Session) Load(recommendations []model.RestockRecommendation) {
	s.items = make([]*model.ReconciledItem, 0, len(recommendations))
	s.index = make(map[uint64]int, len(recommendations))
	s.selected = make(map[uint64]struct{})

	for _, rec := range recommendations {
		if _, dup := s.index[rec.ProductID]; dup {
			continue
		}
		item := &model.ReconciledItem{RestockRecommendation: rec}
		resetOverlay(item)
		s.index[rec.ProductID] = len(s.items)
		s.items = append(s.items, item)
	}
}

func resetOverlay(item *model.ReconciledItem) {
	item.ModifiedQuantity = max(item.RecommendedQuantity, 0)
	item.ModifiedVendorID = item.VendorID
	item.ModifiedVendorName = item.VendorName
}

func (s *Session) lookup(productID uint64) (*model.ReconciledItem, bool) {
	i, ok := s.index[productID]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

// Item returns a copy of the item, deleted or not.
func (s *Session) Item(productID uint64) (model.ReconciledItem, bool) {
	item, ok := s.lookup(productID)
	if !ok {
		return model.ReconciledItem{}, false
	}
	return *item, true
}

// SetQuantity never fails: malformed or negative input becomes 0.
func (s *Session) SetQuantity(productID uint64, value string) {
	item, ok := s.lookup(productID)
	if !ok {
		return
	}
	item.ModifiedQuantity = ParseQuantity(value)
}

// ParseQuantity reads the leading integer of value ("12.7" is 12). Anything
// that is not a non-negative integer prefix yields 0; overflow clamps to MaxInt32.
func ParseQuantity(value string) int {
	v := strings.TrimSpace(value)
	if strings.HasPrefix(v, "+") {
		v = v[1:]
	}
	end := 0
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(v[:end], 10, 64)
	if err != nil || n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// SetVendor points the item at another vendor. Going back to the recommended
// vendor restores the recommendation's vendor name. An id missing from the
// vendor list is still applied, with the recommendation's vendor name kept.
func (s *Session) SetVendor(productID, vendorID uint64) {
	item, ok := s.lookup(productID)
	if !ok {
		return
	}
	item.ModifiedVendorID = vendorID
	if vendorID == item.VendorID {
		item.ModifiedVendorName = item.VendorName
		return
	}
	if v, found := s.vendors[vendorID]; found {
		item.ModifiedVendorName = v.FullName
		return
	}
	item.ModifiedVendorName = item.VendorName
}

func (s *Session) Delete(productID uint64) {
	item, ok := s.lookup(productID)
	if !ok {
		return
	}
	item.IsDeleted = true
	delete(s.selected, productID)
}

// Restore keeps the overlay and does not reselect the item.
func (s *Session) Restore(productID uint64) {
	item, ok := s.lookup(productID)
	if !ok {
		return
	}
	item.IsDeleted = false
}

// Reset drops the quantity and vendor overlay; deletion is untouched.
func (s *Session) Reset(productID uint64) {
	item, ok := s.lookup(productID)
	if !ok {
		return
	}
	resetOverlay(item)
}

// ActiveItems yields non-deleted items in load order. Each range over the
// returned sequence reads the current state.
func (s *Session) ActiveItems() iter.Seq[model.ReconciledItem] {
	return s.filter(func(item *model.ReconciledItem) bool { return !item.IsDeleted })
}

func (s *Session) DeletedItems() iter.Seq[model.ReconciledItem] {
	return s.filter(func(item *model.ReconciledItem) bool { return item.IsDeleted })
}

func (s *Session) filter(keep func(*model.ReconciledItem) bool) iter.Seq[model.ReconciledItem] {
	return func(yield func(model.ReconciledItem) bool) {
		for _, item := range s.items {
			if !keep(item) {
				continue
			}
			if !yield(*item) {
				return
			}
		}
	}
}

func (s *Session) isActive(productID uint64) bool {
	item, ok := s.lookup(productID)
	return ok && !item.IsDeleted
}

// Select ignores unknown and deleted items.
func (s *Session) Select(productID uint64) {
	if !s.isActive(productID) {
		return
	}
	s.selected[productID] = struct{}{}
}

func (s *Session) ToggleSelect(productID uint64) {
	if _, ok := s.selected[productID]; ok {
		delete(s.selected, productID)
		return
	}
	s.Select(productID)
}

// SelectByUrgency replaces the selection with every active item of that urgency.
func (s *Session) SelectByUrgency(level constant.Urgency) {
	s.selected = make(map[uint64]struct{})
	for item := range s.ActiveItems() {
		if item.Urgency == level {
			s.selected[item.ProductID] = struct{}{}
		}
	}
}

func (s *Session) SelectAll() {
	s.selected = make(map[uint64]struct{}, len(s.items))
	for item := range s.ActiveItems() {
		s.selected[item.ProductID] = struct{}{}
	}
}

func (s *Session) Deselect(productID uint64) {
	delete(s.selected, productID)
}

func (s *Session) ClearSelection() {
	s.selected = make(map[uint64]struct{})
}

func (s *Session) IsSelected(productID uint64) bool {
	_, ok := s.selected[productID]
	return ok
}

// Selection returns the selected product ids in load order.
func (s *Session) Selection() []uint64 {
	out := make([]uint64, 0, len(s.selected))
	for item := range s.ActiveItems() {
		if _, ok := s.selected[item.ProductID]; ok {
			out = append(out, item.ProductID)
		}
	}
	return out
}

// BuildOrderIntents resolves the selection against the current overlay.
// Deleted and unknown ids are skipped; an empty result is a validation error.
func (s *Session) BuildOrderIntents(selection []uint64) ([]model.OrderIntent, error) {
	intents := make([]model.OrderIntent, 0, len(selection))
	seen := make(map[uint64]struct{}, len(selection))
	for _, productID := range selection {
		if _, dup := seen[productID]; dup {
			continue
		}
		seen[productID] = struct{}{}

		item, ok := s.lookup(productID)
		if !ok || item.IsDeleted {
			continue
		}
		intents = append(intents, model.OrderIntent{
			ProductID: item.ProductID,
			Quantity:  item.ModifiedQuantity,
			VendorID:  item.ModifiedVendorID,
		})
	}
	if len(intents) == 0 {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrValidation, "no active item selected")
	}
	return intents, nil
}

// Snapshot copies the full working set, deleted items included.
func (s *Session) Snapshot() model.ReconciliationView {
	view := model.ReconciliationView{
		Items:    make([]model.ReconciledItem, 0, len(s.items)),
		Selected: s.Selection(),
	}
	for _, item := range s.items {
		view.Items = append(view.Items, *item)
	}
	return view
}

// Len is the number of items, deleted ones included.
func (s *Session) Len() int {
	return len(s.items)
}
