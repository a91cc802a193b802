package order

import (
	"slices"
	"strings"
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/utils/errors"
)

type transitionKey struct {
	from   constant.PurchaseOrderStatus
	action constant.OrderAction
}

type transitionRule struct {
	to    constant.PurchaseOrderStatus
	roles []constant.Role
	// vendor actors must own the order
	ownerOnly bool
}

// transitions is the complete purchase order state machine. Any pair not
// listed here is an invalid transition.
var transitions = map[transitionKey]transitionRule{
	{constant.StatusNone, constant.ActionCreate}: {
		to:    constant.StatusPending,
		roles: []constant.Role{constant.RoleManager, constant.RoleAdmin},
	},
	{constant.StatusPending, constant.ActionApprove}: {
		to:    constant.StatusApproved,
		roles: []constant.Role{constant.RoleAdmin},
	},
	{constant.StatusPending, constant.ActionReject}: {
		to:    constant.StatusRejected,
		roles: []constant.Role{constant.RoleAdmin},
	},
	{constant.StatusApproved, constant.ActionAccept}: {
		to:        constant.StatusAccepted,
		roles:     []constant.Role{constant.RoleVendor},
		ownerOnly: true,
	},
	{constant.StatusApproved, constant.ActionReject}: {
		to:        constant.StatusRejected,
		roles:     []constant.Role{constant.RoleVendor},
		ownerOnly: true,
	},
	{constant.StatusAccepted, constant.ActionDispatch}: {
		to:        constant.StatusDispatched,
		roles:     []constant.Role{constant.RoleVendor},
		ownerOnly: true,
	},
	{constant.StatusDispatched, constant.ActionComplete}: {
		to:    constant.StatusCompleted,
		roles: []constant.Role{constant.RoleManager},
	},
}

func ownsOrder(order model.PurchaseOrder, actor model.Actor) bool {
	return order.VendorEmail != "" && order.VendorEmail == actor.Email
}

// Transition validates action against the order's status and the actor, and
// returns the order as it looks after the action together with the columns
// the action sets. The input order is not modified.
//
// A vendor acting on another vendor's order gets ErrPermissionDenied whatever
// the order's status, so status is never revealed across vendors.
func Transition(order model.PurchaseOrder, action constant.OrderAction, actor model.Actor, payload model.TransitionPayload, now time.Time) (model.PurchaseOrder, *model.TransitionFields, error) {
	if actor.Is(constant.RoleVendor) && order.Status != constant.StatusNone && !ownsOrder(order, actor) {
		return order, nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}

	rule, ok := transitions[transitionKey{from: order.Status, action: action}]
	if !ok {
		return order, nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if !slices.Contains(rule.roles, actor.Role) {
		return order, nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}
	if rule.ownerOnly && actor.Is(constant.RoleVendor) && !ownsOrder(order, actor) {
		return order, nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}

	fields, err := sideEffects(action, payload, now)
	if err != nil {
		return order, nil, err
	}

	next := order
	next.Status = rule.to
	apply(&next, fields, now, action)
	return next, fields, nil
}

// CanCreate reports whether actor may create purchase orders.
func CanCreate(actor model.Actor) error {
	_, _, err := Transition(model.PurchaseOrder{}, constant.ActionCreate, actor, model.TransitionPayload{}, time.Time{})
	return err
}

func sideEffects(action constant.OrderAction, payload model.TransitionPayload, now time.Time) (*model.TransitionFields, error) {
	fields := &model.TransitionFields{}
	switch action {
	case constant.ActionApprove:
		fields.ApprovedAt = &now
	case constant.ActionAccept:
		raw := strings.TrimSpace(payload.DeliveryDate)
		if raw == "" {
			return nil, errors.SetCustomErrorWithDetails(constant.ErrMissingPayload, "delivery_date is required")
		}
		date, err := time.Parse(constant.DeliveryDateLayout, raw)
		if err != nil {
			return nil, errors.SetCustomErrorWithDetails(constant.ErrValidation, "delivery_date must be YYYY-MM-DD")
		}
		fields.DeliveryDate = &date
		fields.AcceptedAt = &now
	case constant.ActionReject:
		reason := strings.TrimSpace(payload.Reason)
		if reason == "" {
			return nil, errors.SetCustomErrorWithDetails(constant.ErrMissingPayload, "reason is required")
		}
		fields.RejectionReason = &reason
		fields.RejectedAt = &now
	case constant.ActionDispatch:
		tracking := strings.TrimSpace(payload.TrackingInfo)
		if tracking == "" {
			return nil, errors.SetCustomErrorWithDetails(constant.ErrMissingPayload, "tracking_info is required")
		}
		fields.TrackingNumber = &tracking
		fields.DispatchDate = &now
	case constant.ActionComplete:
		fields.CompletedAt = &now
	}
	return fields, nil
}

// apply writes fields onto order without overwriting anything already set.
func apply(order *model.PurchaseOrder, f *model.TransitionFields, now time.Time, action constant.OrderAction) {
	if action == constant.ActionCreate && order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	setTime(&order.ApprovedAt, f.ApprovedAt)
	setTime(&order.AcceptedAt, f.AcceptedAt)
	setTime(&order.DeliveryDate, f.DeliveryDate)
	setTime(&order.DispatchDate, f.DispatchDate)
	setTime(&order.CompletedAt, f.CompletedAt)
	setTime(&order.RejectedAt, f.RejectedAt)
	setString(&order.TrackingNumber, f.TrackingNumber)
	setString(&order.RejectionReason, f.RejectionReason)
}

func setTime(dst **time.Time, v *time.Time) {
	if *dst == nil && v != nil {
		t := *v
		*dst = &t
	}
}

func setString(dst **string, v *string) {
	if *dst == nil && v != nil {
		s := *v
		*dst = &s
	}
}
