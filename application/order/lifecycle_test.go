package order_test

import (
	"errors"
	"testing"
	"time"

	apporder "github.com/muhammadheryan/restock/application/order"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	cerr "github.com/muhammadheryan/restock/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vendorEmail = "supplier@acme.test"

var (
	admin   = model.Actor{Role: constant.RoleAdmin, Email: "admin@store.test"}
	manager = model.Actor{Role: constant.RoleManager, Email: "manager@store.test"}
	vendor  = model.Actor{Role: constant.RoleVendor, Email: vendorEmail}
	other   = model.Actor{Role: constant.RoleVendor, Email: "someone@else.test"}

	fullPayload = model.TransitionPayload{
		DeliveryDate: "2026-11-02",
		Reason:       "out of budget",
		TrackingInfo: "JNE-123456",
	}
	fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
)

func requireErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	require.Error(t, err)
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "expected CustomError, got %T", err)
	assert.Equal(t, constant.ErrorTypeCode[want], ce.ErrorCode(), "got %s", ce.Error())
}

func orderIn(status constant.PurchaseOrderStatus) model.PurchaseOrder {
	return model.PurchaseOrder{
		ID:          7,
		ProductID:   11,
		VendorID:    3,
		VendorEmail: vendorEmail,
		Quantity:    40,
		Status:      status,
		CreatedAt:   fixedNow.Add(-time.Hour),
	}
}

func TestTransition_Grid(t *testing.T) {
	type key struct {
		from   constant.PurchaseOrderStatus
		action constant.OrderAction
		role   constant.Role
	}
	allowed := map[key]constant.PurchaseOrderStatus{
		{constant.StatusNone, constant.ActionCreate, constant.RoleManager}:         constant.StatusPending,
		{constant.StatusNone, constant.ActionCreate, constant.RoleAdmin}:           constant.StatusPending,
		{constant.StatusPending, constant.ActionApprove, constant.RoleAdmin}:       constant.StatusApproved,
		{constant.StatusPending, constant.ActionReject, constant.RoleAdmin}:        constant.StatusRejected,
		{constant.StatusApproved, constant.ActionAccept, constant.RoleVendor}:      constant.StatusAccepted,
		{constant.StatusApproved, constant.ActionReject, constant.RoleVendor}:      constant.StatusRejected,
		{constant.StatusAccepted, constant.ActionDispatch, constant.RoleVendor}:    constant.StatusDispatched,
		{constant.StatusDispatched, constant.ActionComplete, constant.RoleManager}: constant.StatusCompleted,
	}
	// pairs that exist for some role
	known := map[constant.PurchaseOrderStatus]map[constant.OrderAction]bool{}
	for k := range allowed {
		if known[k.from] == nil {
			known[k.from] = map[constant.OrderAction]bool{}
		}
		known[k.from][k.action] = true
	}

	statuses := append([]constant.PurchaseOrderStatus{constant.StatusNone}, constant.PurchaseOrderStatuses...)
	actors := []model.Actor{admin, manager, vendor}

	for _, status := range statuses {
		for _, action := range constant.OrderActions {
			for _, actor := range actors {
				name := string(actor.Role) + "/" + string(status) + "/" + string(action)
				t.Run(name, func(t *testing.T) {
					in := orderIn(status)
					next, fields, err := apporder.Transition(in, action, actor, fullPayload, fixedNow)

					want, ok := allowed[key{status, action, actor.Role}]
					switch {
					case ok:
						require.NoError(t, err)
						require.NotNil(t, fields)
						assert.Equal(t, want, next.Status)
					case known[status][action]:
						requireErrType(t, err, constant.ErrPermissionDenied)
						assert.Equal(t, status, next.Status)
					default:
						requireErrType(t, err, constant.ErrInvalidTransition)
						assert.Equal(t, status, next.Status)
					}
				})
			}
		}
	}
}

func TestTransition_Payload(t *testing.T) {
	tests := []struct {
		name    string
		status  constant.PurchaseOrderStatus
		action  constant.OrderAction
		actor   model.Actor
		payload model.TransitionPayload
		errCode constant.ErrorType
	}{
		{
			name:    "accept without delivery date",
			status:  constant.StatusApproved,
			action:  constant.ActionAccept,
			actor:   vendor,
			payload: model.TransitionPayload{},
			errCode: constant.ErrMissingPayload,
		},
		{
			name:    "accept with malformed delivery date",
			status:  constant.StatusApproved,
			action:  constant.ActionAccept,
			actor:   vendor,
			payload: model.TransitionPayload{DeliveryDate: "02/11/2026"},
			errCode: constant.ErrValidation,
		},
		{
			name:    "admin reject with blank reason",
			status:  constant.StatusPending,
			action:  constant.ActionReject,
			actor:   admin,
			payload: model.TransitionPayload{Reason: "   "},
			errCode: constant.ErrMissingPayload,
		},
		{
			name:    "vendor reject without reason",
			status:  constant.StatusApproved,
			action:  constant.ActionReject,
			actor:   vendor,
			payload: model.TransitionPayload{},
			errCode: constant.ErrMissingPayload,
		},
		{
			name:    "dispatch without tracking info",
			status:  constant.StatusAccepted,
			action:  constant.ActionDispatch,
			actor:   vendor,
			payload: model.TransitionPayload{DeliveryDate: "2026-11-02"},
			errCode: constant.ErrMissingPayload,
		},
		{
			name:    "role check wins over missing payload",
			status:  constant.StatusApproved,
			action:  constant.ActionAccept,
			actor:   manager,
			payload: model.TransitionPayload{},
			errCode: constant.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := orderIn(tt.status)
			next, fields, err := apporder.Transition(in, tt.action, tt.actor, tt.payload, fixedNow)
			requireErrType(t, err, tt.errCode)
			assert.Nil(t, fields)
			assert.Equal(t, tt.status, next.Status)
		})
	}
}

func TestTransition_Ownership(t *testing.T) {
	tests := []struct {
		name    string
		order   model.PurchaseOrder
		action  constant.OrderAction
		actor   model.Actor
		wantErr bool
		errCode constant.ErrorType
	}{
		{
			name:    "other vendor cannot accept",
			order:   orderIn(constant.StatusApproved),
			action:  constant.ActionAccept,
			actor:   other,
			wantErr: true,
			errCode: constant.ErrPermissionDenied,
		},
		{
			name:    "other vendor gets permission denied even for an invalid pair",
			order:   orderIn(constant.StatusCompleted),
			action:  constant.ActionDispatch,
			actor:   other,
			wantErr: true,
			errCode: constant.ErrPermissionDenied,
		},
		{
			name: "order without vendor email is owned by nobody",
			order: func() model.PurchaseOrder {
				o := orderIn(constant.StatusApproved)
				o.VendorEmail = ""
				return o
			}(),
			action:  constant.ActionAccept,
			actor:   model.Actor{Role: constant.RoleVendor, Email: ""},
			wantErr: true,
			errCode: constant.ErrPermissionDenied,
		},
		{
			name:    "email is compared exactly",
			order:   orderIn(constant.StatusApproved),
			action:  constant.ActionAccept,
			actor:   model.Actor{Role: constant.RoleVendor, Email: "Supplier@ACME.test"},
			wantErr: true,
			errCode: constant.ErrPermissionDenied,
		},
		{
			name:   "admin is not bound to ownership",
			order:  orderIn(constant.StatusPending),
			action: constant.ActionApprove,
			actor:  admin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := apporder.Transition(tt.order, tt.action, tt.actor, fullPayload, fixedNow)
			if tt.wantErr {
				requireErrType(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTransition_FullLifecycle(t *testing.T) {
	po := orderIn(constant.StatusNone)
	po.CreatedAt = time.Time{}

	steps := []struct {
		action constant.OrderAction
		actor  model.Actor
		want   constant.PurchaseOrderStatus
	}{
		{constant.ActionCreate, manager, constant.StatusPending},
		{constant.ActionApprove, admin, constant.StatusApproved},
		{constant.ActionAccept, vendor, constant.StatusAccepted},
		{constant.ActionDispatch, vendor, constant.StatusDispatched},
		{constant.ActionComplete, manager, constant.StatusCompleted},
	}

	now := fixedNow
	stamps := map[constant.OrderAction]time.Time{}
	for _, step := range steps {
		next, _, err := apporder.Transition(po, step.action, step.actor, fullPayload, now)
		require.NoError(t, err, "step %s", step.action)
		require.Equal(t, step.want, next.Status)
		stamps[step.action] = now
		po = next
		now = now.Add(time.Hour)
	}

	assert.Equal(t, stamps[constant.ActionCreate], po.CreatedAt)
	require.NotNil(t, po.ApprovedAt)
	assert.Equal(t, stamps[constant.ActionApprove], *po.ApprovedAt)
	require.NotNil(t, po.AcceptedAt)
	assert.Equal(t, stamps[constant.ActionAccept], *po.AcceptedAt)
	require.NotNil(t, po.DeliveryDate)
	assert.Equal(t, "2026-11-02", po.DeliveryDate.Format(constant.DeliveryDateLayout))
	require.NotNil(t, po.DispatchDate)
	assert.Equal(t, stamps[constant.ActionDispatch], *po.DispatchDate)
	require.NotNil(t, po.TrackingNumber)
	assert.Equal(t, "JNE-123456", *po.TrackingNumber)
	require.NotNil(t, po.CompletedAt)
	assert.Equal(t, stamps[constant.ActionComplete], *po.CompletedAt)
	assert.Nil(t, po.RejectedAt)
	assert.Nil(t, po.RejectionReason)

	// terminal: nothing moves a completed order
	for _, action := range constant.OrderActions {
		for _, actor := range []model.Actor{admin, manager, vendor} {
			_, _, err := apporder.Transition(po, action, actor, fullPayload, now)
			require.Error(t, err, "%s by %s", action, actor.Role)
		}
	}
}

func TestTransition_Reject(t *testing.T) {
	in := orderIn(constant.StatusApproved)
	next, fields, err := apporder.Transition(in, constant.ActionReject, vendor, model.TransitionPayload{Reason: "  no stock at supplier "}, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, constant.StatusRejected, next.Status)
	require.NotNil(t, next.RejectionReason)
	assert.Equal(t, "no stock at supplier", *next.RejectionReason)
	require.NotNil(t, next.RejectedAt)
	assert.Equal(t, fixedNow, *next.RejectedAt)
	require.NotNil(t, fields.RejectionReason)
	assert.Nil(t, fields.ApprovedAt)
	assert.Nil(t, fields.TrackingNumber)

	// input is untouched
	assert.Equal(t, constant.StatusApproved, in.Status)
	assert.Nil(t, in.RejectionReason)
	assert.Nil(t, in.RejectedAt)
}

func TestTransition_SideEffectsAreSetOnce(t *testing.T) {
	earlier := fixedNow.Add(-48 * time.Hour)
	in := orderIn(constant.StatusDispatched)
	in.ApprovedAt = &earlier

	next, _, err := apporder.Transition(in, constant.ActionComplete, manager, fullPayload, fixedNow)
	require.NoError(t, err)
	require.NotNil(t, next.ApprovedAt)
	assert.Equal(t, earlier, *next.ApprovedAt)
	require.NotNil(t, next.CompletedAt)
	assert.Equal(t, fixedNow, *next.CompletedAt)
}

func TestCanCreate(t *testing.T) {
	tests := []struct {
		name    string
		actor   model.Actor
		wantErr bool
	}{
		{name: "admin", actor: admin},
		{name: "manager", actor: manager},
		{name: "vendor", actor: vendor, wantErr: true},
		{name: "unknown role", actor: model.Actor{Role: "GUEST", Email: "x@y.test"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apporder.CanCreate(tt.actor)
			if tt.wantErr {
				requireErrType(t, err, constant.ErrPermissionDenied)
				return
			}
			assert.NoError(t, err)
		})
	}
}
