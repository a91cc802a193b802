package context

import (
	"context"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
)

func WithActor(ctx context.Context, actor model.Actor) context.Context {
	return context.WithValue(ctx, constant.ActorKey, actor)
}

func GetActor(ctx context.Context) (model.Actor, bool) {
	v := ctx.Value(constant.ActorKey)
	if v == nil {
		return model.Actor{}, false
	}
	actor, ok := v.(model.Actor)
	return actor, ok
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, id)
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(constant.RequestIDKey).(string)
	return id
}
