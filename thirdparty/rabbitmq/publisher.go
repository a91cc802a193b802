package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/rabbitmq/amqp091-go"
)

const (
	orderEventsExchange = "purchase_order_events"
	orderEventsPrefix   = "purchase_order."
)

type Publisher struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// PurchaseOrderEvent is published after every committed lifecycle step.
type PurchaseOrderEvent struct {
	EventID     string                       `json:"event_id"`
	OrderID     uint64                       `json:"order_id"`
	ProductID   uint64                       `json:"product_id"`
	VendorID    uint64                       `json:"vendor_id"`
	VendorEmail string                       `json:"vendor_email"`
	Quantity    int                          `json:"quantity"`
	Action      constant.OrderAction         `json:"action"`
	Status      constant.PurchaseOrderStatus `json:"status"`
	ActorEmail  string                       `json:"actor_email"`
	OccurredAt  time.Time                    `json:"occurred_at"`
}

// RoutingKey is purchase_order.<action>, e.g. purchase_order.approve.
func (e PurchaseOrderEvent) RoutingKey() string {
	return orderEventsPrefix + string(e.Action)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		orderEventsExchange, // name
		"topic",             // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, msg PurchaseOrderEvent) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(
		ctx,
		orderEventsExchange, // exchange
		msg.RoutingKey(),    // routing key
		false,               // mandatory
		false,               // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    msg.EventID,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
