package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/config"
	"github.com/hashicorp/go-hclog"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	Publish(ctx context.Context, event ListingEvent) error
}

// NewPublisher returns a RabbitMQ publisher, or a no-op one when no broker
// URL is configured.
func NewPublisher(cfg *config.Config, log hclog.Logger) Publisher {
	if cfg.RabbitMQURL == "" {
		log.Info("rabbitmq not configured, listing events disabled")
		return NopPublisher{}
	}
	return &AMQPPublisher{url: cfg.RabbitMQURL, queue: cfg.RabbitMQQueue}
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ListingEvent) error { return nil }

// AMQPPublisher dials the broker per message. Listing changes are rare, so a
// long-lived channel is not worth the reconnect handling.
type AMQPPublisher struct {
	url   string
	queue string
}

func (p *AMQPPublisher) Publish(ctx context.Context, event ListingEvent) error {
	body, err := encode(event)
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq: dial failed: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq: channel open failed: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("rabbitmq: queue declare failed: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(event.Kind),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq: publish failed: %w", err)
	}
	return nil
}

func encode(event ListingEvent) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: marshal event failed: %w", err)
	}
	return body, nil
}
