package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio/pkg/config"
	"portfolio/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ContentExchange       = "content"
	ContentChangedKey     = "content.changed"
	RevalidationQueueName = "revalidation_queue"
)

// ContentChanged is published after every successful collection write.
type ContentChanged struct {
	Collection string    `json:"collection"`
	Action     string    `json:"action"`
	ID         string    `json:"id,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func URL(cfg *config.Config) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	conn, err := amqp.Dial(URL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func declareTopology(channel *amqp.Channel) error {
	err := channel.ExchangeDeclare(
		ContentExchange, // name
		"direct",        // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		RevalidationQueueName, // name
		true,                  // durable
		false,                 // delete when unused
		false,                 // exclusive
		false,                 // no-wait
		nil,                   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		RevalidationQueueName, // queue name
		ContentChangedKey,     // routing key
		ContentExchange,       // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishContentChanged publishes a persistent content-change event.
func (c *Client) PublishContentChanged(ctx context.Context, event ContentChanged) error {
	body, err := Encode(event)
	if err != nil {
		return err
	}

	err = c.channel.PublishWithContext(ctx,
		ContentExchange,   // exchange
		ContentChangedKey, // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish to exchange=%s, routing_key=%s: %v", ContentExchange, ContentChangedKey, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published content change collection=%s action=%s", event.Collection, event.Action)
	return nil
}

// ConsumeContentChanged delivers events to handler until ctx is done.
// Malformed messages are dropped, handler failures are requeued.
func (c *Client) ConsumeContentChanged(ctx context.Context, handler func(ctx context.Context, event ContentChanged) error) error {
	msgs, err := c.channel.ConsumeWithContext(ctx,
		RevalidationQueueName, // queue
		"",                    // consumer
		false,                 // auto-ack
		false,                 // exclusive
		false,                 // no-local
		false,                 // no-wait
		nil,                   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from queue: %s", RevalidationQueueName)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.handleDelivery(ctx, msg, handler)
		}
	}
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func (c *Client) handleDelivery(ctx context.Context, msg amqp.Delivery, handler func(context.Context, ContentChanged) error) {
	if err := process(ctx, c.logger, msg.Body, msg, handler); err != nil {
		c.logger.Error("[RABBITMQ] %v", err)
	}
}

// process runs handler for one delivery and settles it. The returned error is
// the broker rejecting the ack or nack.
func process(ctx context.Context, log *logger.Logger, body []byte, ack acknowledger, handler func(context.Context, ContentChanged) error) error {
	event, err := Decode(body)
	if err != nil {
		log.Error("[RABBITMQ] Failed to decode content event: %v, body=%s", err, string(body))
		if err := ack.Nack(false, false); err != nil {
			return fmt.Errorf("failed to nack message: %w", err)
		}
		return nil
	}

	if err := handler(ctx, event); err != nil {
		log.Error("[RABBITMQ] Handler failed for collection=%s: %v", event.Collection, err)
		if err := ack.Nack(false, true); err != nil {
			return fmt.Errorf("failed to requeue message: %w", err)
		}
		return nil
	}

	if err := ack.Ack(false); err != nil {
		return fmt.Errorf("failed to ack message: %w", err)
	}
	return nil
}

func Encode(event ContentChanged) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return body, nil
}

func Decode(body []byte) (ContentChanged, error) {
	var event ContentChanged
	if err := json.Unmarshal(body, &event); err != nil {
		return ContentChanged{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.Collection == "" {
		return ContentChanged{}, fmt.Errorf("event has no collection")
	}
	return event, nil
}

// GetQueueLength returns the number of messages waiting for revalidation.
func (c *Client) GetQueueLength() (int, error) {
	q, err := c.channel.QueueInspect(RevalidationQueueName)
	if err != nil {
		return 0, err
	}
	return q.Messages, nil
}
