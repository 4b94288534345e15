package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadheryan/student-marketplace/cmd/config"
	"github.com/muhammadheryan/student-marketplace/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	messageExchange  = "message_events_exchange"
	messageQueue     = "message_delivery_queue"
	messageSentRoute = "message.sent"
	contentTypeJSON  = "application/json"
)

// MessagePublisher announces stored chat messages to the delivery worker.
type MessagePublisher interface {
	PublishMessageSent(ctx context.Context, event model.MessageSentEvent) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dial(cfg config.RabbitMQConfig) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		messageExchange, // name
		"direct",        // type
		true,            // durable
		false,           // auto-delete
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		messageQueue, // name
		true,         // durable
		false,        // auto-delete
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := channel.QueueBind(messageQueue, messageSentRoute, messageExchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func NewPublisher(cfg config.RabbitMQConfig) (*Publisher, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishMessageSent(ctx context.Context, event model.MessageSentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		messageExchange,  // exchange
		messageSentRoute, // routing key
		false,            // mandatory
		false,            // immediate
		amqp091.Publishing{
			ContentType:  contentTypeJSON,
			DeliveryMode: amqp091.Persistent,
			MessageId:    fmt.Sprintf("%d", event.MessageID),
			Timestamp:    event.SentAt,
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
