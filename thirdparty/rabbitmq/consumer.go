package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/student-marketplace/cmd/config"
	"github.com/muhammadheryan/student-marketplace/model"
	"github.com/muhammadheryan/student-marketplace/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer marks messages delivered by calling the internal API for every
// MessageSentEvent on the queue.
type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewConsumer(cfg config.RabbitMQConfig, internal config.InternalConfig) (*Consumer, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:       conn,
		channel:    channel,
		apiURL:     internal.APIURL,
		apiKey:     internal.APIKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one unacked delivery at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		messageQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer] delivery channel closed")
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var event model.MessageSentEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[Consumer] error json.Unmarshal", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.markDelivered(ctx, event.MessageID); err != nil {
		logger.Error("[Consumer] error markDelivered", zap.Uint64("message_id", event.MessageID), zap.String("error", err.Error()))
		// requeue once; a redelivered failure is dropped
		_ = msg.Nack(false, !msg.Redelivered)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] message delivered", zap.Uint64("message_id", event.MessageID))
}

func (c *Consumer) markDelivered(ctx context.Context, messageID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/messages/%d/delivered", c.apiURL, messageID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "message-delivery-consumer")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// 4xx means the message is gone or already delivered; retrying won't help
	if resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
