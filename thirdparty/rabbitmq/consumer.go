package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/cmd/config"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler *LeadHandler
}

func NewConsumer(cfg config.RabbitMQConfig, internal config.InternalConfig) (*Consumer, error) {
	conn, channel, err := open(cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: NewLeadHandler(internal.APIURL, internal.APIKey, &http.Client{Timeout: 10 * time.Second}),
	}, nil
}

// Start consumes until ctx is cancelled or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	// one unacked message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		LeadQueue,
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
					return
				}
				switch c.handler.Handle(ctx, msg.Body) {
				case Requeue:
					msg.Nack(false, true)
				default:
					msg.Ack(false)
				}
			}
		}
	}()

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

type Outcome int

const (
	Ack Outcome = iota
	Requeue
)

// LeadHandler turns a lead.created message into an admin notification by
// calling the internal notifications endpoint.
type LeadHandler struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewLeadHandler(apiURL, apiKey string, client *http.Client) *LeadHandler {
	return &LeadHandler{apiURL: apiURL, apiKey: apiKey, client: client}
}

func (h *LeadHandler) Handle(ctx context.Context, body []byte) Outcome {
	var msg LeadCreatedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		logger.Error("[LeadHandler] malformed message dropped", zap.String("error", err.Error()))
		return Ack
	}

	if err := h.notify(ctx, msg); err != nil {
		logger.Warn("[LeadHandler] notify failed, requeue",
			zap.String("lead_id", msg.LeadID), zap.String("error", err.Error()))
		return Requeue
	}

	logger.Info("[LeadHandler] lead notification sent", zap.String("lead_id", msg.LeadID))
	return Ack
}

func (h *LeadHandler) notify(ctx context.Context, msg LeadCreatedMessage) error {
	payload, err := json.Marshal(map[string]string{
		"message": fmt.Sprintf("New lead: %s (%s)", msg.Name, msg.Phone),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.apiURL+"/internal/v1/notifications", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", h.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "lead-notifier")

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	// 4xx will not get better on retry
	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
