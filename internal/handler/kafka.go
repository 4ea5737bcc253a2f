package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/wedloft/site-service/internal/config"
	"github.com/wedloft/site-service/internal/entities"
)

type OrderProvisioner interface {
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error)
}

// PurchaseEvent is one purchase notification from the storefront
// integration. The access code is optional: when the upstream system did not
// mint one, the consumer does.
type PurchaseEvent struct {
	EtsyOrderID string `json:"etsy_order_id" validate:"required"`
	AccessCode  string `json:"access_code"`
	Template    string `json:"template" validate:"omitempty,oneof=sage_green old_money minimalist luxury_gold botanical"`
}

type kafkaHandler struct {
	dlq         *kafka.Writer
	reader      *kafka.Reader
	logger      *slog.Logger
	validate    *validator.Validate
	provisioner OrderProvisioner
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, provisioner OrderProvisioner) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate:    validator.New(),
		provisioner: provisioner,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handlePurchase(ctx, m); err != nil {
			h.logger.Error("failed to handle purchase event", slog.Any("error", err))
			provisioningFailed.Inc()

			// The writer retries internally before giving up.
			if err := h.writeToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			provisioningDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePurchase(ctx context.Context, m kafka.Message) error {
	var event PurchaseEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal purchase event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid purchase event: %w", err)
	}

	accessCode := event.AccessCode
	if accessCode == "" {
		accessCode = newAccessCode()
	}

	_, err := h.provisioner.CreateOrder(ctx, entities.OrderDraft{
		EtsyOrderID: event.EtsyOrderID,
		AccessCode:  accessCode,
		Template:    entities.Template(event.Template),
	})
	if errors.Is(err, entities.ErrOrderExists) {
		// Redelivery of an already provisioned purchase.
		h.logger.Debug("purchase already provisioned", slog.String("etsy_order_id", event.EtsyOrderID))
		return nil
	}
	if err != nil {
		return err
	}

	ordersProvisioned.Inc()
	return nil
}

func (h *kafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}

// newAccessCode mints a short shareable credential for the customer email.
func newAccessCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
