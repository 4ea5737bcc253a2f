package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wedloft/site-service/internal/entities"
	"github.com/wedloft/site-service/internal/generation"
	"github.com/wedloft/site-service/pkg/utils"
)

type OrderStore interface {
	GetByID(ctx context.Context, id int) (entities.Order, error)
	GetByAccessCode(ctx context.Context, code string) (entities.Order, error)
	Create(ctx context.Context, draft entities.OrderDraft) (entities.Order, error)
	Update(ctx context.Context, id int, patch entities.OrderPatch) (entities.Order, error)
}

type ContentGenerator interface {
	Generate(ctx context.Context, prompt string) (entities.GeneratedContent, error)
}

type orderService struct {
	logger *slog.Logger
	store  OrderStore
	gen    ContentGenerator
}

func NewOrderService(logger *slog.Logger, store OrderStore, gen ContentGenerator) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		store:  store,
		gen:    gen,
	}
}

// Login resolves an access code to its order. A code that is not on file
// surfaces as ErrInvalidAccessCode, indistinguishable from any other bad
// credential.
func (s *orderService) Login(ctx context.Context, accessCode string) (entities.Order, error) {
	order, err := s.store.GetByAccessCode(ctx, accessCode)
	if err != nil {
		return entities.Order{}, entities.ErrInvalidAccessCode
	}
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id int) (entities.Order, error) {
	return s.store.GetByID(ctx, id)
}

// UpdateOrder applies a wizard-step update. Clients may only touch template
// and wedding details; status and generated content belong to the pipeline.
func (s *orderService) UpdateOrder(ctx context.Context, id int, patch entities.OrderPatch) (entities.Order, error) {
	patch.Status = nil
	patch.GeneratedContent = nil

	order, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order updated", slog.Int("order_id", id))
	return order, nil
}

// CreateOrder provisions a new order at purchase time. Transient store
// failures are retried; a duplicate access code or etsy order id is not.
func (s *orderService) CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.store.Create(ctx, draft)
		return err
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderExists); err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order provisioned",
		slog.Int("order_id", order.ID),
		slog.String("etsy_order_id", order.EtsyOrderID),
	)
	return order, nil
}

// GenerateContent runs the generation pipeline for one order: build the
// prompt, call the provider once, persist content and completed status as a
// single update. On any failure the order is left exactly as it was.
func (s *orderService) GenerateContent(ctx context.Context, id int) (entities.Order, error) {
	order, err := s.store.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	if order.WeddingDetails == nil || !order.WeddingDetails.Complete() {
		return entities.Order{}, entities.ErrDetailsMissing
	}

	prompt := generation.BuildPrompt(order.Template, *order.WeddingDetails)

	content, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("generation failed", slog.Int("order_id", id), slog.Any("error", err))
		return entities.Order{}, fmt.Errorf("%w: %v", entities.ErrGenerationFailed, err)
	}

	completed := entities.StatusCompleted
	updated, err := s.store.Update(ctx, id, entities.OrderPatch{
		GeneratedContent: &content,
		Status:           &completed,
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to persist generated content: %w", err)
	}

	s.logger.Info("content generated", slog.Int("order_id", id))
	return updated, nil
}
