package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/wedloft/site-service/internal/entities"
	"github.com/wedloft/site-service/internal/export"
	"github.com/wedloft/site-service/pkg/utils"
)

type OrderService interface {
	Login(ctx context.Context, accessCode string) (entities.Order, error)
	GetOrder(ctx context.Context, id int) (entities.Order, error)
	UpdateOrder(ctx context.Context, id int, patch entities.OrderPatch) (entities.Order, error)
	GenerateContent(ctx context.Context, id int) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Route("/orders/{id}", func(r chi.Router) {
			r.Get("/", h.GetOrder)
			r.Put("/", h.UpdateOrder)
			r.Post("/generate", h.GenerateContent)
			r.Get("/download", h.Download)
		})
	})
}

// Login resolves an access code to its order.
// @Summary      Log in with an access code
// @Tags         orders
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /api/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.Login(ctx, req.AccessCode)
	if errors.Is(err, entities.ErrInvalidAccessCode) {
		utils.WriteError(w, "invalid access code", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "login failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetOrder returns an order by id.
// @Summary      Get an order
// @Tags         orders
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(ctx, id)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.Int("order_id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrder applies a wizard-step update to template and/or details.
// @Summary      Update an order
// @Tags         orders
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *HTTPHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateOrder(ctx, id, UpdateRequestToPatch(req))
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update order", slog.Any("error", err), slog.Int("order_id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GenerateContent runs the content generation pipeline for an order.
// @Summary      Generate site copy
// @Tags         orders
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      412  {object}  utils.ErrorResponse
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /api/orders/{id}/generate [post]
func (h *HTTPHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	start := time.Now()
	order, err := h.svc.GenerateContent(ctx, id)
	generationDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrDetailsMissing):
		utils.WriteError(w, "wedding details are required before generation", http.StatusPreconditionFailed)
		return
	case errors.Is(err, entities.ErrGenerationFailed):
		generationTotal.WithLabelValues("failed").Inc()
		utils.WriteError(w, "content generation failed, please retry", http.StatusBadGateway)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to generate content", slog.Any("error", err), slog.Int("order_id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	generationTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Download streams the rendered static site bundle.
// @Summary      Download the site bundle
// @Tags         orders
// @Produce      application/zip
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders/{id}/download [get]
func (h *HTTPHandler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(ctx, id)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.Int("order_id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	bundle, err := export.Bundle(order)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render bundle", slog.Any("error", err), slog.Int("order_id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	downloadsTotal.Inc()
	utils.WriteAttachment(w, bundle, "wedding.zip", "application/zip")
}

func (h *HTTPHandler) orderID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
