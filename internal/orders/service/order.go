package service

import (
	"context"
	"errors"

	orderserrors "bistro/internal/orders/errors"
	"bistro/internal/orders/repository"
	"bistro/internal/orders/validator"
	"bistro/pkg/config"
	apperrors "bistro/pkg/errors"
	"bistro/pkg/events"
	"bistro/pkg/model"
	"bistro/pkg/sanitizer"
	"bistro/pkg/validation"

	"github.com/google/uuid"
)

type OrderService interface {
	Create(ctx context.Context, order *model.Order) error
}

type orderService struct {
	repo      repository.OrderRepository
	validator *validator.OrderValidator
	emitter   *events.Emitter
	cfg       *config.Config
}

func NewOrderService(
	repo repository.OrderRepository,
	validator *validator.OrderValidator,
	emitter *events.Emitter,
	cfg *config.Config,
) OrderService {
	return &orderService{
		repo:      repo,
		validator: validator,
		emitter:   emitter,
		cfg:       cfg,
	}
}

func (s *orderService) Create(ctx context.Context, order *model.Order) error {
	s.sanitize(order)
	if err := s.validator.Validate(order); err != nil {
		return validation.ToAppError(err, "Invalid order")
	}

	order.ID = uuid.NewString()
	if err := s.repo.Create(ctx, order); err != nil {
		if errors.Is(err, orderserrors.ErrDuplicateOrder) {
			return apperrors.Conflict("Order already exists")
		}
		s.cfg.Log.Error("Failed to create order", "error", err)
		return apperrors.Internal("Failed to create order", err)
	}

	s.cfg.Log.Info("Order created successfully",
		"id", order.ID,
		"total_number", order.TotalNumber,
		"total_price", order.TotalPrice.String(),
	)
	s.emitter.Emit(ctx, events.OrderPlaced, order.ID, order)
	return nil
}

func (s *orderService) sanitize(o *model.Order) {
	o.Phone = sanitizer.NormalizePhone(o.Phone, s.cfg.PhoneRegion)
	o.Address = sanitizer.NormalizeAddress(o.Address)
}
