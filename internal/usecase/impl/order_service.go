package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo    repository.OrderRepository
	businessRepo repository.BusinessRepository
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	BusinessRepo repository.BusinessRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:    params.OrderRepo,
		businessRepo: params.BusinessRepo,
	}
}

// ListOrders retrieves the business's orders, newest first. The status filter
// is parsed, and each order's StatusDisplay rendered, in the business
// vertical's vocabulary ("shipped" means "on_way" for an e-commerce tenant).
func (s *orderService) ListOrders(ctx context.Context, businessID uuid.UUID, statusFilter string) ([]*entity.Order, error) {
	vertical, err := s.businessVertical(ctx, businessID)
	if err != nil {
		return nil, err
	}

	var status *entity.OrderStatus
	if statusFilter != "" {
		parsed, ok := entity.ParseOrderStatus(vertical, statusFilter)
		if !ok {
			return nil, domainerrors.ErrInvalidStatus.WithDetails(statusFilter)
		}
		status = &parsed
	}

	orders, err := s.orderRepo.List(ctx, businessID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	for _, order := range orders {
		order.StatusDisplay = order.Status.Display(vertical)
	}

	return orders, nil
}

// GetOrder retrieves a single order scoped to the business, with StatusDisplay
// rendered in the vertical's vocabulary.
func (s *orderService) GetOrder(ctx context.Context, businessID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.findOrder(ctx, businessID, orderID)
	if err != nil {
		return nil, err
	}

	vertical, err := s.businessVertical(ctx, businessID)
	if err != nil {
		return nil, err
	}
	order.StatusDisplay = order.Status.Display(vertical)

	return order, nil
}

func (s *orderService) findOrder(ctx context.Context, businessID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, businessID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// UpdateOrderStatus transitions an order along the lifecycle state machine.
// Unknown statuses and illegal transitions (backward moves, moves out of a
// terminal state) are rejected; a legal transition appends exactly one
// status-history entry.
func (s *orderService) UpdateOrderStatus(ctx context.Context, businessID, orderID uuid.UUID, rawStatus string) (*entity.Order, error) {
	vertical, err := s.businessVertical(ctx, businessID)
	if err != nil {
		return nil, err
	}

	next, ok := entity.ParseOrderStatus(vertical, rawStatus)
	if !ok {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(rawStatus)
	}

	order, err := s.findOrder(ctx, businessID, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrIllegalTransition.WithDetails(
			string(order.Status) + " -> " + string(next),
		)
	}

	order.AppendStatus(next, time.Now())

	if err := s.orderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order.StatusDisplay = order.Status.Display(vertical)

	return order, nil
}

// UpdateInternalNote replaces the staff-only note on an order.
func (s *orderService) UpdateInternalNote(ctx context.Context, businessID, orderID uuid.UUID, note string) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, businessID, orderID)
	if err != nil {
		return nil, err
	}

	order.InternalNote = note
	order.UpdatedAt = time.Now()

	if err := s.orderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order note")
	}

	return order, nil
}

// DeleteOrder hard-deletes an order and its line items.
func (s *orderService) DeleteOrder(ctx context.Context, businessID, orderID uuid.UUID) error {
	if err := s.orderRepo.Delete(ctx, businessID, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

func (s *orderService) businessVertical(ctx context.Context, businessID uuid.UUID) (entity.Vertical, error) {
	business, err := s.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return "", domainerrors.ErrBusinessNotFound
		}

		return "", errors.Wrap(err, "failed to resolve business")
	}

	return business.Vertical, nil
}
