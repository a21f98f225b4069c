package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves an order owned by the given business, including its line items.
func (repo *orderRepository) FindByID(ctx context.Context, businessID, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("business_id = ? AND id = ?", businessID, id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// List retrieves the business's orders, newest first, optionally filtered by status.
func (repo *orderRepository) List(ctx context.Context, businessID uuid.UUID, status *entity.OrderStatus) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Preload("Items").
		Where("business_id = ?", businessID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// Create persists a new order together with its line items. GORM inserts the
// associated Items rows through the foreign key association.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid business or coupon reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// Update persists the mutable slice of an order: status, status history,
// payment status and internal note. Line items and totals never change after
// creation, so they are deliberately left out of the update set.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	historyJSON, err := json.Marshal(order.StatusHistory)
	if err != nil {
		return errors.Wrap(err, "failed to encode status history")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("business_id = ? AND id = ?", order.BusinessID, order.ID).
		Updates(map[string]any{
			"status":         string(order.Status),
			"status_history": historyJSON,
			"payment_status": order.PaymentStatus,
			"internal_note":  order.InternalNote,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete hard-deletes an order and its line items in one transaction.
// The ownership check runs first so a cross-tenant id never touches the
// items, and the items go before the order to keep the foreign key intact.
func (repo *orderRepository) Delete(ctx context.Context, businessID, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.OrderModel{}).
			Where("business_id = ? AND id = ?", businessID, id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check order ownership")
		}
		if count == 0 {
			return repository.ErrOrderNotFound
		}

		if err := tx.
			Where("order_id = ?", id).
			Delete(&model.OrderItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete order items")
		}

		result := tx.
			Where("business_id = ? AND id = ?", businessID, id).
			Delete(&model.OrderModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete order")
		}
		if result.RowsAffected == 0 {
			return repository.ErrOrderNotFound
		}

		return nil
	})
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	var history []entity.StatusChange
	if len(data.StatusHistory) != 0 {
		if err := json.Unmarshal(data.StatusHistory, &history); err != nil {
			return nil, errors.Wrap(err, "failed to decode status history")
		}
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: itemM.ProductID,
			Name:      itemM.Name,
			Price:     itemM.Price,
			Quantity:  itemM.Quantity,
			Total:     itemM.Total,
		})
	}

	return &entity.Order{
		ID:          data.ID,
		BusinessID:  data.BusinessID,
		OrderNumber: data.OrderNumber,
		Customer: entity.CustomerInfo{
			Name:    data.CustomerName,
			Phone:   data.CustomerPhone,
			Address: data.CustomerAddress,
			Email:   data.CustomerEmail,
			Note:    data.CustomerNote,
		},
		Items:         items,
		Subtotal:      data.Subtotal,
		ShippingCost:  data.ShippingCost,
		Discount:      data.Discount,
		Total:         data.Total,
		CouponID:      data.CouponID,
		CouponCode:    data.CouponCode,
		Status:        entity.OrderStatus(data.Status),
		StatusHistory: history,
		DeliveryType:  data.DeliveryType,
		PaymentMethod: data.PaymentMethod,
		PaymentStatus: data.PaymentStatus,
		InternalNote:  data.InternalNote,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	history := data.StatusHistory
	if history == nil {
		history = []entity.StatusChange{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode status history")
	}

	items := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, &model.OrderItemModel{
			OrderID:   data.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Total:     item.Total,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		OrderNumber:     data.OrderNumber,
		CustomerName:    data.Customer.Name,
		CustomerPhone:   data.Customer.Phone,
		CustomerAddress: data.Customer.Address,
		CustomerEmail:   data.Customer.Email,
		CustomerNote:    data.Customer.Note,
		Subtotal:        data.Subtotal,
		ShippingCost:    data.ShippingCost,
		Discount:        data.Discount,
		Total:           data.Total,
		CouponID:        data.CouponID,
		CouponCode:      data.CouponCode,
		Status:          string(data.Status),
		StatusHistory:   historyJSON,
		DeliveryType:    data.DeliveryType,
		PaymentMethod:   data.PaymentMethod,
		PaymentStatus:   data.PaymentStatus,
		InternalNote:    data.InternalNote,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Items:           items,
	}, nil
}
