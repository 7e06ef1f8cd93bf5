package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// NewGormOrderReader returns a repository for reads outside of a unit of work.
// Nothing it touches is tracked.
func NewGormOrderReader(db *gorm.DB) *GormOrderRepository {
	return NewGormOrderRepository(db, nopTracker{})
}

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

// Add saves a new order and its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order row guarded by its version, then reconciles the items:
// present products are upserted, missing ones are removed.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":               dto.Status,
			"completed_at":         dto.CompletedAt,
			"delivery_street":      dto.DeliveryAddress.Street,
			"delivery_city":        dto.DeliveryAddress.City,
			"delivery_postal_code": dto.DeliveryAddress.PostalCode,
			"delivery_country":     dto.DeliveryAddress.Country,
			"version":              gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.updateMissError(ctx, aggregate)
	}

	if err := r.syncItems(db, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the order together with its items.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	id := aggregate.ID().Bytes()

	if err := db.Where("order_id = ?", id).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items in insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.withItems(ctx), id)
}

// GetForUpdate loads the order with SELECT ... FOR UPDATE. Outside a transaction the lock
// is released as soon as the statement finishes.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.withItems(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByUser retrieves every order of the user, oldest first.
func (r *GormOrderRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withItems(ctx).
		Where("user_id = ?", userID.Int64()).
		Order("created_at ASC, id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// ListByUserSince retrieves the user's orders created at or after since, oldest first.
func (r *GormOrderRepository) ListByUserSince(
	ctx context.Context,
	userID kernel.UserID,
	since time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withItems(ctx).
		Where("user_id = ? AND created_at >= ?", userID.Int64(), since.UTC()).
		Order("created_at ASC, id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

func (r *GormOrderRepository) syncItems(db *gorm.DB, dto OrderDTO) error {
	if len(dto.Items) == 0 {
		return db.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(&dto.Items).Error; err != nil {
		return err
	}

	productIDs := make([]int64, 0, len(dto.Items))
	for _, item := range dto.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	return db.Where("order_id = ? AND product_id NOT IN ?", dto.ID, productIDs).
		Delete(&OrderItemDTO{}).Error
}

func (r *GormOrderRepository) updateMissError(ctx context.Context, aggregate *order.Order) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", uuid.UUID(aggregate.ID().Bytes())).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return errs.NewVersionIsInvalidError("order",
		fmt.Errorf("order %s was modified concurrently, expected version %d", aggregate.ID(), aggregate.Version()))
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
