// Package orderrepo persists order aggregates with GORM.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table. Items live in order_items and are loaded with Preload.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          int64     `gorm:"not null;index:idx_orders_user_created,priority:1"`
	Status          string    `gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time `gorm:"not null;index:idx_orders_user_created,priority:2"`
	CompletedAt     *time.Time
	DeliveryAddress DeliveryAddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Version         int                `gorm:"not null;default:1"`
	Items           []OrderItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryAddressDTO is embedded into the orders table. All columns NULL means no address.
type DeliveryAddressDTO struct {
	Street     *string
	City       *string
	PostalCode *string
	Country    *string
}

// OrderItemDTO keeps one row per (order, product). The serial id preserves insertion order
// across quantity upserts.
type OrderItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_product,priority:1"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_order_items_order_product,priority:2"`
	Quantity  int       `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}

	var address DeliveryAddressDTO
	if a := aggregate.DeliveryAddress(); a != nil {
		address = DeliveryAddressDTO{
			Street:     ptr(a.Street()),
			City:       ptr(a.City()),
			PostalCode: ptr(a.PostalCode()),
			Country:    ptr(a.Country()),
		}
	}

	return OrderDTO{
		ID:              orderID,
		UserID:          aggregate.UserID().Int64(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		CompletedAt:     aggregate.CompletedAt(),
		DeliveryAddress: address,
		Version:         aggregate.Version(),
		Items:           items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ProductID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		kernel.UserID(dto.UserID),
		status,
		dto.CreatedAt,
		dto.CompletedAt,
		dto.DeliveryAddress.toDomain(),
		items,
		dto.Version,
	)
}

func (a DeliveryAddressDTO) toDomain() *kernel.DeliveryAddress {
	if a.Street == nil && a.City == nil && a.PostalCode == nil && a.Country == nil {
		return nil
	}

	address := kernel.NewDeliveryAddress(deref(a.Street), deref(a.City), deref(a.PostalCode), deref(a.Country))
	return &address
}

func ptr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
