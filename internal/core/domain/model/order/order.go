package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering context. It owns its items and delivery
// address, and moves from ONGOING to COMPLETED exactly once.
type Order struct {
	id     kernel.UUID
	userID kernel.UserID
	status Status

	// createdAt doubles as the order date used by history queries.
	createdAt   time.Time
	completedAt *time.Time

	deliveryAddress *kernel.DeliveryAddress

	// items keep insertion order.
	items []*Item

	// version is the persisted revision this instance was loaded at.
	version int

	events []DomainEvent

	isConstructed bool
}

// NewOrder creates an ONGOING order with no items and no address.
//
//	o, err := order.NewOrder(kernel.NewUUID(), userID, time.Now())
func NewOrder(id kernel.UUID, userID kernel.UserID, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Ongoing,
		createdAt:     createdAt.UTC(),
		items:         make([]*Item, 0),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
	); err != nil {
		return nil, err
	}

	o.raise(EventCreated, o.createdAt, map[string]any{
		"status": o.status.String(),
	})

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state without recording events.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UserID,
	status Status,
	createdAt time.Time,
	completedAt *time.Time,
	address *kernel.DeliveryAddress,
	items []*Item,
	version int,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setStatus(status, completedAt),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if address != nil {
		cp := *address
		o.deliveryAddress = &cp
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UserID {
	return o.userID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt is nil until the order is completed.
func (o *Order) CompletedAt() *time.Time {
	if o.completedAt == nil {
		return nil
	}
	t := *o.completedAt
	return &t
}

// DeliveryAddress returns a copy of the address, or nil if none was set.
func (o *Order) DeliveryAddress() *kernel.DeliveryAddress {
	if o.deliveryAddress == nil {
		return nil
	}
	a := *o.deliveryAddress
	return &a
}

// Items returns the items in insertion order.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Version() int {
	return o.version
}

// SetDeliveryAddress replaces the address as a whole.
func (o *Order) SetDeliveryAddress(address kernel.DeliveryAddress) error {
	if err := o.status.ValidateModify(); err != nil {
		return err
	}

	o.deliveryAddress = &address
	o.raise(EventAddressChanged, time.Now().UTC(), map[string]any{
		"street":     address.Street(),
		"city":       address.City(),
		"postalCode": address.PostalCode(),
		"country":    address.Country(),
	})
	return nil
}

// AddOrUpdateItem overwrites the quantity of an existing product line, or appends a new one.
func (o *Order) AddOrUpdateItem(productID int64, quantity int) error {
	item, err := NewItem(productID, quantity)
	if err != nil {
		return err
	}

	if err = o.status.ValidateModify(); err != nil {
		return err
	}

	replaced := false
	for i, existing := range o.items {
		if existing.ProductID() == productID {
			o.items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		o.items = append(o.items, item)
	}

	o.raise(EventItemUpserted, time.Now().UTC(), map[string]any{
		"productId": productID,
		"quantity":  quantity,
	})
	return nil
}

// Complete moves the order to COMPLETED and stamps the completion time.
func (o *Order) Complete(at time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	completedAt := at.UTC()
	o.status = newStatus
	o.completedAt = &completedAt
	o.raise(EventCompleted, completedAt, map[string]any{
		"completedAt": completedAt.Format(time.RFC3339Nano),
	})
	return nil
}

// Cancel records the cancellation. Removing the order is up to the repository.
func (o *Order) Cancel() {
	o.raise(EventCancelled, time.Now().UTC(), map[string]any{
		"status": o.status.String(),
	})
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(o.events))
	copy(events, o.events)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(eventType EventType, at time.Time, payload map[string]any) {
	o.events = append(o.events, DomainEvent{
		ID:         kernel.NewUUID(),
		Type:       eventType,
		OrderID:    o.id,
		UserID:     o.userID,
		OccurredAt: at,
		Payload:    payload,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setStatus(status Status, completedAt *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if status == Completed && completedAt == nil {
		return errs.NewValueIsRequiredErrorWithCause("completedAt",
			fmt.Errorf("%s order must have a completion time", status))
	}
	if status == Ongoing && completedAt != nil {
		return errs.NewValueIsInvalidErrorWithCause("completedAt is invalid",
			fmt.Errorf("%s order cannot have a completion time", status))
	}

	o.status = status
	if completedAt != nil {
		t := completedAt.UTC()
		o.completedAt = &t
	}
	return nil
}

func (o *Order) setItems(items []*Item) error {
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.ProductID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items are invalid",
				fmt.Errorf("product %d appears more than once", item.ProductID()))
		}
		seen[item.ProductID()] = struct{}{}
	}

	o.items = append(make([]*Item, 0, len(items)), items...)
	return nil
}
