package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery lists the orders of a customer. With a non-nil since only orders
// created at or after that instant are returned.
type GetOrderHistoryQuery struct {
	userID kernel.UserID
	since  *time.Time

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(userID kernel.UserID, since *time.Time) (GetOrderHistoryQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	query := GetOrderHistoryQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}
	if since != nil {
		t := since.UTC()
		query.since = &t
	}

	return query, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) UserID() kernel.UserID {
	return q.userID
}

// Since returns the lower bound and whether one was given.
func (q GetOrderHistoryQuery) Since() (time.Time, bool) {
	if q.since == nil {
		return time.Time{}, false
	}
	return *q.since, true
}
