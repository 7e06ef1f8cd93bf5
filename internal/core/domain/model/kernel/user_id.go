package kernel

import (
	"fmt"
	"strconv"

	"orders/internal/pkg/errs"
)

// UserID identifies the customer an order belongs to. It is issued by the identity
// provider and only ever positive.
type UserID int64

func NewUserID(v int64) (UserID, error) {
	id := UserID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

func (u UserID) Validate() error {
	if u <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userID", fmt.Errorf("%d is not greater than 0", int64(u)))
	}
	return nil
}

func (u UserID) Int64() int64 {
	return int64(u)
}

func (u UserID) String() string {
	return strconv.FormatInt(int64(u), 10)
}
