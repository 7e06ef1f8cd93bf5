// Package kernel holds the value objects shared by the order model.
//
// The package includes:
//   - UUID: identifier of aggregates, wrapping github.com/google/uuid
//   - UserID: identifier of the customer owning an order
//   - DeliveryAddress: where an order is shipped to
//
// Value objects are immutable and safe for concurrent use.
package kernel
