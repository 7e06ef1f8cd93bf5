// Package order holds the Order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root owning line items and the delivery address
//   - Item: a product line with a positive quantity, unique per product
//   - Status: ONGOING -> COMPLETED, with no way back
//   - DomainEvent: facts recorded by the aggregate for the outbox
//
// Key business rules:
//   - A new order is ONGOING, without items, address or completion time
//   - Items and address change only while the order is ONGOING
//   - Adding a product that is already on the order overwrites its quantity
//   - Completion sets the completion time exactly once
//   - An order can be cancelled in any status
package order
