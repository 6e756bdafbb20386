// Package order provides the Order aggregate of the marketplace: a single
// purchase of one product between a seller and a buyer.
//
// The package includes:
//   - Order: the aggregate root holding parties, quantity, status and delivery data
//   - Status: the lifecycle state (pending, confirmed, shipped, delivered, cancelled)
//
// Key business rules:
//   - Orders reference a product, a seller and a buyer by identifier and have a positive quantity
//   - Orders are created in the pending status outside this service
//   - ChangeStatus stamps updatedAt and, for delivered, the actual delivery date
//   - Who may request which status is decided by services.TransitionAuthority,
//     not by the aggregate
package order
