// Package kernel provides core domain primitives shared by the marketplace
// aggregates.
//
// The package includes:
//   - UUID: a value object for identifiers of orders, products, actors and records
//   - Address: a postal address value object used for shipping destinations
//   - Actor: the authenticated identity that performs an operation
//
// These primitives are immutable and validate themselves, so aggregates can
// rely on them without repeating checks.
package kernel
