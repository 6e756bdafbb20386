// Package traceability provides the provenance records of the marketplace
// ledger.
//
// The package includes:
//   - Record: an immutable provenance event for a product, optionally tied to an order
//   - Stage: the supply-chain phase (farm, processing, distribution, retail)
//   - VerificationStatus: review state of a record (pending, verified, rejected)
//   - Location: free-text place where the event happened
//
// Records are append-only. They are created once, with a server assigned
// identifier and timestamps, and are never updated or deleted. A product's
// journey is its records ordered by timestamp, most recent first.
package traceability
