// Package services contains domain services that coordinate several
// aggregates. TransitionAuthority decides whether an actor may move an order
// into a requested status and derives the provenance entry the ledger records
// for the transition.
package services
