// Package product holds the partial view of a marketplace product that order
// transitions need: its stock count and availability.
//
// Stock is never decremented here. Cancelling a pending order restocks the
// product through ports.ProductRepository.Restock, which performs an atomic
// increment in storage instead of a read-modify-write on this aggregate.
package product
