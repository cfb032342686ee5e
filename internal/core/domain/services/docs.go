// Package services contains domain services coordinating several aggregates.
//
// The order assembler lives here because turning a mixed-commerce cart into
// per-commerce orders is pure domain logic with no single owning aggregate:
// it reads the cart, the marketplace settings and produces orders, leaving
// persistence and cart clearing to the application layer.
package services
