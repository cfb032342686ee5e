// Package order implements the Order aggregate for the marketplace domain.
//
// An Order is the persisted result of checking out one commerce's partition
// of a session cart. The package contains:
//   - Order: the aggregate root with snapshot totals and lifecycle behavior
//   - Status: the Pending -> InProgress -> Completed state machine
//   - LineItem: a product/quantity position within an order
//
// State transitions go through Assign (courier claim) and Complete
// (delivery); invalid transitions surface as conflicts so that route
// handlers can report them to the actor without mutating state.
package order
