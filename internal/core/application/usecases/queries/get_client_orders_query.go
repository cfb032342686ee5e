// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly with raw SQL and return
// flat response structs shaped for the transport layer, bypassing the
// aggregates and their invariant machinery.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetClientOrdersQueryIsNotConstructed = errors.New(
	"GetClientOrdersQuery must be created via NewGetClientOrdersQuery constructor",
)

// GetClientOrdersQuery retrieves a client's order history, newest first.
type GetClientOrdersQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientOrdersQuery creates a query for one client's orders.
func NewGetClientOrdersQuery(clientID kernel.UUID) (GetClientOrdersQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientOrdersQuery{}, err
	}
	return GetClientOrdersQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ClientID returns the client whose orders are listed.
func (q GetClientOrdersQuery) ClientID() kernel.UUID {
	return q.clientID
}

// Validate ensures the query was created through the constructor.
func (q GetClientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClientOrdersQueryIsNotConstructed)
}

// GetClientOrdersQueryResponse is one order in the client's history.
// Monetary amounts are integer cents.
type GetClientOrdersQueryResponse struct {
	ID           kernel.UUID
	CommerceName string
	Status       string
	Subtotal     int64
	TaxAmount    int64
	Total        int64
	CreatedAt    time.Time
}
