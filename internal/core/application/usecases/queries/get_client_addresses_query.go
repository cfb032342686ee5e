package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetClientAddressesQueryIsNotConstructed = errors.New(
	"GetClientAddressesQuery must be created via NewGetClientAddressesQuery constructor",
)

// GetClientAddressesQuery lists a client's saved delivery addresses.
type GetClientAddressesQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientAddressesQuery creates a query for one client's addresses.
func NewGetClientAddressesQuery(clientID kernel.UUID) (GetClientAddressesQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientAddressesQuery{}, err
	}
	return GetClientAddressesQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ClientID returns the owning client.
func (q GetClientAddressesQuery) ClientID() kernel.UUID {
	return q.clientID
}

// Validate ensures the query was created through the constructor.
func (q GetClientAddressesQuery) Validate() error {
	return q.guard.Validate(ErrGetClientAddressesQueryIsNotConstructed)
}

// GetClientAddressesQueryResponse is one saved address.
type GetClientAddressesQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
}
