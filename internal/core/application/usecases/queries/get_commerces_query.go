package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetCommercesQueryIsNotConstructed = errors.New(
	"GetCommercesQuery must be created via NewGetCommercesQuery constructor",
)

// GetCommercesQuery lists the commerces of one catalog type for a client,
// marking which ones they have favorited.
type GetCommercesQuery struct {
	typeName string
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCommercesQuery creates a query for one catalog type.
func NewGetCommercesQuery(typeName string, clientID kernel.UUID) (GetCommercesQuery, error) {
	if typeName == "" {
		return GetCommercesQuery{}, errs.NewValueIsRequiredError("typeName")
	}
	if err := clientID.Validate(); err != nil {
		return GetCommercesQuery{}, err
	}
	return GetCommercesQuery{
		typeName: typeName,
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// TypeName returns the catalog type being browsed.
func (q GetCommercesQuery) TypeName() string {
	return q.typeName
}

// ClientID returns the browsing client, used for the favorite flag.
func (q GetCommercesQuery) ClientID() kernel.UUID {
	return q.clientID
}

// Validate ensures the query was created through the constructor.
func (q GetCommercesQuery) Validate() error {
	return q.guard.Validate(ErrGetCommercesQueryIsNotConstructed)
}

// GetCommercesQueryResponse is one commerce in the catalog listing.
type GetCommercesQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Logo      string
	OpenTime  string
	CloseTime string
	Favorite  bool
}
