package policies

import (
	"context"
	"net/url"

	domainlistings "stayfront/internal/domain/listings"
)

// ListingPort is the remote listing API.
type ListingPort interface {
	Catalog(ctx context.Context) ([]domainlistings.Listing, error)
	Room(ctx context.Context, id domainlistings.ListingID) (domainlistings.Detail, error)
	Search(ctx context.Context, params url.Values) ([]domainlistings.Listing, error)
}
