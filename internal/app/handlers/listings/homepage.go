package listings

import (
	"context"
	"log/slog"

	"stayfront/internal/app/dto"
	"stayfront/internal/app/policies"
	"stayfront/internal/app/queries"
	domainlistings "stayfront/internal/domain/listings"
)

const getHomepageKey = "listings.homepage"

// GetHomepageQuery asks for the category carousels.
type GetHomepageQuery struct{}

func (GetHomepageQuery) Key() string { return getHomepageKey }

type GetHomepageHandler struct {
	Listings policies.ListingPort
	Logger   *slog.Logger
}

// Handle never fails the page: an unavailable catalog renders no carousels.
func (h *GetHomepageHandler) Handle(ctx context.Context, _ GetHomepageQuery) (dto.Homepage, error) {
	items, err := h.Listings.Catalog(ctx)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WarnContext(ctx, "homepage catalog unavailable", "error", err)
		}
		return dto.Homepage{Failed: true}, nil
	}
	return dto.Homepage{Groups: domainlistings.GroupByCategory(items, domainlistings.MaxCategories)}, nil
}

var _ queries.Handler[GetHomepageQuery, dto.Homepage] = (*GetHomepageHandler)(nil)
