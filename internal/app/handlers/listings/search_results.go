package listings

import (
	"context"
	"log/slog"

	"stayfront/internal/app/dto"
	"stayfront/internal/app/policies"
	"stayfront/internal/app/queries"
	"stayfront/internal/app/results"
	"stayfront/internal/domain/dates"
	"stayfront/internal/domain/search"
)

const searchResultsKey = "listings.search_results"

// Translation keys of the results messages.
const (
	MessageNoCriteria = "searchResults.noCriteria"
	MessageFailed     = "searchResults.failed"
)

// SearchResultsQuery is one render of the results page. Tracker is the
// visitor's results tracker; nil disables superseding.
type SearchResultsQuery struct {
	Search  search.Query
	Tracker *results.Tracker
}

func (SearchResultsQuery) Key() string { return searchResultsKey }

type SearchResultsHandler struct {
	Listings policies.ListingPort
	Logger   *slog.Logger
}

// Handle returns results.ErrSuperseded when a newer search of the same
// visitor started while this one was in flight.
func (h *SearchResultsHandler) Handle(ctx context.Context, q SearchResultsQuery) (dto.Results, error) {
	view := dto.Results{
		Where:       q.Search.Where,
		DatesLabel:  dates.RangeLabel(q.Search.Dates()),
		GuestsLabel: q.Search.Counts().Breakdown(),
	}
	if !q.Search.HasDestination() {
		view.State = dto.ResultsMissing
		view.MessageKey = MessageNoCriteria
		return view, nil
	}

	tracker := q.Tracker
	if tracker == nil {
		tracker = results.NewTracker()
	}
	fetchCtx, ticket := tracker.Begin(ctx)
	items, err := h.Listings.Search(fetchCtx, q.Search.Values())
	if ferr := tracker.Finish(ticket); ferr != nil {
		return dto.Results{}, ferr
	}
	if err != nil {
		if h.Logger != nil {
			h.Logger.WarnContext(ctx, "search failed", "where", q.Search.Where, "error", err)
		}
		view.State = dto.ResultsError
		view.MessageKey = MessageFailed
		return view, nil
	}
	if len(items) == 0 {
		view.State = dto.ResultsEmpty
		return view, nil
	}
	view.State = dto.ResultsLoaded
	view.Listings = items
	return view, nil
}

var _ queries.Handler[SearchResultsQuery, dto.Results] = (*SearchResultsHandler)(nil)
