package search

import (
	"context"
	"time"

	"stayfront/internal/app/commands"
	"stayfront/internal/app/outbox"
	"stayfront/internal/app/visitor"
	domainsearch "stayfront/internal/domain/search"
)

const submitSearchKey = "search.submit"

// ResultsPath is where a valid search navigates to.
const ResultsPath = "/search"

type SubmitSearchCommand struct {
	VisitorID string
}

func (SubmitSearchCommand) Key() string { return submitSearchKey }

type SubmitResult struct {
	Location string             `json:"location"`
	Query    domainsearch.Query `json:"query"`
}

type SubmitSearchHandler struct {
	Visitors visitor.Registry
	Outbox   outbox.Outbox
	Encoder  outbox.EventEncoder
	Now      func() time.Time
}

// Handle builds the request from the visitor's search bar. A blank
// destination returns search.ErrMissingDestination and records nothing.
func (h *SubmitSearchHandler) Handle(ctx context.Context, cmd SubmitSearchCommand) (SubmitResult, error) {
	v, err := h.Visitors.Get(ctx, cmd.VisitorID)
	if err != nil {
		return SubmitResult{}, err
	}
	var req domainsearch.Request
	evs, err := v.Apply(func(s visitor.State) error {
		var err error
		req, err = s.SearchBar.Submit()
		if err != nil {
			return err
		}
		s.Events.Record(req.Submitted(v.ID, h.now()))
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, evs); err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{Location: ResultsPath + "?" + req.Encode(), Query: req.Query()}, nil
}

func (h *SubmitSearchHandler) now() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}

var _ commands.Handler[SubmitSearchCommand, SubmitResult] = (*SubmitSearchHandler)(nil)
