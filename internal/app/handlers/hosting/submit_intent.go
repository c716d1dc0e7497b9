package hosting

import (
	"context"
	"time"

	"stayfront/internal/app/commands"
	"stayfront/internal/app/outbox"
	"stayfront/internal/app/visitor"
	domainhosting "stayfront/internal/domain/hosting"
)

const submitIntentKey = "hosting.submit_intent"

type SubmitIntentCommand struct {
	VisitorID string
}

func (SubmitIntentCommand) Key() string { return submitIntentKey }

type SubmitIntentHandler struct {
	Visitors visitor.Registry
	Outbox   outbox.Outbox
	Encoder  outbox.EventEncoder
	Now      func() time.Time
}

// Handle records the chosen kind and closes the dialog. It fails with
// hosting.ErrNoKindChosen while Next is disabled.
func (h *SubmitIntentHandler) Handle(ctx context.Context, cmd SubmitIntentCommand) (domainhosting.IntentSubmitted, error) {
	v, err := h.Visitors.Get(ctx, cmd.VisitorID)
	if err != nil {
		return domainhosting.IntentSubmitted{}, err
	}
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	var ev domainhosting.IntentSubmitted
	evs, err := v.Apply(func(s visitor.State) error {
		var err error
		ev, err = s.Hosting.Submit(v.ID, now().UTC())
		if err != nil {
			return err
		}
		s.Events.Record(ev)
		s.Overlays.Close()
		return nil
	})
	if err != nil {
		return domainhosting.IntentSubmitted{}, err
	}
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, evs); err != nil {
		return domainhosting.IntentSubmitted{}, err
	}
	return ev, nil
}

var _ commands.Handler[SubmitIntentCommand, domainhosting.IntentSubmitted] = (*SubmitIntentHandler)(nil)
