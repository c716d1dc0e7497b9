package listings

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"stayfront/internal/app/dto"
	"stayfront/internal/app/policies"
	"stayfront/internal/app/queries"
	"stayfront/internal/domain/guests"
	domainlistings "stayfront/internal/domain/listings"
	"stayfront/internal/domain/search"
	"stayfront/internal/domain/shared/daterange"
)

const getRoomKey = "listings.room"

var ErrRoomIDRequired = errors.New("listings: room id is required")

// MessageRoomNotFound is the translation key shown when the room cannot be
// loaded. The cause is logged, never rendered.
const MessageRoomNotFound = "room.notFound"

// GetRoomQuery asks for one room. Search carries the stay the visitor
// arrived with, if any.
type GetRoomQuery struct {
	ID     string
	Search search.Query
}

func (GetRoomQuery) Key() string { return getRoomKey }

type GetRoomHandler struct {
	Listings policies.ListingPort
	Logger   *slog.Logger
}

// Handle maps API failures to the error view; only a blank id is an error.
func (h *GetRoomHandler) Handle(ctx context.Context, q GetRoomQuery) (dto.Room, error) {
	id := strings.TrimSpace(q.ID)
	if id == "" {
		return dto.Room{}, ErrRoomIDRequired
	}
	detail, err := h.Listings.Room(ctx, domainlistings.ListingID(id))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WarnContext(ctx, "room unavailable", "room_id", id, "error", err)
		}
		return dto.Room{Failed: true, MessageKey: MessageRoomNotFound}, nil
	}
	room := detail.Room()
	return dto.Room{Room: room, Booking: booking(room, q.Search)}, nil
}

// booking starts the widget at one adult unless the visitor searched with
// guests already.
func booking(room domainlistings.Room, q search.Query) dto.Booking {
	store := guests.NewStore(guests.Counts{})
	if counts := q.Counts(); counts.Total() > 0 {
		store = guests.NewStore(counts)
	} else {
		store.ResetWithAdult()
	}
	stay := q.Dates()
	if stay.Validate() != nil {
		stay = daterange.DateRange{CheckIn: stay.CheckIn}
	}
	nights := stay.Nights()
	total := room.PriceDetails.Total()
	if room.PriceDetails.BasePrice == 0 {
		total = room.Price * float64(nights)
	}
	return dto.Booking{
		CheckIn:     stay.CheckIn.String(),
		CheckOut:    stay.CheckOut.String(),
		Nights:      nights,
		Guests:      store.Counts(),
		GuestsLabel: store.Counts().Summary(),
		Total:       total,
	}
}

var _ queries.Handler[GetRoomQuery, dto.Room] = (*GetRoomHandler)(nil)
