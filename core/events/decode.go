package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-indexer/core/ledger"
	"hotel-indexer/core/utils"
)

// ErrMalformed is returned for a known event whose payload lacks a required
// identifier. Retrying cannot fix it.
var ErrMalformed = errors.New("malformed event payload")

// Decode classifies a ledger event by its exact fully-qualified type
// "<packageID>::<module>::<Name>". Anything else decodes to Unknown.
func Decode(packageID, module string, ev ledger.Event) (Event, error) {
	meta := Meta{
		ID:     ev.ID,
		Type:   ev.Type,
		Sender: ev.Sender,
	}
	if ms := utils.ToInt64(ev.TimestampMs); ms > 0 {
		meta.Timestamp = time.UnixMilli(ms).UTC()
	}

	prefix := packageID + "::" + module + "::"
	if packageID == "" || !strings.HasPrefix(ev.Type, prefix) {
		return Unknown{Meta: meta}, nil
	}
	name := Kind(strings.TrimPrefix(ev.Type, prefix))

	switch name {
	case KindHotelCreated, KindRoomListed, KindRoomBooked, KindReservationCancelled,
		KindReservationRescheduled, KindReviewPosted:
	default:
		return Unknown{Meta: meta}, nil
	}

	p, err := parsePayload(ev.ParsedJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrMalformed, name, ev.ID.Key(), err)
	}

	var out Event
	switch name {
	case KindHotelCreated:
		out = HotelCreated{
			Meta:    meta,
			HotelID: p.str("hotel_id"),
			Owner:   p.str("owner"),
			Name:    p.str("name"),
		}
		err = p.require("hotel_id")
	case KindRoomListed:
		out = RoomListed{
			Meta:        meta,
			RoomID:      p.str("room_id"),
			HotelID:     p.str("hotel_id"),
			PricePerDay: utils.ToInt64(p.get("price_per_day")),
		}
		err = p.require("room_id")
	case KindRoomBooked:
		out = RoomBooked{
			Meta:          meta,
			ReservationID: p.str("reservation_id"),
			RoomID:        p.str("room_id"),
			HotelID:       p.str("hotel_id"),
			Guest:         p.str("guest"),
		}
		err = p.require("reservation_id")
	case KindReservationCancelled:
		out = ReservationCancelled{
			Meta:          meta,
			ReservationID: p.str("reservation_id"),
			RoomID:        p.str("room_id"),
			HotelID:       p.str("hotel_id"),
			Guest:         p.str("guest"),
		}
		err = p.require("reservation_id")
	case KindReservationRescheduled:
		out = ReservationRescheduled{
			Meta:          meta,
			ReservationID: p.str("reservation_id"),
			RoomID:        p.str("room_id"),
			HotelID:       p.str("hotel_id"),
		}
		err = p.require("reservation_id")
	case KindReviewPosted:
		out = ReviewPosted{
			Meta:          meta,
			ReviewID:      p.str("review_id"),
			HotelID:       p.str("hotel_id"),
			ReservationID: p.str("reservation_id"),
			Guest:         p.str("guest"),
			Rating:        utils.ToInt(p.get("rating")),
		}
		err = p.require("review_id")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrMalformed, name, ev.ID.Key(), err)
	}
	return out, nil
}

type payload map[string]any

func parsePayload(raw json.RawMessage) (payload, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("empty payload")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var p payload
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("payload is not an object")
	}
	return p, nil
}

func (p payload) get(key string) any {
	return utils.Unwrap(p[key])
}

func (p payload) str(key string) string {
	return utils.ToString(p.get(key))
}

func (p payload) require(keys ...string) error {
	for _, k := range keys {
		if p.str(k) == "" {
			return fmt.Errorf("missing %s", k)
		}
	}
	return nil
}
