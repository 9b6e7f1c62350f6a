package ledger

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrUnavailable wraps every transport, status and RPC-level failure.
// All of them are transient from the sync loop's point of view.
var ErrUnavailable = errors.New("ledger unavailable")

// Client is the ledger collaborator of the sync core.
type Client interface {
	// QueryEvents returns one page of events after the cursor.
	QueryEvents(ctx context.Context, req QueryEventsRequest) (*EventPage, error)
	// GetObjects returns the current state of the objects that exist.
	// Ids that are deleted, pruned or not yet visible are omitted.
	GetObjects(ctx context.Context, ids []string) ([]Object, error)
}

// EventID is the compound position of an event in the stream.
type EventID struct {
	TxDigest string `json:"txDigest"`
	EventSeq string `json:"eventSeq"`
}

// Key returns the dedup key "txDigest::eventSeq".
func (id EventID) Key() string {
	return id.TxDigest + "::" + id.EventSeq
}

// IsZero reports whether the id is unset.
func (id EventID) IsZero() bool {
	return id.TxDigest == "" && id.EventSeq == ""
}

// EventFilter selects the events emitted by one Move module.
type EventFilter struct {
	Package string
	Module  string
}

// QueryEventsRequest is one page request.
type QueryEventsRequest struct {
	Filter     EventFilter
	Cursor     *EventID
	Limit      int
	Descending bool
}

// Event is an emitted Move event.
type Event struct {
	ID                EventID         `json:"id"`
	PackageID         string          `json:"packageId"`
	TransactionModule string          `json:"transactionModule"`
	Sender            string          `json:"sender"`
	Type              string          `json:"type"`
	ParsedJSON        json.RawMessage `json:"parsedJson"`
	TimestampMs       string          `json:"timestampMs,omitempty"`
}

// EventPage is a page of events in delivered order.
type EventPage struct {
	Data        []Event  `json:"data"`
	NextCursor  *EventID `json:"nextCursor"`
	HasNextPage bool     `json:"hasNextPage"`
}

// Object is the current state of an on-chain object.
type Object struct {
	ObjectID string
	Version  string
	Type     string
	Fields   map[string]any
}

// Field returns a top-level field of the object's Move struct.
func (o Object) Field(name string) any {
	if o.Fields == nil {
		return nil
	}
	return o.Fields[name]
}
