package mocks

import (
	"context"

	"hotel-indexer/core/ledger"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of ledger.Client
type Client struct {
	mock.Mock
}

func (m *Client) QueryEvents(ctx context.Context, req ledger.QueryEventsRequest) (*ledger.EventPage, error) {
	args := m.Called(ctx, req)
	if page, ok := args.Get(0).(*ledger.EventPage); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetObjects(ctx context.Context, ids []string) ([]ledger.Object, error) {
	args := m.Called(ctx, ids)
	if fn, ok := args.Get(0).(func(context.Context, []string) []ledger.Object); ok {
		return fn(ctx, ids), args.Error(1)
	}
	if objs, ok := args.Get(0).([]ledger.Object); ok {
		return objs, args.Error(1)
	}
	return nil, args.Error(1)
}
