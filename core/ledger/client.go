package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	methodQueryEvents     = "suix_queryEvents"
	methodMultiGetObjects = "sui_multiGetObjects"

	// maxObjectsPerCall is the fullnode limit for sui_multiGetObjects.
	maxObjectsPerCall = 50
)

// SuiClient speaks Sui JSON-RPC 2.0 over HTTP.
type SuiClient struct {
	url     string
	timeout time.Duration
	nextID  atomic.Uint64
}

// NewSuiClient creates a client for the configured fullnode.
func NewSuiClient(cfg Config) (*SuiClient, error) {
	url, err := cfg.URL()
	if err != nil {
		return nil, err
	}
	return &SuiClient{url: url, timeout: cfg.Timeout()}, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// QueryEvents calls suix_queryEvents with a MoveEventModule filter.
func (c *SuiClient) QueryEvents(ctx context.Context, req QueryEventsRequest) (*EventPage, error) {
	query := map[string]any{
		"MoveEventModule": map[string]string{
			"package": req.Filter.Package,
			"module":  req.Filter.Module,
		},
	}

	var cursor any
	if req.Cursor != nil {
		cursor = req.Cursor
	}

	var limit any
	if req.Limit > 0 {
		limit = req.Limit
	}

	var page EventPage
	if err := c.call(ctx, methodQueryEvents, []any{query, cursor, limit, req.Descending}, &page); err != nil {
		return nil, err
	}
	if page.Data == nil {
		page.Data = []Event{}
	}
	return &page, nil
}

type objectResponse struct {
	Data *struct {
		ObjectID string `json:"objectId"`
		Version  string `json:"version"`
		Type     string `json:"type"`
		Content  *struct {
			DataType string         `json:"dataType"`
			Type     string         `json:"type"`
			Fields   map[string]any `json:"fields"`
		} `json:"content"`
	} `json:"data"`
	Error json.RawMessage `json:"error"`
}

// GetObjects calls sui_multiGetObjects with showContent, dropping ids that
// come back with an error entry or without Move content.
func (c *SuiClient) GetObjects(ctx context.Context, ids []string) ([]Object, error) {
	objects := make([]Object, 0, len(ids))
	for start := 0; start < len(ids); start += maxObjectsPerCall {
		end := min(start+maxObjectsPerCall, len(ids))

		var resp []objectResponse
		params := []any{ids[start:end], map[string]bool{"showContent": true, "showType": true}}
		if err := c.call(ctx, methodMultiGetObjects, params, &resp); err != nil {
			return nil, err
		}

		for _, r := range resp {
			if r.Data == nil || r.Data.Content == nil || r.Data.Content.Fields == nil {
				continue
			}
			typ := r.Data.Type
			if typ == "" {
				typ = r.Data.Content.Type
			}
			objects = append(objects, Object{
				ObjectID: r.Data.ObjectID,
				Version:  r.Data.Version,
				Type:     typ,
				Fields:   r.Data.Content.Fields,
			})
		}
	}
	return objects, nil
}

func (c *SuiClient) call(ctx context.Context, method string, params []any, out any) error {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, method, err)
	}
	if timeout <= 0 {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, method, context.DeadlineExceeded)
	}

	agent := fiber.Post(c.url)
	agent.JSON(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	agent.Timeout(timeout)
	if err := agent.Parse(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, method, err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, method, errs[0])
	}
	if code != fiber.StatusOK {
		return fmt.Errorf("%w: %s: http status %d", ErrUnavailable, method, code)
	}

	var resp rpcResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("%w: %s: decode response: %w", ErrUnavailable, method, err)
	}
	if resp.Error != nil {
		return fmt.Errorf("%w: %s: rpc error %d: %s", ErrUnavailable, method, resp.Error.Code, resp.Error.Message)
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("%w: %s: decode result: %w", ErrUnavailable, method, err)
	}
	return nil
}
