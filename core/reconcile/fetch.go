package reconcile

import (
	"context"
	"fmt"

	"hotel-indexer/core/ledger"

	"github.com/samber/lo"
)

// Objects is a batch of fetched ledger objects keyed by object id.
type Objects map[string]ledger.Object

// Get returns the object for id when the ledger resolved it.
func (o Objects) Get(id string) (ledger.Object, bool) {
	if id == "" {
		return ledger.Object{}, false
	}
	obj, ok := o[id]
	return obj, ok
}

// FetchObjects resolves the referenced ids in one ledger call. Empty and
// repeated ids are dropped; ids the ledger cannot resolve are absent from
// the result.
func FetchObjects(ctx context.Context, client ledger.Client, ids ...string) (Objects, error) {
	ids = lo.Uniq(lo.Compact(ids))
	if len(ids) == 0 {
		return Objects{}, nil
	}

	objs, err := client.GetObjects(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch objects %v: %w", ids, err)
	}
	return lo.KeyBy(objs, func(o ledger.Object) string { return o.ObjectID }), nil
}
