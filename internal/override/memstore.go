package override

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/runway/internal/cache"
)

type memKey struct {
	ItemID uuid.UUID
	Month  MonthYear
}

// MemStore is the documented fallback Repository used when the backing
// override table is unavailable. It keeps overrides per user in a TTL cache
// and exposes the exact semantics of the SQL store, so the engine never
// notices the degradation. Entries age out with the cache's TTL.
type MemStore struct {
	users *cache.Cache[map[memKey]Override]
	now   func() time.Time
}

func NewMemStore(users *cache.Cache[map[memKey]Override]) *MemStore {
	return &MemStore{users: users, now: time.Now}
}

// NewMemStoreWithOptions builds a MemStore over a fresh cache.
func NewMemStoreWithOptions(opts cache.Options) *MemStore {
	return NewMemStore(cache.New[map[memKey]Override](opts))
}

func (m *MemStore) Upsert(_ context.Context, ov Override) error {
	ovs, ok := m.users.Get(ov.UserID.String())
	if !ok {
		ovs = make(map[memKey]Override)
	}

	ov.UpdatedAt = m.now()

	next := make(map[memKey]Override, len(ovs)+1)
	for k, v := range ovs {
		next[k] = v
	}

	next[memKey{ItemID: ov.ItemID, Month: ov.Month}] = ov

	m.users.Set(ov.UserID.String(), next)

	return nil
}

func (m *MemStore) Delete(_ context.Context, userID, itemID uuid.UUID, month MonthYear) error {
	ovs, ok := m.users.Get(userID.String())
	if !ok {
		return nil
	}

	next := make(map[memKey]Override, len(ovs))
	for k, v := range ovs {
		if k.ItemID == itemID && k.Month == month {
			continue
		}

		next[k] = v
	}

	m.users.Set(userID.String(), next)

	return nil
}

func (m *MemStore) ForMonth(ctx context.Context, userID uuid.UUID, month MonthYear) ([]Override, error) {
	return m.ForRange(ctx, userID, month, month)
}

func (m *MemStore) ForRange(_ context.Context, userID uuid.UUID, from, to MonthYear) ([]Override, error) {
	ovs, ok := m.users.Get(userID.String())
	if !ok {
		return nil, nil
	}

	var out []Override

	for k, v := range ovs {
		if k.Month.Before(from) || to.Before(k.Month) {
			continue
		}

		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month.Before(out[j].Month)
		}

		return out[i].ItemID.String() < out[j].ItemID.String()
	})

	return out, nil
}
