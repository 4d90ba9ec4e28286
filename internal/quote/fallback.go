package quote

import "context"

// Cache stores fetched passages for offline reuse. *store.Store satisfies it.
type Cache interface {
	Put(ctx context.Context, p Passage) error
	Random(ctx context.Context) (Passage, bool, error)
}

// Fallback tries the primary provider first, keeps its results in the
// cache, and degrades to cached then built-in passages when the primary
// is unavailable. Cache errors are swallowed.
type Fallback struct {
	primary Provider
	cache   Cache
	builtin Provider
}

// NewFallback builds the chain. cache may be nil to skip the cached tier.
func NewFallback(primary Provider, cache Cache, builtin Provider) *Fallback {
	return &Fallback{primary: primary, cache: cache, builtin: builtin}
}

// Fetch implements Provider.
func (f *Fallback) Fetch(ctx context.Context) (Passage, error) {
	p, err := f.primary.Fetch(ctx)
	if err == nil {
		if f.cache != nil {
			if cerr := f.cache.Put(ctx, p); cerr != nil {
				// Best-effort cache write.
				_ = cerr
			}
		}
		return p, nil
	}

	if f.cache != nil {
		cached, ok, cerr := f.cache.Random(ctx)
		if cerr == nil && ok {
			return cached, nil
		}
	}
	return f.builtin.Fetch(ctx)
}
