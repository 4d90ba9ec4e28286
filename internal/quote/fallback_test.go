package quote

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	passage Passage
	err     error
	calls   int
}

func (s *stubProvider) Fetch(_ context.Context) (Passage, error) {
	s.calls++
	if s.err != nil {
		return Passage{}, s.err
	}
	return s.passage, nil
}

type stubCache struct {
	stored  []Passage
	passage Passage
	ok      bool
	err     error
}

func (s *stubCache) Put(_ context.Context, p Passage) error {
	s.stored = append(s.stored, p)
	return nil
}

func (s *stubCache) Random(_ context.Context) (Passage, bool, error) {
	return s.passage, s.ok, s.err
}

func TestFallbackPrimarySuccessFillsCache(t *testing.T) {
	primary := &stubProvider{passage: Passage{Content: "from api", Author: "A"}}
	cache := &stubCache{}
	builtin := &stubProvider{passage: Passage{Content: "from builtin", Author: UnknownAuthor}}

	p, err := NewFallback(primary, cache, builtin).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p.Content != "from api" {
		t.Fatalf("unexpected passage: %q", p.Content)
	}
	if len(cache.stored) != 1 || cache.stored[0].Content != "from api" {
		t.Fatalf("cache not filled: %+v", cache.stored)
	}
	if builtin.calls != 0 {
		t.Fatalf("builtin should not be consulted on primary success")
	}
}

func TestFallbackUsesCacheWhenPrimaryFails(t *testing.T) {
	primary := &stubProvider{err: &FetchError{Reason: "network error"}}
	cache := &stubCache{passage: Passage{Content: "cached", Author: "B"}, ok: true}
	builtin := &stubProvider{passage: Passage{Content: "from builtin", Author: UnknownAuthor}}

	p, err := NewFallback(primary, cache, builtin).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p.Content != "cached" {
		t.Fatalf("expected cached passage, got %q", p.Content)
	}
}

func TestFallbackUsesBuiltinWhenCacheEmpty(t *testing.T) {
	primary := &stubProvider{err: &FetchError{Reason: "network error"}}
	cache := &stubCache{ok: false}
	builtin := &stubProvider{passage: Passage{Content: "from builtin", Author: UnknownAuthor}}

	p, err := NewFallback(primary, cache, builtin).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p.Content != "from builtin" {
		t.Fatalf("expected builtin passage, got %q", p.Content)
	}
}

func TestFallbackUsesBuiltinWhenCacheErrors(t *testing.T) {
	primary := &stubProvider{err: &FetchError{Reason: "network error"}}
	cache := &stubCache{err: errors.New("disk gone")}
	builtin := &stubProvider{passage: Passage{Content: "from builtin", Author: UnknownAuthor}}

	p, err := NewFallback(primary, cache, builtin).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p.Content != "from builtin" {
		t.Fatalf("expected builtin passage, got %q", p.Content)
	}
}

func TestFallbackNilCache(t *testing.T) {
	primary := &stubProvider{err: &FetchError{Reason: "network error"}}
	builtin := &stubProvider{passage: Passage{Content: "from builtin", Author: UnknownAuthor}}

	p, err := NewFallback(primary, nil, builtin).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p.Content != "from builtin" {
		t.Fatalf("expected builtin passage, got %q", p.Content)
	}
}
