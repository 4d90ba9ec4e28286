// Package quote supplies typing passages from remote and local sources.
package quote

import "context"

// UnknownAuthor is substituted when a source omits attribution.
const UnknownAuthor = "Unknown"

// Passage is a text to type plus its attribution.
type Passage struct {
	Content string
	Author  string
}

// FetchError reports that a provider could not supply a passage.
type FetchError struct {
	Reason string
}

func (e *FetchError) Error() string {
	return e.Reason
}

// Provider fetches one passage. Implementations own their retry and
// fallback policy; callers treat every failure the same way.
type Provider interface {
	Fetch(ctx context.Context) (Passage, error)
}
