package feed

import "errors"

var (
	// ErrInvalidURL marks a source whose feed URL cannot be parsed.
	ErrInvalidURL = errors.New("invalid feed url")
	// ErrNetwork marks a transport failure or non-2xx feed response.
	ErrNetwork = errors.New("feed fetch failed")
)

// ParseError reports an XML-level failure the parser could not recover from.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "feed parsing failed: " + e.Reason
}
