package feed

import (
	"strings"
	"time"
)

// dateLayouts are tried in order against feed timestamps: RFC 822-style
// pubDate with numeric zone, the two ISO 8601 Atom shapes, then a named-zone
// pubDate variant.
var dateLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.000Z07:00",
	"Mon, 02 Jan 2006 15:04:05 MST",
}

// ParseDate resolves a raw feed timestamp. An unparseable value falls back
// to the current time; a bad date never drops an article.
func ParseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return time.Now()
}
