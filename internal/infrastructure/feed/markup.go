package feed

import (
	"regexp"
	"strconv"
	"strings"
)

var tagExpr = regexp.MustCompile(`<[^>]+>`)

var numericEntityExpr = regexp.MustCompile(`&#(\d+);`)

// namedEntities is the fixed decode table, applied in order. Feeds routinely
// double-encode HTML inside description/content, so &amp; goes first: the
// entities it uncovers are picked up by the replacements after it.
var namedEntities = []struct{ entity, text string }{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&nbsp;", " "},
	{"&apos;", "'"},
	{"&lsquo;", "‘"},
	{"&rsquo;", "’"},
	{"&ldquo;", "“"},
	{"&rdquo;", "”"},
	{"&ndash;", "–"},
	{"&mdash;", "—"},
	{"&hellip;", "…"},
}

// CleanMarkup strips tag markup and decodes entities from feed text.
// Malformed input never fails; anything the patterns do not match is
// passed through untouched.
func CleanMarkup(raw string) string {
	clean := tagExpr.ReplaceAllString(raw, "")

	for _, e := range namedEntities {
		clean = strings.ReplaceAll(clean, e.entity, e.text)
	}

	clean = numericEntityExpr.ReplaceAllStringFunc(clean, func(match string) string {
		digits := numericEntityExpr.FindStringSubmatch(match)[1]
		code, err := strconv.Atoi(digits)
		if err != nil || code > 0x10FFFF {
			return match
		}
		return string(rune(code))
	})

	return strings.TrimSpace(clean)
}
