package feed

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var imageSrcExprs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)src="([^"]+\.(?:jpg|jpeg|png|gif|webp)[^"]*)"`),
	regexp.MustCompile(`(?i)src='([^']+\.(?:jpg|jpeg|png|gif|webp)[^']*)'`),
}

var imageExtExpr = regexp.MustCompile(`(?i)\.(?:jpg|jpeg|png|gif|webp)`)

// extractImage pulls the first usable image URL out of raw item HTML,
// checking content before description. A structured goquery pass runs
// first; the regex pass catches fragments too mangled for the HTML parser
// to surface.
func extractImage(content, description string) string {
	text := content
	if text == "" {
		text = description
	}
	if text == "" {
		return ""
	}

	if src := firstImageTagSrc(text); src != "" {
		return src
	}

	for _, expr := range imageSrcExprs {
		if m := expr.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}

	return ""
}

func firstImageTagSrc(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var found string
	doc.Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, _ := sel.Attr("src")
		if imageExtExpr.MatchString(src) {
			found = src
			return false
		}
		return true
	})
	return found
}
