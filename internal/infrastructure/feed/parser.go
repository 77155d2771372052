package feed

import (
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"BrightFeed/internal/domain"
)

// Namespace URIs seen in the wild; prefixes alone appear when a feed forgets
// the xmlns declaration and the decoder runs in non-strict mode.
const (
	nsMedia   = "http://search.yahoo.com/mrss/"
	nsDC      = "http://purl.org/dc/elements/1.1/"
	nsContent = "http://purl.org/rss/1.0/modules/content/"
)

// Parser is a streaming state machine over feed XML. It accepts RSS 2.0 and
// Atom through element-name aliasing alone: entry/summary/published/updated
// land in the same accumulator slots as item/description/pubDate. State is
// local to one Parse call, so instances are cheap and never shared across
// concurrent fetches.
type Parser struct{}

// NewParser returns a stateless parser value.
func NewParser() *Parser {
	return &Parser{}
}

type itemAccumulator struct {
	title       strings.Builder
	description strings.Builder
	link        strings.Builder
	pubDate     strings.Builder
	author      strings.Builder
	content     strings.Builder
	imageURL    string
}

// Parse consumes the token stream and returns every well-formed item.
// Items missing a title or link after trimming are dropped silently.
func (p *Parser) Parse(r io.Reader) ([]domain.RawItem, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		items      []domain.RawItem
		acc        itemAccumulator
		insideItem bool
		element    string
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Reason: err.Error()}
		}

		switch tok := token.(type) {
		case xml.StartElement:
			element = canonicalName(tok.Name)
			if element == "item" || element == "entry" {
				insideItem = true
				acc = itemAccumulator{}
				continue
			}
			if !insideItem {
				continue
			}
			switch element {
			case "media:content", "media:thumbnail":
				if url := attr(tok, "url"); url != "" {
					acc.imageURL = url
				}
			case "enclosure":
				if strings.HasPrefix(attr(tok, "type"), "image") {
					if url := attr(tok, "url"); url != "" {
						acc.imageURL = url
					}
				}
			case "link":
				// Atom carries the article URL as an attribute, not text.
				if rel := attr(tok, "rel"); rel == "" || rel == "alternate" {
					if href := attr(tok, "href"); href != "" && acc.link.Len() == 0 {
						acc.link.WriteString(href)
					}
				}
			}

		case xml.CharData:
			if !insideItem {
				continue
			}
			text := strings.TrimSpace(string(tok))
			if text == "" {
				continue
			}
			switch element {
			case "title":
				acc.title.WriteString(text)
			case "description", "summary":
				acc.description.WriteString(text)
			case "link":
				acc.link.WriteString(text)
			case "pubDate", "published", "updated":
				acc.pubDate.WriteString(text)
			case "dc:creator", "author":
				acc.author.WriteString(text)
			case "content:encoded", "content":
				acc.content.WriteString(text)
			}

		case xml.EndElement:
			name := canonicalName(tok.Name)
			if name != "item" && name != "entry" {
				continue
			}
			if item, ok := buildItem(&acc); ok {
				items = append(items, item)
			}
			insideItem = false
		}
	}

	return items, nil
}

func buildItem(acc *itemAccumulator) (domain.RawItem, bool) {
	rawDescription := acc.description.String()
	rawContent := acc.content.String()

	item := domain.RawItem{
		Title:       strings.TrimSpace(acc.title.String()),
		Description: CleanMarkup(rawDescription),
		Link:        strings.TrimSpace(acc.link.String()),
		PubDate:     strings.TrimSpace(acc.pubDate.String()),
		Author:      strings.TrimSpace(acc.author.String()),
		Content:     CleanMarkup(rawContent),
		ImageURL:    acc.imageURL,
	}
	if item.ImageURL == "" {
		item.ImageURL = extractImage(rawContent, rawDescription)
	}

	if item.Title == "" || item.Link == "" {
		return domain.RawItem{}, false
	}
	return item, true
}

// canonicalName collapses namespace-qualified element names onto the
// prefixed spellings the accumulator mapping is written against.
func canonicalName(name xml.Name) string {
	switch name.Space {
	case nsMedia, "media":
		return "media:" + name.Local
	case nsDC, "dc":
		return "dc:" + name.Local
	case nsContent, "content":
		return "content:" + name.Local
	default:
		return name.Local
	}
}

func attr(el xml.StartElement, key string) string {
	for _, a := range el.Attr {
		if a.Name.Local == key {
			return a.Value
		}
	}
	return ""
}
