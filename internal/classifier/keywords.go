package classifier

import (
	"sort"
	"strings"
	"unicode"
)

const keywordLimit = 10

var stopWords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "from": {}, "have": {}, "been": {},
	"were": {}, "they": {}, "their": {}, "about": {}, "would": {}, "could": {},
	"should": {}, "which": {}, "there": {}, "being": {}, "other": {},
}

// ExtractKeywords tokenizes the text into distinct lowercase words longer
// than three characters, drops stop-words, and returns at most ten of them
// ordered by frequency then lexically, so the result is deterministic.
func ExtractKeywords(text string) []string {
	freq := make(map[string]int)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, word := range words {
		if len(word) <= 3 {
			continue
		}
		if _, skip := stopWords[word]; skip {
			continue
		}
		freq[word]++
	}

	if len(freq) == 0 {
		return nil
	}

	keywords := make([]string, 0, len(freq))
	for word := range freq {
		keywords = append(keywords, word)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if freq[keywords[i]] == freq[keywords[j]] {
			return keywords[i] < keywords[j]
		}
		return freq[keywords[i]] > freq[keywords[j]]
	})

	if len(keywords) > keywordLimit {
		keywords = keywords[:keywordLimit]
	}
	return keywords
}
