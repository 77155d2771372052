package classifier

import (
	"strings"

	"BrightFeed/internal/domain"
)

// Classify assigns a category from keyword matches over title+description.
// Every category except the personalized catch-all is scored by how many of
// its keywords appear as substrings of the lowercased text; the strictly
// highest count wins, ties keeping the first-seen category in the fixed
// enumeration order. Zero matches everywhere returns the source default.
func Classify(title, description string, defaultCategory domain.Category) domain.Category {
	text := strings.ToLower(title + " " + description)

	best := defaultCategory
	highest := 0

	for _, category := range domain.Categories {
		if category == domain.CategoryPersonalized {
			continue
		}

		matches := 0
		for _, keyword := range category.Keywords() {
			if strings.Contains(text, strings.ToLower(keyword)) {
				matches++
			}
		}

		if matches > highest {
			highest = matches
			best = category
		}
	}

	if highest == 0 {
		return defaultCategory
	}
	return best
}
