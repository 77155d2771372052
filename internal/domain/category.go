package domain

// Category is the closed set of topical buckets an article can land in.
type Category string

const (
	// CategoryPersonalized is the catch-all bucket; it carries no keywords
	// and is never assigned by classification, only by user preference.
	CategoryPersonalized      Category = "personalized"
	CategoryGoodNews          Category = "good_news"
	CategoryInspiringStories  Category = "inspiring_stories"
	CategoryActsOfKindness    Category = "acts_of_kindness"
	CategoryScienceInnovation Category = "science_innovation"
	CategoryEnvironment       Category = "environment"
	CategoryHealthWellness    Category = "health_wellness"
	CategoryArtsCulture       Category = "arts_culture"
)

// Categories fixes the iteration order so classification stays deterministic.
var Categories = []Category{
	CategoryPersonalized,
	CategoryGoodNews,
	CategoryInspiringStories,
	CategoryActsOfKindness,
	CategoryScienceInnovation,
	CategoryEnvironment,
	CategoryHealthWellness,
	CategoryArtsCulture,
}

// DisplayName returns the human-readable category label.
func (c Category) DisplayName() string {
	switch c {
	case CategoryPersonalized:
		return "For You"
	case CategoryGoodNews:
		return "Good News"
	case CategoryInspiringStories:
		return "Inspiring Stories"
	case CategoryActsOfKindness:
		return "Acts of Kindness"
	case CategoryScienceInnovation:
		return "Science & Innovation"
	case CategoryEnvironment:
		return "Environment"
	case CategoryHealthWellness:
		return "Health & Wellness"
	case CategoryArtsCulture:
		return "Arts & Culture"
	}
	return string(c)
}

// Icon names the symbol shown next to the category in clients.
func (c Category) Icon() string {
	switch c {
	case CategoryPersonalized:
		return "sparkles"
	case CategoryGoodNews:
		return "sun.max.fill"
	case CategoryInspiringStories:
		return "star.fill"
	case CategoryActsOfKindness:
		return "heart.fill"
	case CategoryScienceInnovation:
		return "atom"
	case CategoryEnvironment:
		return "leaf.fill"
	case CategoryHealthWellness:
		return "figure.walk"
	case CategoryArtsCulture:
		return "paintpalette.fill"
	}
	return ""
}

// Keywords returns the fixed keyword list used to classify articles into the
// category. The personalized bucket has none.
func (c Category) Keywords() []string {
	switch c {
	case CategoryGoodNews:
		return []string{"positive", "uplifting", "success", "breakthrough", "achievement", "celebrate", "joy", "happy"}
	case CategoryInspiringStories:
		return []string{"inspiration", "hero", "overcome", "triumph", "courage", "brave", "remarkable", "extraordinary"}
	case CategoryActsOfKindness:
		return []string{"kindness", "charity", "volunteer", "donate", "help", "community", "generous", "compassion"}
	case CategoryScienceInnovation:
		return []string{"discovery", "innovation", "research", "breakthrough", "cure", "solution", "technology", "science"}
	case CategoryEnvironment:
		return []string{"sustainability", "conservation", "clean", "renewable", "wildlife", "nature", "climate", "green"}
	case CategoryHealthWellness:
		return []string{"wellness", "recovery", "fitness", "mental health", "healing", "healthy", "self-care", "wellbeing"}
	case CategoryArtsCulture:
		return []string{"creativity", "music", "art", "culture", "exhibition", "performance", "artist", "creative"}
	}
	return nil
}

// CategoryFromString maps a raw config value onto the closed set.
func CategoryFromString(raw string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}
