package positivity

// Policy is the tunable data behind the admission gate. Keyword lists and
// thresholds are plain values so deployments can swap the whole policy from
// configuration without touching filter code.
type Policy struct {
	BlockedKeywords  []string
	PositiveKeywords []string
	// StrongKeywords is a curated subset of PositiveKeywords worth a flat
	// bonus in the composite score.
	StrongKeywords []string

	// SentimentFloor rejects anything scored below it in [-1, 1].
	SentimentFloor float64
	// AdmissionThreshold is the minimum composite score (0-100) to pass.
	AdmissionThreshold int
}

// DefaultPolicy returns the strict gate: a broad blocklist, a 0.3 sentiment
// floor, and a 65-point composite threshold.
func DefaultPolicy() Policy {
	return Policy{
		BlockedKeywords: []string{
			"murder", "murdered", "killing", "killed", "kills", "shooting",
			"shooter", "shot", "gunman", "terrorist", "terrorism", "massacre",
			"slaughter", "execution", "executed", "homicide", "genocide",
			"war", "warfare", "bombing", "bomb", "missile", "airstrike",
			"assault", "rape", "rapist", "molested", "abuse", "abusive",
			"kidnapping", "kidnapped", "hostage", "torture", "tortured",
			"stabbing", "stabbed", "riot", "looting", "arson", "overdose",
			"suicide", "fatal", "fatality", "fatalities", "corpse", "deadly",
			"crisis", "catastrophe", "catastrophic", "disaster", "devastation",
			"devastated", "tragedy", "tragic", "horrific", "horrifying",
			"gruesome", "brutal", "brutality", "atrocity", "carnage",
			"bloodshed", "famine", "epidemic", "outbreak", "collapse",
			"wreckage", "casualty", "casualties", "extremist", "insurgent",
			"cartel", "trafficking", "smuggling", "fraud", "scandal",
			"corruption", "indictment", "lawsuit", "bankruptcy", "layoffs",
		},
		PositiveKeywords: []string{
			"success", "breakthrough", "discovery", "celebration",
			"achievement", "hero", "saved", "rescue", "innovation",
			"kindness", "charity", "volunteer", "hope", "inspiring",
			"uplifting", "heartwarming", "wholesome", "joy", "happiness",
			"recovery", "healing", "triumph", "overcome", "remarkable",
			"generous", "compassion", "miracle", "wonderful", "amazing",
			"sustainable", "renewable", "conservation", "wellness",
			"mindful", "creative", "artistic", "community", "together",
		},
		StrongKeywords: []string{
			"breakthrough", "hero", "rescue", "saved", "miracle", "triumph",
			"inspiring", "heartwarming", "uplifting", "kindness",
		},
		SentimentFloor:     0.3,
		AdmissionThreshold: 65,
	}
}
