package schema

// MetricDefinition describes one tracked metric for display purposes.
type MetricDefinition struct {
	Key         MetricKey `json:"key"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"` // "rate" or "count"
	Ranked      bool      `json:"ranked"`
	Direction   string    `json:"direction,omitempty"`
	Description string    `json:"description"`
}

// MetricDefinitions lists every reportable metric with its ranking behavior.
var MetricDefinitions = []MetricDefinition{
	{
		Key:         VisibilityMetric,
		Name:        "Visibility Score",
		Kind:        "rate",
		Ranked:      true,
		Direction:   "higher",
		Description: "Share of LLM responses that mention the brand at all (0-100).",
	},
	{
		Key:         ShareOfVoiceMetric,
		Name:        "Share of Voice",
		Kind:        "rate",
		Ranked:      true,
		Direction:   "higher",
		Description: "Brand's share of all brand mentions across responses (0-100).",
	},
	{
		Key:         AvgPositionMetric,
		Name:        "Average Position",
		Kind:        "rate",
		Ranked:      true,
		Direction:   "lower",
		Description: "Mean list position across appearances; 1 means first place.",
	},
	{
		Key:         DepthMetric,
		Name:        "Depth of Mention",
		Kind:        "rate",
		Ranked:      true,
		Direction:   "higher",
		Description: "Share of response word count attributable to the brand.",
	},
	{
		Key:         CitationShareMetric,
		Name:        "Citation Share",
		Kind:        "rate",
		Ranked:      true,
		Direction:   "higher",
		Description: "Brand's fraction of all citations surfaced across responses.",
	},
	{
		Key:         SentimentMetric,
		Name:        "Sentiment Score",
		Kind:        "rate",
		Ranked:      false,
		Description: "Weighted sentiment of brand mentions (0-100).",
	},
	{
		Key:         MentionsMetric,
		Name:        "Total Mentions",
		Kind:        "count",
		Ranked:      false,
		Direction:   "higher",
		Description: "Absolute number of brand mentions across responses.",
	},
}
