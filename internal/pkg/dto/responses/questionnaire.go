package responses

// QuestionnaireSummary is the catalog listing entry.
type QuestionnaireSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	ScoringName   string `json:"scoringName"`
	QuestionCount int    `json:"questionCount"`
}
