package models

// NoTotalScore marks results of profile-style instruments that report
// dimensions rather than an aggregate.
const NoTotalScore float64 = -1

type SectionScore struct {
	Name           string  `json:"name"`
	Score          float64 `json:"score"`
	Interpretation string  `json:"interpretation"`
}

type QuestionnaireResult struct {
	QuestionnaireName string            `json:"questionnaire_name"`
	Sections          []SectionScore    `json:"sections"`
	TotalScore        float64           `json:"total_score"`
	Interpretation    string            `json:"interpretation"`
	TextResponses     map[string]string `json:"text_responses,omitempty"`
}
