package models

// QuestionKind is the explicit discriminant resolved at definition-load time.
// A question that declares answer options is always a regular multiple-choice
// question, whatever its declared type says.
type QuestionKind string

const (
	QuestionKindRegular QuestionKind = "regular"
	QuestionKindText    QuestionKind = "text"
	QuestionKindSlider  QuestionKind = "slider"
)

type QuestionOption struct {
	// Value is the stored answer token. Numeric values participate in scoring,
	// string values (e.g. yes/no gates) only in conditional logic.
	Value interface{} `json:"value"`
	Text  string      `json:"text"`
}

// QuestionDependency gates a question on an exact prior answer.
type QuestionDependency struct {
	QuestionID    string      `json:"questionId"`
	ExpectedValue interface{} `json:"expectedValue"`
}

type Question struct {
	ID        string              `json:"id"`
	Text      string              `json:"text"`
	Kind      QuestionKind        `json:"kind"`
	Options   []QuestionOption    `json:"options,omitempty"`
	Min       float64             `json:"min,omitempty"`
	Max       float64             `json:"max,omitempty"`
	MinLabel  string              `json:"minLabel,omitempty"`
	MaxLabel  string              `json:"maxLabel,omitempty"`
	DependsOn *QuestionDependency `json:"dependsOn,omitempty"`
}

// QuestionnaireSection keeps its questions in declaration order; the order
// drives both presentation and scoring grouping.
type QuestionnaireSection struct {
	Title        string     `json:"title"`
	Instructions string     `json:"instructions"`
	Questions    []Question `json:"questions"`
}

type Questionnaire struct {
	// ID is the lowercase short code used in routes and storage keys.
	ID string `json:"id"`
	// ScoringName is the display/scoring-engine identifier (e.g. "KOOS").
	ScoringName  string                 `json:"scoringName"`
	Title        string                 `json:"title"`
	Subtitle     string                 `json:"subtitle"`
	Instructions string                 `json:"instructions"`
	Sections     []QuestionnaireSection `json:"sections"`
}

// StorageKey is the local-persistence key for this instrument's responses,
// e.g. "koosResponses".
func (q *Questionnaire) StorageKey() string {
	return q.ID + "Responses"
}

// AllQuestions returns every question in definition order.
func (q *Questionnaire) AllQuestions() []*Question {
	var out []*Question
	for i := range q.Sections {
		for j := range q.Sections[i].Questions {
			out = append(out, &q.Sections[i].Questions[j])
		}
	}
	return out
}

// FindQuestion returns the question with the given id, or nil.
func (q *Questionnaire) FindQuestion(questionID string) *Question {
	for i := range q.Sections {
		for j := range q.Sections[i].Questions {
			if q.Sections[i].Questions[j].ID == questionID {
				return &q.Sections[i].Questions[j]
			}
		}
	}
	return nil
}
