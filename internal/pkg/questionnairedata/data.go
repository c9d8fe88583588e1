// Package questionnairedata holds the embedded instrument definitions. The
// JSON files carry the Swedish patient-facing text; all identifiers used by
// the engines (question ids, section order) live here too, so scoring tables
// and definitions are kept in sync by construction and verified in tests.
package questionnairedata

import (
	"bytes"
	"embed"
	"fmt"
	"ortoform-service/internal/app/models"

	"github.com/goccy/go-json"
)

//go:embed koos.json hoos.json dash.json sefas.json eq5d.json ndi.json satisfaction.json
var definitionFiles embed.FS

// InstrumentIDs lists every embedded instrument short code, in catalog order.
var InstrumentIDs = []string{"koos", "hoos", "dash", "sefas", "eq5d", "ndi", "satisfaction"}

type rawOption struct {
	Value interface{} `json:"value"`
	Text  string      `json:"text"`
}

type rawDependency struct {
	QuestionID    string      `json:"questionId"`
	ExpectedValue interface{} `json:"expectedValue"`
}

type rawQuestion struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Type      string         `json:"type"`
	Options   []rawOption    `json:"options"`
	Min       float64        `json:"min"`
	Max       float64        `json:"max"`
	MinLabel  string         `json:"minLabel"`
	MaxLabel  string         `json:"maxLabel"`
	DependsOn *rawDependency `json:"dependsOn"`
}

type rawSection struct {
	Title        string        `json:"title"`
	Instructions string        `json:"instructions"`
	Questions    []rawQuestion `json:"questions"`
}

type rawQuestionnaire struct {
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle"`
	Instructions string       `json:"instructions"`
	Sections     []rawSection `json:"sections"`
}

// Load parses the embedded definition for the given instrument id and
// resolves every question into its explicit kind: a question with answer
// options is regular no matter what its declared type says; without options
// the declared type must be text or slider.
func Load(instrumentID string) (*models.Questionnaire, error) {
	data, err := definitionFiles.ReadFile(instrumentID + ".json")
	if err != nil {
		return nil, fmt.Errorf("no embedded definition for instrument %q: %w", instrumentID, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw rawQuestionnaire
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("instrument %q: %w", instrumentID, err)
	}

	def := &models.Questionnaire{
		ID:           instrumentID,
		Title:        raw.Title,
		Subtitle:     raw.Subtitle,
		Instructions: raw.Instructions,
		Sections:     make([]models.QuestionnaireSection, 0, len(raw.Sections)),
	}
	for _, rs := range raw.Sections {
		section := models.QuestionnaireSection{
			Title:        rs.Title,
			Instructions: rs.Instructions,
			Questions:    make([]models.Question, 0, len(rs.Questions)),
		}
		for _, rq := range rs.Questions {
			q, err := resolveQuestion(rq)
			if err != nil {
				return nil, fmt.Errorf("instrument %q question %q: %w", instrumentID, rq.ID, err)
			}
			section.Questions = append(section.Questions, q)
		}
		def.Sections = append(def.Sections, section)
	}
	return def, nil
}

func resolveQuestion(rq rawQuestion) (models.Question, error) {
	q := models.Question{
		ID:   rq.ID,
		Text: rq.Text,
	}
	if rq.DependsOn != nil {
		q.DependsOn = &models.QuestionDependency{
			QuestionID:    rq.DependsOn.QuestionID,
			ExpectedValue: normalizeValue(rq.DependsOn.ExpectedValue),
		}
	}

	switch {
	case len(rq.Options) > 0:
		q.Kind = models.QuestionKindRegular
		q.Options = make([]models.QuestionOption, 0, len(rq.Options))
		for _, o := range rq.Options {
			q.Options = append(q.Options, models.QuestionOption{
				Value: normalizeValue(o.Value),
				Text:  o.Text,
			})
		}
	case rq.Type == "text":
		q.Kind = models.QuestionKindText
	case rq.Type == "slider":
		q.Kind = models.QuestionKindSlider
		q.Min = rq.Min
		q.Max = rq.Max
		q.MinLabel = rq.MinLabel
		q.MaxLabel = rq.MaxLabel
		if q.Min >= q.Max {
			return q, fmt.Errorf("slider bounds invalid: min %v, max %v", q.Min, q.Max)
		}
	default:
		return q, fmt.Errorf("question has neither options nor a recognized type %q", rq.Type)
	}
	return q, nil
}

// normalizeValue maps json.Number to float64 so option values and dependency
// expectations compare with the same types as recorded answers.
func normalizeValue(v interface{}) interface{} {
	if n, ok := v.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return v
}
