// Package scoring maps finalized response maps to interpretable instrument
// results. Every instrument shares one strategy parameterized by its formula,
// section table and interpretation bands; the per-instrument files supply
// data only, never control flow.
package scoring

import (
	"fmt"
	"ortoform-service/internal/app/models"
	"strconv"
)

type Formula int

const (
	// FormulaInverseMean normalizes a 0..4 scale to 0-100 where 100 is best:
	// 100 - mean*25.
	FormulaInverseMean Formula = iota
	// FormulaDisabilityMean normalizes a 1..5 scale to 0-100 where 0 is
	// best: (mean-1)*25.
	FormulaDisabilityMean
	// FormulaSum adds the raw responses with no normalization.
	FormulaSum
	// FormulaProfile reports each dimension raw (shifted to its 1-based
	// level) with no aggregate total.
	FormulaProfile
	// FormulaSingleItem reports the one answered value as both section and
	// total score.
	FormulaSingleItem
)

// Band is an inclusive score range with a human-readable label. Adjacent
// bands share their boundary; lookup is a linear scan and the first match
// wins, so a shared boundary resolves to the lower band.
type Band struct {
	Min   float64
	Max   float64
	Label string
}

type SectionTable struct {
	Name        string
	QuestionIDs []string
}

// Instrument is the static configuration for one questionnaire family. The
// section tables are configuration, not derived from the definition at
// runtime; catalog tests verify the two stay in sync.
type Instrument struct {
	Name     string
	Formula  Formula
	Sections []SectionTable
	// Bands interpret section and total scores; nil means the instrument
	// reports no interpretation text.
	Bands []Band
	// DomainMin/DomainMax bound the possible score domain; bands must tile
	// it exactly.
	DomainMin float64
	DomainMax float64
	// TextQuestionIDs are free-text captures collected into the result
	// without ever contributing to scores.
	TextQuestionIDs []string
	// SliderSection names the profile section whose raw value is reported
	// unshifted (the EQ-5D VAS self-rating).
	SliderSection string
}

const (
	interpretationUnknown     = "Unable to interpret"
	interpretationNoResponses = "No valid responses received"
)

// Calculate is a pure function from a response map to a result. Missing and
// non-numeric answers are excluded from the arithmetic, never treated as
// zero. Any panic during computation is re-signaled as a single calculation
// error for the instrument.
func (in *Instrument) Calculate(responses models.ResponseMap) (result *models.QuestionnaireResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("failed to calculate scores for %s: %v", in.Name, r)
		}
	}()

	textResponses := in.collectTextResponses(responses)

	var sections []models.SectionScore
	for _, table := range in.Sections {
		score, ok := in.sectionScore(table, responses)
		if !ok {
			continue
		}
		sections = append(sections, models.SectionScore{
			Name:           table.Name,
			Score:          score,
			Interpretation: in.interpret(score),
		})
	}

	if len(sections) == 0 {
		return &models.QuestionnaireResult{
			QuestionnaireName: in.Name,
			Sections:          []models.SectionScore{},
			TotalScore:        0,
			Interpretation:    interpretationNoResponses,
			TextResponses:     textResponses,
		}, nil
	}

	total, interpretation := in.aggregate(sections)
	return &models.QuestionnaireResult{
		QuestionnaireName: in.Name,
		Sections:          sections,
		TotalScore:        total,
		Interpretation:    interpretation,
		TextResponses:     textResponses,
	}, nil
}

func (in *Instrument) sectionScore(table SectionTable, responses models.ResponseMap) (float64, bool) {
	var valid []float64
	for _, id := range table.QuestionIDs {
		if v, ok := responses.Number(id); ok {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return 0, false
	}

	switch in.Formula {
	case FormulaInverseMean:
		return 100 - mean(valid)*25, true
	case FormulaDisabilityMean:
		return (mean(valid) - 1) * 25, true
	case FormulaSum:
		return sum(valid), true
	case FormulaProfile:
		if table.Name == in.SliderSection {
			return valid[0], true
		}
		return valid[0] + 1, true
	case FormulaSingleItem:
		return valid[0], true
	default:
		panic(fmt.Sprintf("unknown formula %d", in.Formula))
	}
}

func (in *Instrument) aggregate(sections []models.SectionScore) (float64, string) {
	if in.Formula == FormulaProfile {
		return models.NoTotalScore, in.healthState(sections)
	}

	var total float64
	for _, s := range sections {
		total += s.Score
	}
	total /= float64(len(sections))
	return total, in.interpret(total)
}

// healthState concatenates the dimension levels into the EQ-5D style digit
// string (e.g. "11223"); the slider section is not part of the state.
func (in *Instrument) healthState(sections []models.SectionScore) string {
	state := ""
	for _, s := range sections {
		if s.Name == in.SliderSection {
			continue
		}
		state += strconv.Itoa(int(s.Score))
	}
	return state
}

func (in *Instrument) interpret(score float64) string {
	if len(in.Bands) == 0 {
		return ""
	}
	for _, b := range in.Bands {
		if score >= b.Min && score <= b.Max {
			return b.Label
		}
	}
	return interpretationUnknown
}

func (in *Instrument) collectTextResponses(responses models.ResponseMap) map[string]string {
	if len(in.TextQuestionIDs) == 0 {
		return nil
	}
	out := make(map[string]string)
	for _, id := range in.TextQuestionIDs {
		if s, ok := responses.String(id); ok {
			out[id] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ValidateBands checks that an instrument's bands tile its score domain with
// no gaps and no reordering: the first band starts at the domain minimum,
// every band starts where the previous one ends, and the last band ends at
// the domain maximum.
func (in *Instrument) ValidateBands() error {
	if len(in.Bands) == 0 {
		return nil
	}
	if in.Bands[0].Min != in.DomainMin {
		return fmt.Errorf("%s: first band starts at %v, domain starts at %v", in.Name, in.Bands[0].Min, in.DomainMin)
	}
	for i, b := range in.Bands {
		if b.Min >= b.Max {
			return fmt.Errorf("%s: band %q is empty", in.Name, b.Label)
		}
		if i > 0 && b.Min != in.Bands[i-1].Max {
			return fmt.Errorf("%s: gap between bands %q and %q", in.Name, in.Bands[i-1].Label, b.Label)
		}
	}
	if last := in.Bands[len(in.Bands)-1]; last.Max != in.DomainMax {
		return fmt.Errorf("%s: last band ends at %v, domain ends at %v", in.Name, last.Max, in.DomainMax)
	}
	return nil
}

func mean(values []float64) float64 {
	return sum(values) / float64(len(values))
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
