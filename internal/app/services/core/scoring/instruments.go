package scoring

import (
	"fmt"
	"ortoform-service/internal/app/models"
)

// Instrument names as they appear in results. Route identifiers are the
// lowercase short codes; the catalog bridges the two.
const (
	InstrumentKOOS         = "KOOS"
	InstrumentHOOS         = "HOOS"
	InstrumentDASH         = "DASH"
	InstrumentSEFAS        = "SEFAS"
	InstrumentEQ5D         = "EQ-5D-5L"
	InstrumentNDI          = "NDI"
	InstrumentSatisfaction = "Patientnöjdhet"
)

var koos = &Instrument{
	Name:      InstrumentKOOS,
	Formula:   FormulaInverseMean,
	DomainMin: 0,
	DomainMax: 100,
	Sections: []SectionTable{
		{Name: "Symptoms", QuestionIDs: []string{"S1", "S2", "S3", "S4", "S5", "S6", "S7"}},
		{Name: "Pain", QuestionIDs: []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8", "P9"}},
		{Name: "Daily Living", QuestionIDs: []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10", "A11", "A12", "A13", "A14", "A15", "A16", "A17"}},
		{Name: "Sports", QuestionIDs: []string{"SP1", "SP2", "SP3", "SP4", "SP5"}},
		{Name: "Quality of Life", QuestionIDs: []string{"Q1", "Q2", "Q3", "Q4"}},
	},
	Bands: []Band{
		{Min: 0, Max: 25, Label: "Severe problems"},
		{Min: 25, Max: 50, Label: "Moderate problems"},
		{Min: 50, Max: 75, Label: "Mild problems"},
		{Min: 75, Max: 100, Label: "No problems"},
	},
}

var hoos = &Instrument{
	Name:      InstrumentHOOS,
	Formula:   FormulaInverseMean,
	DomainMin: 0,
	DomainMax: 100,
	Sections: []SectionTable{
		{Name: "Symptoms", QuestionIDs: []string{"S1", "S2", "S3"}},
		{Name: "Stiffness", QuestionIDs: []string{"S4", "S5"}},
		{Name: "Pain", QuestionIDs: []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8", "P9", "P10"}},
		{Name: "Physical Function", QuestionIDs: []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10", "A11", "A12", "A13", "A14", "A15", "A16", "A17"}},
		{Name: "Sports and Recreation", QuestionIDs: []string{"SP1", "SP2", "SP3", "SP4"}},
		{Name: "Quality of Life", QuestionIDs: []string{"Q1", "Q2", "Q3", "Q4"}},
	},
}

var dash = &Instrument{
	Name:      InstrumentDASH,
	Formula:   FormulaDisabilityMean,
	DomainMin: 0,
	DomainMax: 100,
	Sections: []SectionTable{
		{Name: "Activities", QuestionIDs: []string{"Q1", "Q2", "Q3", "Q4", "Q5", "Q6", "Q7", "Q8", "Q9", "Q10", "Q11", "Q12", "Q13", "Q14", "Q15", "Q16", "Q17", "Q18", "Q19", "Q20", "Q21"}},
		{Name: "Social Impact", QuestionIDs: []string{"Q22", "Q23"}},
		{Name: "Symptoms", QuestionIDs: []string{"Q24", "Q25", "Q26", "Q27", "Q28"}},
		{Name: "Sleep and Confidence", QuestionIDs: []string{"Q29", "Q30"}},
		{Name: "Work", QuestionIDs: []string{"Q33", "Q34", "Q35", "Q36"}},
		{Name: "Sports/Music", QuestionIDs: []string{"Q39", "Q40", "Q41", "Q42"}},
	},
	Bands: []Band{
		{Min: 0, Max: 25, Label: "No or minimal disability"},
		{Min: 25, Max: 50, Label: "Mild disability"},
		{Min: 50, Max: 75, Label: "Moderate disability"},
		{Min: 75, Max: 100, Label: "Severe disability"},
	},
	TextQuestionIDs: []string{"Q31", "Q32", "Q37", "Q38"},
}

var sefas = &Instrument{
	Name:      InstrumentSEFAS,
	Formula:   FormulaSum,
	DomainMin: 0,
	DomainMax: 48,
	Sections: []SectionTable{
		{Name: "Foot/Ankle Function", QuestionIDs: []string{"Q1", "Q2", "Q3", "Q4", "Q5", "Q6", "Q7", "Q8", "Q9", "Q10", "Q11", "Q12"}},
	},
}

var eq5d = &Instrument{
	Name:      InstrumentEQ5D,
	Formula:   FormulaProfile,
	DomainMin: 0,
	DomainMax: 100,
	Sections: []SectionTable{
		{Name: "mobility", QuestionIDs: []string{"mobility"}},
		{Name: "selfCare", QuestionIDs: []string{"selfCare"}},
		{Name: "activities", QuestionIDs: []string{"activities"}},
		{Name: "pain", QuestionIDs: []string{"pain"}},
		{Name: "anxiety", QuestionIDs: []string{"anxiety"}},
		{Name: "vas", QuestionIDs: []string{"vas"}},
	},
	SliderSection: "vas",
}

var ndi = &Instrument{
	Name:      InstrumentNDI,
	Formula:   FormulaSum,
	DomainMin: 0,
	DomainMax: 50,
	Sections: []SectionTable{
		{Name: "Neck Function", QuestionIDs: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}},
	},
	Bands: []Band{
		{Min: 0, Max: 4, Label: "No disability"},
		{Min: 4, Max: 14, Label: "Mild disability"},
		{Min: 14, Max: 24, Label: "Moderate disability"},
		{Min: 24, Max: 34, Label: "Severe disability"},
		{Min: 34, Max: 50, Label: "Complete disability"},
	},
}

var satisfaction = &Instrument{
	Name:      InstrumentSatisfaction,
	Formula:   FormulaSingleItem,
	DomainMin: 0,
	DomainMax: 4,
	Sections: []SectionTable{
		{Name: "Generell nöjdhet", QuestionIDs: []string{"S1"}},
	},
}

var registry = map[string]*Instrument{
	InstrumentKOOS:         koos,
	InstrumentHOOS:         hoos,
	InstrumentDASH:         dash,
	InstrumentSEFAS:        sefas,
	InstrumentEQ5D:         eq5d,
	InstrumentNDI:          ndi,
	InstrumentSatisfaction: satisfaction,
}

// ForName returns the calculator for a scoring-engine instrument name. An
// unknown name is a definition error at the boundary where it is detected.
func ForName(name string) (*Instrument, error) {
	in, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("no calculator registered for instrument %q", name)
	}
	return in, nil
}

// Names lists the registered instrument names.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}

// Calculate resolves the calculator for name and scores the responses.
func Calculate(name string, responses models.ResponseMap) (*models.QuestionnaireResult, error) {
	in, err := ForName(name)
	if err != nil {
		return nil, err
	}
	return in.Calculate(responses)
}

// ValidateRegistry checks every registered instrument's bands at startup.
func ValidateRegistry() error {
	for _, in := range registry {
		if err := in.ValidateBands(); err != nil {
			return err
		}
	}
	return nil
}
