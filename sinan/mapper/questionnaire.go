package mapper

import (
	"time"

	"github.com/dive-sc/sinan-godata-app/sinan/disease"
	"github.com/dive-sc/sinan-godata-app/sinan/location"
	"github.com/dive-sc/sinan-godata-app/sinan/models"
	"github.com/dive-sc/sinan-godata-app/sinan/utils"
)

// Questionnaire date cells come in the export's datetime shape.
const questionnaireDateLayout = "2006-01-02 15:04:05"

// QuestionnaireMapper builds the disease-specific answer structure for one
// row. Every schema field gets exactly one entry, blanks included.
type QuestionnaireMapper struct {
	Dictionary *location.Dictionary
}

func (m QuestionnaireMapper) Map(row models.Row, spec disease.Spec) models.QuestionnaireAnswers {
	answers := make(models.QuestionnaireAnswers, len(spec.Questionnaire))
	for _, field := range spec.Questionnaire {
		answers[field.Name] = []models.Answer{m.answer(row, spec, field)}
	}
	return answers
}

func (m QuestionnaireMapper) answer(row models.Row, spec disease.Spec, field disease.Field) models.Answer {
	raw := row.Get(spec.Columns[field.Name])
	if raw == "" {
		// The remote schema wants an explicit empty entry for "no answer".
		return models.Answer{}
	}

	switch field.Type {
	case disease.FieldDate:
		t, err := time.ParseInLocation(questionnaireDateLayout, raw, time.UTC)
		if err != nil {
			// A malformed questionnaire date is "no answer", not a failure.
			return models.Answer{}
		}
		return models.Answer{Date: utils.FormatISOUTC(t)}
	case disease.FieldLocation:
		if m.Dictionary == nil {
			return models.Answer{Value: ""}
		}
		return models.Answer{Value: m.Dictionary.Municipality(raw)}
	default:
		return models.Answer{Value: raw}
	}
}
