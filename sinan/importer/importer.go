package importer

import (
	"github.com/sirupsen/logrus"

	"github.com/dive-sc/sinan-godata-app/sinan/constants"
	"github.com/dive-sc/sinan-godata-app/sinan/disease"
	sinanerrors "github.com/dive-sc/sinan-godata-app/sinan/errors"
	"github.com/dive-sc/sinan-godata-app/sinan/godata"
	"github.com/dive-sc/sinan-godata-app/sinan/location"
	"github.com/dive-sc/sinan-godata-app/sinan/mapper"
	"github.com/dive-sc/sinan-godata-app/sinan/models"
	"github.com/dive-sc/sinan-godata-app/sinan/translation"
)

// Importer runs the row-to-case pipeline: normalize each row, build the
// disease questionnaire, assemble the registry record. Failures are isolated
// per row; only an unknown disease aborts.
type Importer struct {
	Translations *translation.Registry
	Diseases     *disease.Registry
	Dictionary   *location.Dictionary
	Locations    *location.Resolver
	Logger       logrus.FieldLogger
}

// MapCases converts every usable row into a registry case. Rows without a
// notification number are dropped up front; rows that fail mapping are
// logged and skipped.
func (i Importer) MapCases(table models.Table, diseaseName, outbreakID string) ([]models.Case, error) {
	spec, err := i.Diseases.Get(diseaseName)
	if err != nil {
		return nil, err
	}

	caseMapper := mapper.CaseMapper{
		Dictionary: i.Dictionary,
		Locations:  i.Locations,
		Logger:     i.Logger,
	}
	questionnaireMapper := mapper.QuestionnaireMapper{Dictionary: i.Dictionary}
	assembler := godata.Assembler{Translations: i.Translations}

	cases := make([]models.Case, 0, len(table.Rows))
	dropped, skipped := 0, 0
	for idx, row := range table.Rows {
		visualID := row.Get(constants.ColNotificationNumber)
		if visualID == "" {
			dropped++
			continue
		}

		nc, err := caseMapper.MapRow(row)
		if err != nil {
			mapErr := &sinanerrors.RowMappingError{Err: err, Row: idx + 1, VisualID: visualID}
			i.logger().Error(mapErr)
			skipped++
			continue
		}

		answers := questionnaireMapper.Map(row, spec)
		cases = append(cases, assembler.Assemble(nc, answers, outbreakID, diseaseName))
	}

	i.logger().Infof("Mapped %d of %d rows (%d without notification number, %d failed)",
		len(cases), len(table.Rows), dropped, skipped)
	return cases, nil
}

func (i Importer) logger() logrus.FieldLogger {
	if i.Logger != nil {
		return i.Logger
	}
	return logrus.StandardLogger()
}
