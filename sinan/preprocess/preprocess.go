package preprocess

import (
	"math"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dive-sc/sinan-godata-app/sinan/constants"
	"github.com/dive-sc/sinan-godata-app/sinan/models"
	"github.com/dive-sc/sinan-godata-app/sinan/utils"
)

// Placeholder values written over the PII columns when anonymizing.
const (
	AnonymousName       = "Paciente Anônimo"
	AnonymousPostalCode = "00000-000"
	AnonymousPhone      = "(00)0000-0000"
	AnonymousDocument   = "000000000000000"
	AnonymousBirthDate  = "2000-01-01"
)

var piiColumns = []string{
	constants.ColPatientName,
	constants.ColPostalCode,
	constants.ColPhone,
	constants.ColDocumentNumber,
	constants.ColBirthDate,
}

var missingSentinels = map[string]struct{}{
	"NA":  {},
	"nan": {},
	"NaN": {},
	"":    {},
}

// Preprocessor normalizes missing-value sentinels and optionally anonymizes
// the PII columns of a table in place.
type Preprocessor struct {
	Logger logrus.FieldLogger

	// Now is the clock used for age derivation; nil means time.Now.
	Now func() time.Time
}

// Run first replaces every missing-value sentinel with "", then derives the
// age column, and only then overwrites the PII columns when anonymize is
// set. Deriving age before anonymization keeps ages computed from the true
// birth date even though the output carries the placeholder one.
func (p Preprocessor) Run(table *models.Table, anonymize bool) {
	for _, row := range table.Rows {
		for column, value := range row {
			if _, missing := missingSentinels[value]; missing {
				row[column] = ""
			}
		}
	}

	p.deriveAges(table)

	if anonymize {
		p.logger().Info("Anonymizing personally-identifying columns")
		for _, column := range piiColumns {
			table.EnsureColumn(column)
		}
		for _, row := range table.Rows {
			row[constants.ColPatientName] = AnonymousName
			row[constants.ColPostalCode] = AnonymousPostalCode
			row[constants.ColPhone] = AnonymousPhone
			row[constants.ColDocumentNumber] = AnonymousDocument
			row[constants.ColBirthDate] = AnonymousBirthDate
		}
	}
}

// deriveAges fills the age column from the birth date wherever the export
// left it blank.
func (p Preprocessor) deriveAges(table *models.Table) {
	if !table.HasColumn(constants.ColBirthDate) {
		return
	}
	table.EnsureColumn(constants.ColAge)

	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}

	for _, row := range table.Rows {
		if row.Get(constants.ColAge) != "" {
			continue
		}
		birth := row.Get(constants.ColBirthDate)
		if birth == "" {
			continue
		}
		birthTime, err := utils.ParseDate(birth)
		if err != nil {
			p.logger().Warnf("Could not derive age from birth date %q: %s", birth, err)
			continue
		}
		years := math.Round(now.Sub(birthTime).Hours() / 24 / 365.25)
		row[constants.ColAge] = strconv.Itoa(int(years))
	}
}

func (p Preprocessor) logger() logrus.FieldLogger {
	if p.Logger != nil {
		return p.Logger
	}
	return logrus.StandardLogger()
}
