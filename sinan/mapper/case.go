package mapper

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dive-sc/sinan-godata-app/sinan/constants"
	"github.com/dive-sc/sinan-godata-app/sinan/location"
	"github.com/dive-sc/sinan-godata-app/sinan/models"
	"github.com/dive-sc/sinan-godata-app/sinan/utils"
)

// Default used when the export carries no patient name at all.
const defaultPatientName = "Lorem Ipsum"

// CaseMapper converts one raw row into a normalized case. Residence
// locations are resolved through the reference dictionary and the location
// tree; an unresolved location leaves the id empty and the case still maps.
type CaseMapper struct {
	Dictionary *location.Dictionary
	Locations  *location.Resolver
	Logger     logrus.FieldLogger

	// Now stamps ProcessedAt; nil means time.Now.
	Now func() time.Time
}

// MapRow builds the normalized case for a row. The caller is expected to
// have dropped rows without a notification number already; a failure here
// means the row is skipped, not the batch.
func (m CaseMapper) MapRow(row models.Row) (models.NormalizedCase, error) {
	nc := models.NormalizedCase{
		VisualID:           row.Get(constants.ColNotificationNumber),
		PatientName:        valueOr(row, constants.ColPatientName, defaultPatientName),
		Gender:             row.Get(constants.ColGender),
		PregnancyStatus:    row.Get(constants.ColPregnancy),
		Phone:              row.Get(constants.ColPhone),
		DocumentNumber:     row.Get(constants.ColDocumentNumber),
		Neighborhood:       row.Get(constants.ColNeighborhood),
		Street:             row.Get(constants.ColStreet),
		Number:             row.Get(constants.ColStreetNumber),
		Complement:         row.Get(constants.ColComplement),
		PostalCode:         row.Get(constants.ColPostalCode),
		OutcomeCode:        row.Get(constants.ColOutcome),
		ClassificationCode: row.Get(constants.ColClassification),
	}

	if nc.DocumentNumber != "" {
		nc.DocumentType = constants.DocumentTypeCNS
	}

	nc.AddressLine = joinAddress(nc.Neighborhood, nc.Street, nc.Number, nc.Complement)

	var err error
	if nc.BirthDate, err = normalizeOptionalDate(row, constants.ColBirthDate); err != nil {
		return nc, errors.Wrap(err, "birth date")
	}
	if nc.OnsetDate, err = normalizeOptionalDate(row, constants.ColOnsetDate); err != nil {
		return nc, errors.Wrap(err, "onset date")
	}
	if nc.NotificationDate, err = normalizeOptionalDate(row, constants.ColNotificationDate); err != nil {
		return nc, errors.Wrap(err, "notification date")
	}

	if age := row.Get(constants.ColAge); age != "" {
		years, err := strconv.Atoi(age)
		if err != nil {
			return nc, errors.Wrapf(err, "age %q is not an integer", age)
		}
		nc.Age = &years
	}

	nc.LocationID = m.resolveResidence(row)

	now := time.Now()
	if m.Now != nil {
		now = m.Now()
	}
	nc.ProcessedAt = utils.FormatISOUTC(now)

	return nc, nil
}

// resolveResidence turns the residence-municipality code into a location id.
// Unknown codes and tree misses are warned and resolve to "".
func (m CaseMapper) resolveResidence(row models.Row) string {
	code := row.Get(constants.ColResidenceCode)
	if code == "" || m.Dictionary == nil || m.Locations == nil {
		return ""
	}

	municipality := m.Dictionary.Municipality(code)
	state := m.Dictionary.State(code)
	if municipality == "" || state == "" {
		m.logger().Warnf("Residence code %s not present in reference dictionary", code)
		return ""
	}

	id, found := m.Locations.Resolve(state, municipality)
	if !found {
		m.logger().Warnf("Could not resolve residence location for NU_NOTIFIC=%s (%s / %s)",
			row.Get(constants.ColNotificationNumber), state, municipality)
		return ""
	}
	return id
}

func (m CaseMapper) logger() logrus.FieldLogger {
	if m.Logger != nil {
		return m.Logger
	}
	return logrus.StandardLogger()
}

func valueOr(row models.Row, column, fallback string) string {
	if v := row.Get(column); v != "" {
		return v
	}
	return fallback
}

func normalizeOptionalDate(row models.Row, column string) (string, error) {
	v := row.Get(column)
	if v == "" {
		return "", nil
	}
	return utils.ToISOUTC(v)
}

func joinAddress(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
