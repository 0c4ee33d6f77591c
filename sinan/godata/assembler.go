package godata

import (
	"fmt"
	"time"

	"github.com/dive-sc/sinan-godata-app/sinan/constants"
	"github.com/dive-sc/sinan-godata-app/sinan/models"
	"github.com/dive-sc/sinan-godata-app/sinan/translation"
	"github.com/dive-sc/sinan-godata-app/sinan/utils"
)

// Assembler combines a normalized case, its questionnaire answers and the
// resolved outbreak into the record shape the registry accepts.
type Assembler struct {
	Translations *translation.Registry

	// Now stamps updatedAt at assembly time; nil means time.Now.
	Now func() time.Time
}

func (a Assembler) Assemble(nc models.NormalizedCase, answers models.QuestionnaireAnswers,
	outbreakID, diseaseName string) models.Case {

	now := time.Now()
	if a.Now != nil {
		now = a.Now()
	}

	c := models.Case{
		VisualID:   nc.VisualID,
		OutbreakID: outbreakID,

		FirstName:       nc.PatientName,
		Gender:          a.Translations.Translate("gender", nc.Gender),
		PregnancyStatus: a.Translations.Translate("pregnancy_status", nc.PregnancyStatus),
		Dob:             nc.BirthDate,

		Documents: []models.Document{},
		Addresses: []models.Address{a.buildAddress(nc)},

		Classification: a.Translations.Translate(
			fmt.Sprintf("%s_case_classification", diseaseName), nc.ClassificationCode),
		OutcomeID: a.Translations.Translate(
			fmt.Sprintf("%s_outcome", diseaseName), nc.OutcomeCode),

		DateOfReporting: nc.NotificationDate,
		DateOfOnset:     nc.OnsetDate,
		// Stamped here, not at preprocessing: this is the upload batch's
		// timestamp, ProcessedAt is the row's.
		UpdatedAt: utils.FormatISOUTC(now),

		QuestionnaireAnswers: answers,

		Active:                true,
		TransferRefused:       false,
		WasContact:            false,
		SafeBurial:            false,
		DuplicateKeys:         models.DuplicateKeys{Document: []interface{}{}, Name: []interface{}{}},
		DateRanges:            []interface{}{},
		ClassificationHistory: []interface{}{},
		VaccinesReceived:      []interface{}{},
	}

	if answers == nil {
		c.QuestionnaireAnswers = models.QuestionnaireAnswers{}
	}

	if nc.Age != nil {
		c.Age = &models.Age{Years: *nc.Age}
	}

	if nc.DocumentNumber != "" {
		c.Documents = append(c.Documents, models.Document{
			Type:   a.Translations.Translate("document_type", nc.DocumentType),
			Number: nc.DocumentNumber,
		})
	}

	return c
}

func (a Assembler) buildAddress(nc models.NormalizedCase) models.Address {
	return models.Address{
		TypeID:       a.Translations.Translate("address_type", constants.AddressTypeCurrent),
		AddressLine1: nc.AddressLine,
		LocationID:   nc.LocationID,
		PhoneNumber:  nc.Phone,
		PostalCode:   nc.PostalCode,
	}
}
