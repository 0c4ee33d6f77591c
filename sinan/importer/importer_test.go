package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dive-sc/sinan-godata-app/sinan/disease"
	sinanerrors "github.com/dive-sc/sinan-godata-app/sinan/errors"
	"github.com/dive-sc/sinan-godata-app/sinan/models"
	"github.com/dive-sc/sinan-godata-app/sinan/testutils"
	"github.com/dive-sc/sinan-godata-app/sinan/translation"
)

func testImporter() Importer {
	translations := translation.Default()
	diseases := disease.NewRegistry(translations, disease.Sarampo())
	return Importer{
		Translations: translations,
		Diseases:     diseases,
		Logger:       testutils.Logger(),
	}
}

func TestMapCases(t *testing.T) {
	i := testImporter()

	table := models.Table{
		Columns: []string{"NU_NOTIFIC", "CS_SEXO", "DT_NOTIFIC", "ID_S1_IGG"},
		Rows: []models.Row{
			{"NU_NOTIFIC": "1001", "CS_SEXO": "M", "DT_NOTIFIC": "2024-01-05", "ID_S1_IGG": "1"},
			{"NU_NOTIFIC": "", "CS_SEXO": "F"},
			{"NU_NOTIFIC": "1002", "CS_SEXO": "F", "DT_NOTIFIC": "2024-01-06"},
		},
	}

	cases, err := i.MapCases(table, "sarampo", "ob-1")
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, "1001", cases[0].VisualID)
	assert.Equal(t, "ob-1", cases[0].OutbreakID)
	assert.Equal(t, "LNG_REFERENCE_DATA_CATEGORY_GENDER_MALE", cases[0].Gender)
	assert.Equal(t, "2024-01-05T00:00:00.000Z", cases[0].DateOfReporting)

	// every questionnaire field present, valued or empty
	answers := cases[0].QuestionnaireAnswers
	require.Len(t, answers, len(disease.Sarampo().Questionnaire))
	assert.Equal(t, []models.Answer{{Value: "1"}}, answers["resultado_sarampo_s1_igg"])
	assert.Equal(t, []models.Answer{{}}, answers["data_da_coleta_s_1"])

	assert.Equal(t, "1002", cases[1].VisualID)
}

func TestMapCasesSkipsFailingRows(t *testing.T) {
	i := testImporter()

	table := models.Table{
		Columns: []string{"NU_NOTIFIC", "DT_NASC"},
		Rows: []models.Row{
			{"NU_NOTIFIC": "1001", "DT_NASC": "not-a-date"},
			{"NU_NOTIFIC": "1002", "DT_NASC": "1990-05-20"},
		},
	}

	cases, err := i.MapCases(table, "sarampo", "ob-1")
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "1002", cases[0].VisualID)
}

func TestMapCasesUnknownDisease(t *testing.T) {
	i := testImporter()

	_, err := i.MapCases(models.Table{}, "dengue", "ob-1")
	var confErr *sinanerrors.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}
