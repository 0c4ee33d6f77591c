package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sinanerrors "github.com/dive-sc/sinan-godata-app/sinan/errors"
	"github.com/dive-sc/sinan-godata-app/sinan/location"
	"github.com/dive-sc/sinan-godata-app/sinan/models"
	"github.com/dive-sc/sinan-godata-app/sinan/testutils"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testResolver() (*location.Dictionary, *location.Resolver) {
	dict := location.NewDictionary(
		map[string]string{"420240": "Blumenau", "410690": "Curitiba"},
		map[string]string{"420240": "Santa Catarina", "410690": "Paraná"},
	)
	root := &location.Node{ID: "br", Name: "Brasil", Children: []*location.Node{
		{ID: "sc", Name: "Santa Catarina", Children: []*location.Node{
			{ID: "sc-vale", Name: "Região do Vale do Itajaí", Children: []*location.Node{
				{ID: "sc-blumenau", Name: "Blumenau"},
			}},
		}},
		{ID: "pr", Name: "Paraná", Children: []*location.Node{
			{ID: "pr-curitiba", Name: "Curitiba"},
		}},
	}}
	return dict, location.NewResolver(root, testutils.Logger(), nil)
}

func TestMapRow(t *testing.T) {
	dict, resolver := testResolver()
	m := CaseMapper{Dictionary: dict, Locations: resolver, Logger: testutils.Logger(), Now: fixedNow}

	row := models.Row{
		"NU_NOTIFIC": "1001",
		"NM_PACIENT": "Fulano de Tal",
		"CS_SEXO":    "M",
		"CS_GESTANT": "6",
		"DT_NASC":    "1990-05-20",
		"IDADE":      "34",
		"NU_TELEFON": "(47)99999-0000",
		"ID_CNS_SUS": "700000000000001",
		"NM_BAIRRO":  "Centro",
		"NM_LOGRADO": "Rua XV de Novembro",
		"NU_NUMERO":  "100",
		"NM_COMPLEM": "Apto 2",
		"NU_CEP":     "89010-000",
		"ID_MN_RESI": "420240",
		"EVOLUCAO":   "1",
		"CLASS_FIN":  "1",
		"DT_SIN_PRI": "2024-01-02",
		"DT_NOTIFIC": "2024-01-05",
	}

	nc, err := m.MapRow(row)
	require.NoError(t, err)
	assert.Equal(t, "1001", nc.VisualID)
	assert.Equal(t, "Fulano de Tal", nc.PatientName)
	assert.Equal(t, "M", nc.Gender)
	assert.Equal(t, "6", nc.PregnancyStatus)
	assert.Equal(t, "1990-05-20T00:00:00.000Z", nc.BirthDate)
	require.NotNil(t, nc.Age)
	assert.Equal(t, 34, *nc.Age)
	assert.Equal(t, "700000000000001", nc.DocumentNumber)
	assert.Equal(t, "CNS", nc.DocumentType)
	assert.Equal(t, "Centro, Rua XV de Novembro, 100, Apto 2", nc.AddressLine)
	assert.Equal(t, "sc-blumenau", nc.LocationID)
	assert.Equal(t, "2024-01-02T00:00:00.000Z", nc.OnsetDate)
	assert.Equal(t, "2024-01-05T00:00:00.000Z", nc.NotificationDate)
	assert.Equal(t, "2024-06-01T12:00:00.000Z", nc.ProcessedAt)
}

func TestMapRowDefaults(t *testing.T) {
	m := CaseMapper{Now: fixedNow, Logger: testutils.Logger()}

	nc, err := m.MapRow(models.Row{"NU_NOTIFIC": "1002"})
	require.NoError(t, err)
	assert.Equal(t, "Lorem Ipsum", nc.PatientName)
	assert.Equal(t, "", nc.DocumentType)
	assert.Equal(t, "", nc.AddressLine)
	assert.Equal(t, "", nc.BirthDate)
	assert.Nil(t, nc.Age)
	assert.Equal(t, "", nc.LocationID)
}

func TestMapRowSerialDates(t *testing.T) {
	m := CaseMapper{Now: fixedNow, Logger: testutils.Logger()}

	nc, err := m.MapRow(models.Row{
		"NU_NOTIFIC": "1003",
		"DT_NOTIFIC": "45296",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05T00:00:00.000Z", nc.NotificationDate)
}

func TestMapRowErrors(t *testing.T) {
	m := CaseMapper{Now: fixedNow, Logger: testutils.Logger()}

	tests := []struct {
		name string
		row  models.Row
	}{
		{"malformed birth date", models.Row{"NU_NOTIFIC": "1", "DT_NASC": "not-a-date"}},
		{"malformed onset date", models.Row{"NU_NOTIFIC": "2", "DT_SIN_PRI": "05/01/2024x"}},
		{"non-integer age", models.Row{"NU_NOTIFIC": "3", "IDADE": "thirty"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(sub *testing.T) {
			_, err := m.MapRow(tt.row)
			assert.Error(sub, err)
		})
	}
}

func TestMapRowDateFormatError(t *testing.T) {
	m := CaseMapper{Now: fixedNow, Logger: testutils.Logger()}

	_, err := m.MapRow(models.Row{"NU_NOTIFIC": "1", "DT_NASC": "not-a-date"})
	var dateErr *sinanerrors.DateFormatError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "not-a-date", dateErr.Value)
}

func TestResolveResidenceUnknownCode(t *testing.T) {
	dict, resolver := testResolver()
	m := CaseMapper{Dictionary: dict, Locations: resolver, Logger: testutils.Logger(), Now: fixedNow}

	nc, err := m.MapRow(models.Row{"NU_NOTIFIC": "1004", "ID_MN_RESI": "999999"})
	require.NoError(t, err)
	assert.Equal(t, "", nc.LocationID)
}
