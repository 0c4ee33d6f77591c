package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dive-sc/sinan-godata-app/sinan/disease"
	"github.com/dive-sc/sinan-godata-app/sinan/location"
	"github.com/dive-sc/sinan-godata-app/sinan/models"
)

func questionnaireSpec() disease.Spec {
	return disease.Spec{
		Name: "sarampo",
		Questionnaire: []disease.Field{
			{Name: "resultado_sarampo_s1_igg", Type: disease.FieldString},
			{Name: "data_da_coleta_s_1", Type: disease.FieldDate},
			{Name: "municipio_de_notificacao", Type: disease.FieldLocation},
		},
		Columns: map[string]string{
			"resultado_sarampo_s1_igg": "ID_S1_IGG",
			"data_da_coleta_s_1":       "DT_COL_1",
			"municipio_de_notificacao": "ID_MUNICIP",
		},
		Classification: map[string]string{"1": "SARAMPO"},
		Outcome:        map[string]string{"1": "CURA"},
	}
}

func TestQuestionnaireMap(t *testing.T) {
	dict := location.NewDictionary(map[string]string{"420240": "Blumenau"}, nil)
	m := QuestionnaireMapper{Dictionary: dict}

	answers := m.Map(models.Row{
		"ID_S1_IGG":  "1",
		"DT_COL_1":   "2024-01-10 00:00:00",
		"ID_MUNICIP": "420240",
	}, questionnaireSpec())

	require.Len(t, answers, 3)
	require.Len(t, answers["resultado_sarampo_s1_igg"], 1)
	assert.Equal(t, models.Answer{Value: "1"}, answers["resultado_sarampo_s1_igg"][0])
	assert.Equal(t, models.Answer{Date: "2024-01-10T00:00:00.000Z"}, answers["data_da_coleta_s_1"][0])
	assert.Equal(t, models.Answer{Value: "Blumenau"}, answers["municipio_de_notificacao"][0])
}

func TestQuestionnaireMapBlanksAndBadDates(t *testing.T) {
	m := QuestionnaireMapper{}

	tests := []struct {
		name string
		row  models.Row
		want models.Answer
	}{
		{"blank cell", models.Row{"DT_COL_1": ""}, models.Answer{}},
		{"missing column", models.Row{}, models.Answer{}},
		{"date in unexpected shape", models.Row{"DT_COL_1": "10/01/2024"}, models.Answer{}},
		{"serial number is not a questionnaire date", models.Row{"DT_COL_1": "45296"}, models.Answer{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(sub *testing.T) {
			answers := m.Map(tt.row, questionnaireSpec())
			assert.Equal(sub, tt.want, answers["data_da_coleta_s_1"][0])
		})
	}
}

func TestQuestionnaireMapSerialization(t *testing.T) {
	m := QuestionnaireMapper{}
	answers := m.Map(models.Row{"ID_S1_IGG": "2"}, questionnaireSpec())

	// Blank answers serialize as {}, valued ones as {"value": ...}.
	assert.Equal(t, []models.Answer{{}}, answers["data_da_coleta_s_1"])
	assert.Equal(t, []models.Answer{{Value: "2"}}, answers["resultado_sarampo_s1_igg"])
}
