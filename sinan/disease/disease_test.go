package disease

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sinanerrors "github.com/dive-sc/sinan-godata-app/sinan/errors"
	"github.com/dive-sc/sinan-godata-app/sinan/translation"
)

func TestNewRegistryRegistersTranslators(t *testing.T) {
	tr := translation.NewRegistry()
	r := NewRegistry(tr, Sarampo())

	spec, err := r.Get("sarampo")
	require.NoError(t, err)
	assert.Equal(t, "sarampo", spec.Name)
	assert.Len(t, spec.Questionnaire, 16)

	assert.Equal(t, "SARAMPO", tr.Translate("sarampo_case_classification", "1"))
	assert.Equal(t, "CURA", tr.Translate("sarampo_outcome", "1"))
	// Absent keys resolve to the table default, never the raw code.
	assert.Equal(t, "", tr.Translate("sarampo_outcome", "9"))
}

func TestNewRegistrySkipsIncompleteSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"missingName", Spec{Questionnaire: []Field{{Name: "f"}}, Columns: map[string]string{}, Classification: map[string]string{}, Outcome: map[string]string{}}},
		{"missingQuestionnaire", Spec{Name: "dengue", Columns: map[string]string{}, Classification: map[string]string{}, Outcome: map[string]string{}}},
		{"missingColumns", Spec{Name: "dengue", Questionnaire: []Field{{Name: "f"}}, Classification: map[string]string{}, Outcome: map[string]string{}}},
		{"missingClassification", Spec{Name: "dengue", Questionnaire: []Field{{Name: "f"}}, Columns: map[string]string{}, Outcome: map[string]string{}}},
		{"missingOutcome", Spec{Name: "dengue", Questionnaire: []Field{{Name: "f"}}, Columns: map[string]string{}, Classification: map[string]string{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(sub *testing.T) {
			r := NewRegistry(translation.NewRegistry(), tt.spec)
			assert.Empty(sub, r.Diseases())
		})
	}
}

func TestGetUnknownDisease(t *testing.T) {
	r := NewRegistry(translation.NewRegistry(), Sarampo())

	_, err := r.Get("dengue")
	require.Error(t, err)
	var confErr *sinanerrors.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestDiseasesSorted(t *testing.T) {
	zika := Sarampo()
	zika.Name = "zika"
	dengue := Sarampo()
	dengue.Name = "dengue"

	r := NewRegistry(translation.NewRegistry(), zika, Sarampo(), dengue)
	assert.Equal(t, []string{"dengue", "sarampo", "zika"}, r.Diseases())
}
