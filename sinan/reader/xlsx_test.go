package reader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	sinanerrors "github.com/dive-sc/sinan-godata-app/sinan/errors"
)

func writeSheet(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, cells := range rows {
		axis, err := excelize.JoinCellName("A", i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, axis, &cells))
	}
	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadTable(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		{"NU_NOTIFIC", "NM_PACIENT", "CS_SEXO"},
		{"1001", "Fulano de Tal", "M"},
		{"1002", "Ciclana"},
	})

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"NU_NOTIFIC", "NM_PACIENT", "CS_SEXO"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "M", table.Rows[0].Get("CS_SEXO"))
	// short row pads missing trailing cells
	assert.Equal(t, "", table.Rows[1].Get("CS_SEXO"))
	assert.Equal(t, "Ciclana", table.Rows[1].Get("NM_PACIENT"))
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestReadDictionary(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		{" id_mn_resi ", "MUNICIPIO RESI", "UF RESI"},
		{"420540", "Florianópolis", "Santa Catarina"},
		{"420240", "Blumenau", "Santa Catarina"},
		{"", "sem código", "Santa Catarina"},
	})

	dict, err := ReadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, "Florianópolis", dict.Municipality("420540"))
	assert.Equal(t, "Santa Catarina", dict.State("420240"))
	assert.Equal(t, "", dict.Municipality("999999"))
}

func TestReadDictionaryMissingColumn(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		{"ID_MN_RESI", "MUNICIPIO RESI"},
		{"420540", "Florianópolis"},
	})

	_, err := ReadDictionary(path)
	var confErr *sinanerrors.ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Contains(t, confErr.Error(), "UF RESI")
}
