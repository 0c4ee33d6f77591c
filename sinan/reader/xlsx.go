package reader

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/dive-sc/sinan-godata-app/sinan/constants"
	sinanerrors "github.com/dive-sc/sinan-godata-app/sinan/errors"
	"github.com/dive-sc/sinan-godata-app/sinan/location"
	"github.com/dive-sc/sinan-godata-app/sinan/models"
)

// ReadTable loads the first sheet of a SINAN export. The first row is the
// header; every cell is kept as a string, short rows pad with "".
func ReadTable(path string) (models.Table, error) {
	rows, err := readRows(path)
	if err != nil {
		return models.Table{}, err
	}
	if len(rows) == 0 {
		return models.Table{}, nil
	}

	header := rows[0]
	table := models.Table{Columns: header, Rows: make([]models.Row, 0, len(rows)-1)}
	for _, cells := range rows[1:] {
		row := make(models.Row, len(header))
		for i, column := range header {
			if i < len(cells) {
				row[column] = cells[i]
			} else {
				row[column] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// ReadDictionary loads the municipality reference spreadsheet
// (ID_MN_RESI / MUNICIPIO RESI / UF RESI) into a location dictionary.
// Header names are trimmed and upper-cased before matching.
func ReadDictionary(path string) (*location.Dictionary, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &sinanerrors.ConfigurationError{Msg: "reference dictionary " + path + " is empty"}
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{constants.DictColCode, constants.DictColMunicipality, constants.DictColState} {
		if _, ok := columns[required]; !ok {
			return nil, &sinanerrors.ConfigurationError{
				Msg: "reference dictionary " + path + " is missing column " + required,
			}
		}
	}

	cell := func(cells []string, column string) string {
		i := columns[column]
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	municipalities := make(map[string]string, len(rows)-1)
	states := make(map[string]string, len(rows)-1)
	for _, cells := range rows[1:] {
		code := cell(cells, constants.DictColCode)
		if code == "" {
			continue
		}
		municipalities[code] = cell(cells, constants.DictColMunicipality)
		states[code] = cell(cells, constants.DictColState)
	}
	return location.NewDictionary(municipalities, states), nil
}

func readRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open spreadsheet %s", path)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.Errorf("spreadsheet %s has no sheets", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read sheet %s of %s", sheetName, path)
	}
	return rows, nil
}
