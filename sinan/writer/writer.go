package writer

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/dive-sc/sinan-godata-app/sinan/models"
)

// WriteCases dumps assembled cases to path as newline-delimited JSON, one
// case per line, in the exact shape the upload would send.
func WriteCases(path string, cases []models.Case) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	enc := json.NewEncoder(f)
	for _, caseData := range cases {
		if err := enc.Encode(caseData); err != nil {
			f.Close()
			return errors.Wrapf(err, "could not write case %s", caseData.VisualID)
		}
	}
	return errors.Wrapf(f.Close(), "could not close %s", path)
}
