package errors

import "fmt"

// ConfigurationError is fatal: the run aborts before any upload.
type ConfigurationError struct {
	Err error
	Msg string
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %s", e.Msg, e.Err)
	}
	return fmt.Sprintf("configuration error: %s", e.Msg)
}

// RowMappingError marks a row that could not be converted to a normalized
// case. The row is skipped and processing continues.
type RowMappingError struct {
	Err      error
	Row      int
	VisualID string
}

func (e *RowMappingError) Error() string {
	return fmt.Sprintf("row %d (NU_NOTIFIC=%q) could not be mapped: %s", e.Row, e.VisualID, e.Err)
}

// DateFormatError reports a value that is neither an ISO-8601 date nor a
// spreadsheet serial number.
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("unrecognized date format: %q", e.Value)
}

type UnexpectedStatusCodeError struct {
	Err        error
	StatusCode int
}

func (e *UnexpectedStatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Err)
}
