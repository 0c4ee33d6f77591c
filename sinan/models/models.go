package models

// Row is one notification as read from the spreadsheet, keyed by column
// name. Every cell is a string; missing columns read as "".
type Row map[string]string

func (r Row) Get(column string) string {
	return r[column]
}

// Table is an ordered set of rows sharing one header.
type Table struct {
	Columns []string
	Rows    []Row
}

func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EnsureColumn appends the column to the header when absent. Existing rows
// keep reading "" for it until written.
func (t *Table) EnsureColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// NormalizedCase is the intermediate record built from one row. Registry
// codes (gender, pregnancy, outcome, classification) are still untranslated.
type NormalizedCase struct {
	VisualID string

	PatientName     string
	Gender          string
	PregnancyStatus string
	BirthDate       string
	Age             *int
	Phone           string

	DocumentNumber string
	DocumentType   string

	Neighborhood string
	Street       string
	Number       string
	Complement   string
	AddressLine  string
	LocationID   string
	PostalCode   string

	OutcomeCode        string
	ClassificationCode string
	OnsetDate          string
	NotificationDate   string

	// ProcessedAt records when this run mapped the row; the assembled case
	// carries its own updatedAt stamped at assembly time.
	ProcessedAt string
}

// Outbreak is a named investigation context in the remote registry.
type Outbreak struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CaseRef identifies a case already present remotely.
type CaseRef struct {
	ID       string `json:"id"`
	VisualID string `json:"visualId"`
}

// UploadResult is the per-case outcome of an upsert.
type UploadResult struct {
	VisualID     string
	Status       string
	ResponseID   string
	ErrorMessage string
}
