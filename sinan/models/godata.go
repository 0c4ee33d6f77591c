package models

// Answer is a single questionnaire answer. The remote schema wants one of
// {}, {"value": V} or {"date": D}.
type Answer struct {
	Value interface{} `json:"value,omitempty"`
	Date  string      `json:"date,omitempty"`
}

// QuestionnaireAnswers maps each schema field to a single-element answer
// list. The wrapper list is a registry requirement, not repetition.
type QuestionnaireAnswers map[string][]Answer

type Document struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type Age struct {
	Years  int  `json:"years"`
	Months *int `json:"months,omitempty"`
}

type Address struct {
	TypeID              string             `json:"typeId"`
	City                string             `json:"city,omitempty"`
	AddressLine1        string             `json:"addressLine1,omitempty"`
	PostalCode          string             `json:"postalCode,omitempty"`
	LocationID          string             `json:"locationId"`
	GeoLocationAccurate bool               `json:"geoLocationAccurate"`
	Date                string             `json:"date,omitempty"`
	PhoneNumber         string             `json:"phoneNumber,omitempty"`
	GeoLocation         map[string]float64 `json:"geoLocation,omitempty"`
}

type DuplicateKeys struct {
	Document []interface{} `json:"document"`
	Name     []interface{} `json:"name"`
}

// Case is the record shape accepted by the Go.Data registry. The remote
// schema treats missing optional fields differently from explicit defaults,
// so the always-present flags and empty lists are serialized even when empty.
type Case struct {
	VisualID   string `json:"visualId"`
	OutbreakID string `json:"outbreakId,omitempty"`

	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName,omitempty"`
	Gender          string `json:"gender"`
	PregnancyStatus string `json:"pregnancyStatus"`
	Age             *Age   `json:"age,omitempty"`
	Dob             string `json:"dob,omitempty"`

	Documents []Document `json:"documents"`
	Addresses []Address  `json:"addresses"`

	Classification string `json:"classification"`
	OutcomeID      string `json:"outcomeId"`

	DateOfReporting string `json:"dateOfReporting"`
	DateOfOnset     string `json:"dateOfOnset,omitempty"`
	DateOfOutcome   string `json:"dateOfOutcome,omitempty"`
	UpdatedAt       string `json:"updatedAt"`

	QuestionnaireAnswers QuestionnaireAnswers `json:"questionnaireAnswers"`

	// Registry-required defaults.
	Active                bool          `json:"active"`
	TransferRefused       bool          `json:"transferRefused"`
	WasContact            bool          `json:"wasContact"`
	SafeBurial            bool          `json:"safeBurial"`
	RiskLevel             string        `json:"riskLevel,omitempty"`
	Occupation            string        `json:"occupation,omitempty"`
	DuplicateKeys         DuplicateKeys `json:"duplicateKeys"`
	DateRanges            []interface{} `json:"dateRanges"`
	ClassificationHistory []interface{} `json:"classificationHistory"`
	VaccinesReceived      []interface{} `json:"vaccinesReceived"`
}
