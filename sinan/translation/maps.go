package translation

// Go.Data reference-data enumeration values for the SINAN core fields.
// Disease-specific outcome and classification tables are registered by the
// disease registry under "{disease}_outcome" and
// "{disease}_case_classification".

var genderMap = map[string]string{
	"M": "LNG_REFERENCE_DATA_CATEGORY_GENDER_MALE",
	"F": "LNG_REFERENCE_DATA_CATEGORY_GENDER_FEMALE",
}

// CS_GESTANT codes 1-4 are pregnant (by trimester), 5-6 not pregnant or not
// applicable, 9 unknown.
var pregnancyStatusMap = map[string]string{
	"1": "LNG_REFERENCE_DATA_CATEGORY_PREGNANCY_STATUS_YES_FIRST_TRIMESTER",
	"2": "LNG_REFERENCE_DATA_CATEGORY_PREGNANCY_STATUS_YES_SECOND_TRIMESTER",
	"3": "LNG_REFERENCE_DATA_CATEGORY_PREGNANCY_STATUS_YES_THIRD_TRIMESTER",
	"4": "LNG_REFERENCE_DATA_CATEGORY_PREGNANCY_STATUS_YES_TRIMESTER_UNKNOWN",
	"5": "LNG_REFERENCE_DATA_CATEGORY_PREGNANCY_STATUS_NONE",
	"6": "LNG_REFERENCE_DATA_CATEGORY_PREGNANCY_STATUS_NONE",
}

var documentTypeMap = map[string]string{
	"CNS":   "LNG_REFERENCE_DATA_CATEGORY_DOCUMENT_TYPE_CNS",
	"CPF":   "LNG_REFERENCE_DATA_CATEGORY_DOCUMENT_TYPE_CPF",
	"Other": "LNG_REFERENCE_DATA_CATEGORY_DOCUMENT_TYPE_OTHER",
}

var addressTypeMap = map[string]string{
	"Endereço Atual": "LNG_REFERENCE_DATA_CATEGORY_ADDRESS_TYPE_USUAL_PLACE_OF_RESIDENCE",
}

// Default returns a registry preloaded with the core SINAN translators.
func Default() *Registry {
	r := NewRegistry()
	r.Register("gender", Table(genderMap, ""))
	r.Register("pregnancy_status",
		Table(pregnancyStatusMap, "LNG_REFERENCE_DATA_CATEGORY_PREGNANCY_STATUS_NONE"))
	r.Register("document_type", Table(documentTypeMap, ""))
	r.Register("address_type", Table(addressTypeMap, ""))
	return r
}
