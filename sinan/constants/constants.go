package constants

// SINAN export column names consumed by the pipeline.
const (
	ColNotificationNumber = "NU_NOTIFIC"
	ColPatientName        = "NM_PACIENT"
	ColGender             = "CS_SEXO"
	ColPregnancy          = "CS_GESTANT"
	ColBirthDate          = "DT_NASC"
	ColAge                = "IDADE"
	ColPhone              = "NU_TELEFON"
	ColDocumentNumber     = "ID_CNS_SUS"
	ColPostalCode         = "NU_CEP"
	ColNeighborhood       = "NM_BAIRRO"
	ColStreet             = "NM_LOGRADO"
	ColStreetNumber       = "NU_NUMERO"
	ColComplement         = "NM_COMPLEM"
	ColResidenceCode      = "ID_MN_RESI"
	ColOutcome            = "EVOLUCAO"
	ColClassification     = "CLASS_FIN"
	ColOnsetDate          = "DT_SIN_PRI"
	ColNotificationDate   = "DT_NOTIFIC"
)

// Reference dictionary column names (ID_MN_RESI code to names).
const (
	DictColCode         = "ID_MN_RESI"
	DictColMunicipality = "MUNICIPIO RESI"
	DictColState        = "UF RESI"
)

// SINAN document type for the national health card number.
const DocumentTypeCNS = "CNS"

// Label translated to the Go.Data usual-place-of-residence address type.
const AddressTypeCurrent = "Endereço Atual"

// Per-case upload outcome.
const (
	UploadSuccess = "success"
	UploadError   = "error"
)
