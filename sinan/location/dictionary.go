package location

// Dictionary resolves IBGE residence-municipality codes to the municipality
// and state names used by the location tree. Built once from the reference
// spreadsheet; unknown codes resolve to "".
type Dictionary struct {
	municipalities map[string]string
	states         map[string]string
}

func NewDictionary(municipalities, states map[string]string) *Dictionary {
	if municipalities == nil {
		municipalities = make(map[string]string)
	}
	if states == nil {
		states = make(map[string]string)
	}
	return &Dictionary{municipalities: municipalities, states: states}
}

func (d *Dictionary) Municipality(code string) string {
	return d.municipalities[code]
}

func (d *Dictionary) State(code string) string {
	return d.states[code]
}
