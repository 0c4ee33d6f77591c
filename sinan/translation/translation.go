package translation

// Translator converts a raw SINAN code into the value the remote registry
// expects. It is either a static table with a default for absent keys, or a
// pure function; the two are kept as an explicit tagged pair rather than an
// interface so registration sites stay declarative.
type Translator struct {
	table map[string]string
	def   string
	fn    func(string) string
}

// Table builds a translator over a static mapping. Values outside the
// mapping resolve to def; lookups never fail.
func Table(table map[string]string, def string) Translator {
	return Translator{table: table, def: def}
}

// Func builds a translator from an arbitrary single-argument function.
func Func(fn func(string) string) Translator {
	return Translator{fn: fn}
}

func (t Translator) apply(value string) string {
	if t.fn != nil {
		return t.fn(value)
	}
	if v, ok := t.table[value]; ok {
		return v
	}
	return t.def
}

// Registry holds named translators. It is constructed once at startup and
// read-only afterward.
type Registry struct {
	translators map[string]Translator
}

func NewRegistry() *Registry {
	return &Registry{translators: make(map[string]Translator)}
}

func (r *Registry) Register(name string, t Translator) {
	r.translators[name] = t
}

// Translate applies the translator registered under name. When no rule is
// registered the input passes through unchanged; a registered table with an
// absent key resolves to that table's own default instead.
func (r *Registry) Translate(name, value string) string {
	t, ok := r.translators[name]
	if !ok {
		return value
	}
	return t.apply(value)
}
