package disease

import (
	"fmt"
	"sort"

	sinanerrors "github.com/dive-sc/sinan-godata-app/sinan/errors"
	"github.com/dive-sc/sinan-godata-app/sinan/translation"
)

// FieldType declares how a questionnaire field's cell is interpreted.
type FieldType int

const (
	FieldString FieldType = iota
	FieldDate
	FieldLocation
)

type Field struct {
	Name string
	Type FieldType
}

// Spec describes one disease module: the questionnaire schema, the source
// column for each field, and the code tables for classification and outcome.
// Loaded once at startup, read-only afterward.
type Spec struct {
	Name           string
	Questionnaire  []Field
	Columns        map[string]string
	Classification map[string]string
	Outcome        map[string]string
}

// valid reports whether the module exports all four required artifacts.
func (s Spec) valid() bool {
	return s.Name != "" &&
		len(s.Questionnaire) > 0 &&
		s.Columns != nil &&
		s.Classification != nil &&
		s.Outcome != nil
}

// Registry holds the accepted disease modules.
type Registry struct {
	specs map[string]Spec
}

// NewRegistry validates each spec and registers the accepted ones. Specs
// missing any required artifact are skipped, so a half-built disease module
// never breaks the registry. Accepted modules get their classification and
// outcome tables registered into tr under disease-qualified names.
func NewRegistry(tr *translation.Registry, specs ...Spec) *Registry {
	r := &Registry{specs: make(map[string]Spec)}
	for _, s := range specs {
		if !s.valid() {
			continue
		}
		tr.Register(fmt.Sprintf("%s_case_classification", s.Name),
			translation.Table(s.Classification, ""))
		tr.Register(fmt.Sprintf("%s_outcome", s.Name),
			translation.Table(s.Outcome, ""))
		r.specs[s.Name] = s
	}
	return r
}

func (r *Registry) Get(name string) (Spec, error) {
	s, ok := r.specs[name]
	if !ok {
		return Spec{}, &sinanerrors.ConfigurationError{
			Msg: fmt.Sprintf("disease module %q is not registered", name),
		}
	}
	return s, nil
}

// Diseases lists the registered disease names, sorted.
func (r *Registry) Diseases() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
