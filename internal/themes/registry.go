// Package themes holds the static definitions of every diagnostic theme and
// the registry that serves them. Definitions are plain values translated
// one-to-one from the questionnaire catalog; nothing here is loaded
// dynamically, and an id outside the registry is an explicit error.
package themes

import (
	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
)

// Registry maps theme ids to validated definitions. Built once at startup,
// read-only afterward; safe for concurrent use.
type Registry struct {
	order []string
	byID  map[string]*diagnosis.ThemeDefinition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*diagnosis.ThemeDefinition)}
}

// Register validates a definition and adds it. Registration order is the
// portal display order.
func (r *Registry) Register(def *diagnosis.ThemeDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if _, exists := r.byID[def.ID]; !exists {
		r.order = append(r.order, def.ID)
	}
	r.byID[def.ID] = def
	return nil
}

// Load returns the definition for a theme id, or UnknownThemeError if the
// id is not registered. It never returns a default or empty definition.
func (r *Registry) Load(id string) (*diagnosis.ThemeDefinition, error) {
	def, ok := r.byID[id]
	if !ok {
		return nil, &diagnosis.UnknownThemeError{ID: id}
	}
	return def, nil
}

// IDs returns the registered theme ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// NewDefaultRegistry builds the registry with the full theme catalog.
func NewDefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	for _, def := range []*diagnosis.ThemeDefinition{
		Factory(),
		Cashflow(),
		Retention(),
		ProductivityOffice(),
		Sales(),
		Succession(),
	} {
		if err := r.Register(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}
