package schema

import (
	"encoding/json"
	"sort"

	"marketdesk/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// Definition binds a listing category to its form contract: a prototype
// struct carrying validation tags, decoded from the raw form payload.
// New categories register here instead of growing a switch somewhere.
type Definition struct {
	Category string
	// NewForm returns a pointer to a zero form struct for this category.
	NewForm func() interface{}
}

type Registry struct {
	defs     map[string]Definition
	validate *validator.Validate
}

func NewRegistry() *Registry {
	r := &Registry{
		defs:     make(map[string]Definition),
		validate: validator.New(),
	}
	for _, def := range builtinDefinitions() {
		r.Register(def)
	}
	return r
}

func (r *Registry) Register(def Definition) {
	r.defs[def.Category] = def
}

// Categories returns the registered category names, sorted.
func (r *Registry) Categories() []string {
	out := make([]string, 0, len(r.defs))
	for category := range r.defs {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Decode unmarshals a raw form payload into the category's form struct
// and runs its validation rules.
func (r *Registry) Decode(category string, payload map[string]interface{}) (interface{}, error) {
	def, ok := r.defs[category]
	if !ok {
		return nil, errors.BadRequest("Unknown listing category: "+category, nil)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.BadRequest("Invalid form payload", err)
	}

	form := def.NewForm()
	if err := json.Unmarshal(raw, form); err != nil {
		return nil, errors.BadRequest("Form payload does not match category schema", err)
	}

	if err := r.validate.Struct(form); err != nil {
		return nil, err
	}
	return form, nil
}

// Validate runs Decode and discards the decoded form.
func (r *Registry) Validate(category string, payload map[string]interface{}) error {
	_, err := r.Decode(category, payload)
	return err
}
