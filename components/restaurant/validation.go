package restaurant

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrValidation marks operator input that failed validation.
var ErrValidation = errors.New("restaurant: validation failed")

//go:embed schemas/*.json
var formSchemas embed.FS

// ValidationError lists the problems found in a submitted form.
type ValidationError struct {
	Form     string
	Problems []string
	Err      error
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return fmt.Sprintf("restaurant: %s form is invalid", e.Form)
	}
	return fmt.Sprintf("restaurant: %s form is invalid: %s", e.Form, strings.Join(e.Problems, "; "))
}

// Unwrap exposes ErrValidation and the underlying schema error.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}

func invalid(form string, problems ...string) error {
	return &ValidationError{Form: form, Problems: problems}
}

// FormValidator validates form payloads before they reach the store.
type FormValidator interface {
	Validate(form string, payload any) error
}

// JSONSchemaValidator compiles the embedded form schemas and validates
// payloads against them.
type JSONSchemaValidator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewJSONSchemaValidator builds a validator backed by jsonschema v5.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate normalizes payload through JSON and checks it against the named
// form schema. Forms without a schema pass.
func (v *JSONSchemaValidator) Validate(form string, payload any) error {
	schema, err := v.schemaFor(form)
	if err != nil {
		return err
	}
	if schema == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("restaurant: marshal %s form: %w", form, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("restaurant: normalize %s form: %w", form, err)
	}
	if err := schema.Validate(doc); err != nil {
		return &ValidationError{Form: form, Problems: schemaProblems(err), Err: err}
	}
	return nil
}

func (v *JSONSchemaValidator) schemaFor(form string) (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema, ok := v.compiled[form]
	v.mu.RUnlock()
	if ok {
		return schema, nil
	}
	name := form + ".json"
	data, err := formSchemas.ReadFile("schemas/" + name)
	if err != nil {
		return nil, nil
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("restaurant: load schema %s: %w", form, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("restaurant: compile schema %s: %w", form, err)
	}
	v.mu.Lock()
	v.compiled[form] = compiled
	v.mu.Unlock()
	return compiled, nil
}

// schemaProblems flattens the leaf causes into "location: message" lines.
func schemaProblems(err error) []string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []string{err.Error()}
	}
	var out []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := strings.TrimPrefix(e.InstanceLocation, "/")
			if loc == "" {
				out = append(out, e.Message)
				return
			}
			out = append(out, loc+": "+e.Message)
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)
	sort.Strings(out)
	return out
}

type noopFormValidator struct{}

func (noopFormValidator) Validate(string, any) error { return nil }
