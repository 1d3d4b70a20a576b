// Package validator guards the two JSON contracts of the linter: the
// sv_lint.json configuration read on startup and the JSON report emitted by
// --format json. Both are checked against embedded CUE schemas. A contract
// violation fails the run immediately with the schema error rather than
// letting a misspelled rule name or a drifted report field pass silently.
package validator

import (
	"embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed config_schema.cue
var configSchemaFS embed.FS

//go:embed report_schema.cue
var reportSchemaFS embed.FS

// Validator validates data against one embedded CUE schema definition.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
	def    string
}

// NewConfig creates a validator for sv_lint.json configuration data.
func NewConfig() (*Validator, error) {
	return newValidator(configSchemaFS, "config_schema.cue", "#Config")
}

// NewReport creates a validator for the JSON report document.
func NewReport() (*Validator, error) {
	return newValidator(reportSchemaFS, "report_schema.cue", "#Report")
}

func newValidator(fs embed.FS, file, def string) (*Validator, error) {
	ctx := cuecontext.New()

	schemaBytes, err := fs.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("loading embedded schema %s: %w", file, err)
	}

	schema := ctx.CompileBytes(schemaBytes)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", file, schema.Err())
	}

	return &Validator{ctx: ctx, schema: schema, def: def}, nil
}

// Validate checks that the data conforms to the schema definition.
// Returns nil if valid, or an error explaining what failed.
func (v *Validator) Validate(data interface{}) error {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling data to JSON: %w", err)
	}
	return v.ValidateJSON(jsonBytes)
}

// ValidateJSON validates JSON bytes directly against the schema definition.
func (v *Validator) ValidateJSON(jsonBytes []byte) error {
	dataValue := v.ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return fmt.Errorf("compiling data as CUE: %w", dataValue.Err())
	}

	def := v.schema.LookupPath(cue.ParsePath(v.def))
	if def.Err() != nil {
		return fmt.Errorf("looking up %s definition: %w", v.def, def.Err())
	}

	// Unification is CUE's type checking. Concreteness makes missing
	// required fields an error, not an unresolved value.
	unified := def.Unify(dataValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

// ValidationErrors returns every individual validation error, or nil when the
// data is valid.
func (v *Validator) ValidationErrors(data interface{}) []string {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return []string{fmt.Sprintf("marshal error: %v", err)}
	}

	dataValue := v.ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return []string{fmt.Sprintf("compile error: %v", dataValue.Err())}
	}

	def := v.schema.LookupPath(cue.ParsePath(v.def))
	if def.Err() != nil {
		return []string{fmt.Sprintf("schema lookup error: %v", def.Err())}
	}

	unified := def.Unify(dataValue)
	err = unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs []string
	for _, e := range errors.Errors(err) {
		errs = append(errs, e.Error())
	}
	return errs
}
