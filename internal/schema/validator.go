package schema

import (
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/inittide/tidectl/internal/types"
)

// Validator validates normalized YAML documents against a compiled JSON Schema.
type Validator struct {
	path    string
	schema  *jsonschema.Schema
	printer *message.Printer
}

// NewValidator compiles the schema at path.
func NewValidator(path string) (*Validator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schema file not found: %s", path)
	}
	defer f.Close()

	doc, err := jsonschema.UnmarshalJSON(f)
	if err != nil {
		return nil, fmt.Errorf("schema JSON parsing error: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(path, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	sch, err := compiler.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("schema itself is invalid: %w", err)
	}

	return &Validator{
		path:    path,
		schema:  sch,
		printer: message.NewPrinter(language.English),
	}, nil
}

// Path returns the schema file path.
func (v *Validator) Path() string {
	return v.path
}

// Validate returns one ERROR finding per leaf validation error, or nil when
// the document is schema compliant.
func (v *Validator) Validate(doc any) []*types.Finding {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}

	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []*types.Finding{types.NewFinding(types.SeverityError, err.Error())}
	}

	var findings []*types.Finding
	v.collect(verr, &findings)
	return findings
}

// collect flattens the error tree into its leaf causes; intermediate nodes
// only repeat what the leaves already say.
func (v *Validator) collect(e *jsonschema.ValidationError, findings *[]*types.Finding) {
	if len(e.Causes) == 0 {
		*findings = append(*findings, types.NewFinding(types.SeverityError, e.ErrorKind.LocalizedString(v.printer)).
			WithPath(instancePath(e.InstanceLocation)).
			WithKeyword(keyword(e.ErrorKind)))
		return
	}
	for _, cause := range e.Causes {
		v.collect(cause, findings)
	}
}

func instancePath(loc []string) string {
	if len(loc) == 0 {
		return "root"
	}
	return strings.Join(loc, "/")
}

func keyword(kind jsonschema.ErrorKind) string {
	path := kind.KeywordPath()
	if len(path) == 0 {
		return ""
	}
	return path[len(path)-1]
}
