package report

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://vrfit-report.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// ErrInvalidReport is returned when a rendered report fails schema validation.
type ErrInvalidReport struct {
	Content []byte
	Err     error
}

func (e *ErrInvalidReport) Error() string {
	return fmt.Sprintf("invalid report: %v", e.Err)
}

func (e *ErrInvalidReport) Unwrap() error {
	return e.Err
}

// JSONFormatter writes a report as schema-checked JSON.
type JSONFormatter struct {
	indent bool
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(indent bool) *JSONFormatter {
	return &JSONFormatter{indent: indent}
}

// Format validates r against the report schema and writes it to w.
// Nothing is written when validation fails.
func (f *JSONFormatter) Format(w io.Writer, r Report) error {
	var (
		data []byte
		err  error
	)
	if f.indent {
		data, err = json.MarshalIndent(r, "", "  ")
	} else {
		data, err = json.Marshal(r)
	}
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := Validate(data); err != nil {
		return err
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Validate checks raw JSON against the embedded report schema.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidReport{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := reportSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(parsed); err != nil {
		return &ErrInvalidReport{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func reportSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse report schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile report schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}
