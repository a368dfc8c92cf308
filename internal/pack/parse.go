package pack

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaError reports a pack document that is not structurally valid.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid pack: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants plain decoded JSON values.
		raw, err := json.Marshal(packSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://pack.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}

// Parse decodes and structurally validates a pack document.
func Parse(data []byte) (*Pack, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	s, err := schema()
	if err != nil {
		return nil, fmt.Errorf("compile pack schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return nil, &SchemaError{Err: err}
	}

	var p Pack
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &SchemaError{Err: err}
	}
	if p.Questions == nil {
		p.Questions = []Question{}
	}
	return &p, nil
}

// Marshal encodes a pack as two-space indented JSON.
func Marshal(p *Pack) ([]byte, error) {
	out := *p
	if out.Questions == nil {
		out.Questions = []Question{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal pack: %w", err)
	}
	return append(data, '\n'), nil
}
