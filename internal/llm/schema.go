package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is the JSON shape a prompt's reply must have.
type Schema struct {
	// Name is the kebab-case schema name sent to providers that want one.
	Name string

	Description string

	// Definition is a JSON Schema document.
	Definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	compErr  error
}

// Check reports whether raw is JSON matching the schema.
func (s *Schema) Check(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("reply is not JSON: %w", err)
	}
	compiled, err := s.compile()
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("reply does not match %s: %w", s.Name, err)
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		// The compiler wants plain decoded JSON values.
		raw, err := json.Marshal(s.Definition)
		if err != nil {
			s.compErr = fmt.Errorf("marshal schema %s: %w", s.Name, err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			s.compErr = fmt.Errorf("decode schema %s: %w", s.Name, err)
			return
		}

		c := jsonschema.NewCompiler()
		url := "schema://" + s.Name + ".json"
		if err := c.AddResource(url, def); err != nil {
			s.compErr = fmt.Errorf("add schema %s: %w", s.Name, err)
			return
		}
		s.compiled, s.compErr = c.Compile(url)
	})
	return s.compiled, s.compErr
}

// checkReply validates a reply when the prompt carries a schema.
func checkReply(provider string, p Prompt, raw json.RawMessage) error {
	if p.Schema == nil {
		return nil
	}
	if err := p.Schema.Check(raw); err != nil {
		return malformed(provider, raw, err)
	}
	return nil
}
