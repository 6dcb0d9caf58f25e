// Package worksheet reads batches of vector addition problems from JSON.
package worksheet

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/bendazz/vector-practice/geometry"
)

//go:embed worksheet.schema.json
var schemaJSON string

const schemaURL = "worksheet.schema.json"

var schema = jsonschema.MustCompileString(schemaURL, schemaJSON)

// Worksheet is a titled list of problems.
type Worksheet struct {
	Title    string    `json:"title"`
	Problems []Problem `json:"problems"`
}

// Problem is one named vector pair. Name is used for output file names.
type Problem struct {
	Name string `json:"name"`
	A    [2]int `json:"a"`
	B    [2]int `json:"b"`
}

func (p Problem) Pair() geometry.VectorPair {
	return geometry.NewVectorPair(p.A[0], p.A[1], p.B[0], p.B[1])
}

// Load reads and validates the worksheet at path.
func Load(path string) (*Worksheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open worksheet: %w", err)
	}
	defer f.Close()

	ws, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ws, nil
}

// Parse validates the JSON in r against the worksheet schema and decodes it.
func Parse(r io.Reader) (*Worksheet, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode worksheet json: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("worksheet validation failed: %w", err)
	}

	var ws Worksheet
	if err := json.NewDecoder(bytes.NewReader(b)).Decode(&ws); err != nil {
		return nil, fmt.Errorf("failed to unmarshal worksheet: %w", err)
	}

	seen := make(map[string]struct{}, len(ws.Problems))
	for _, p := range ws.Problems {
		if _, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("duplicate problem name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	return &ws, nil
}
