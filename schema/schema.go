package schema

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/featenc/column"
	"github.com/arloliu/featenc/format"
)

// ErrInvalidSchema is returned for schema files that cannot be turned into column specs.
var ErrInvalidSchema = errors.New("invalid schema")

// File is the on-disk schema document.
type File struct {
	Columns []ColumnEntry `yaml:"columns"`
}

// ColumnEntry declares one feature column.
type ColumnEntry struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Output string `yaml:"output,omitempty"`
	Sparse bool   `yaml:"sparse"`
}

// Load reads a YAML schema file.
func Load(path string) ([]column.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML schema document into column specs, in file order.
//
//	columns:
//	  - name: country
//	    kind: string        # string | string_array | ntv_array
//	    output: int64       # int32 | int64 | float32 | float64 | string
//	  - name: terms
//	    kind: ntv_array
//	    output: float32
//	    sparse: true
//
// Unknown kinds are kept as format.KindUnknown so that column planning
// reports them with ErrUnsupportedColumnType; an unknown output type is an
// ErrInvalidSchema.
func Parse(data []byte) ([]column.Spec, error) {
	var doc File
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	specs := make([]column.Spec, 0, len(doc.Columns))
	seen := make(map[string]struct{}, len(doc.Columns))
	for i, entry := range doc.Columns {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrInvalidSchema, i)
		}
		if _, dup := seen[entry.Name]; dup {
			return nil, fmt.Errorf("%w: column %q declared twice", ErrInvalidSchema, entry.Name)
		}
		seen[entry.Name] = struct{}{}

		kind, err := format.ParseColumnKind(entry.Kind)
		if err != nil {
			kind = format.KindUnknown
		}

		output := format.OutputUnknown
		if entry.Output != "" {
			output, err = format.ParseOutputType(entry.Output)
			if err != nil {
				return nil, fmt.Errorf("%w: column %q: %v", ErrInvalidSchema, entry.Name, err)
			}
		}

		specs = append(specs, column.Spec{
			Name:   entry.Name,
			Kind:   kind,
			Output: output,
			Sparse: entry.Sparse,
		})
	}

	return specs, nil
}

// Marshal encodes specs as a YAML schema document.
func Marshal(specs []column.Spec) ([]byte, error) {
	doc := File{Columns: make([]ColumnEntry, 0, len(specs))}
	for _, s := range specs {
		entry := ColumnEntry{Name: s.Name, Kind: s.Kind.String(), Sparse: s.Sparse}
		if s.Output != format.OutputUnknown {
			entry.Output = s.Output.String()
		}
		doc.Columns = append(doc.Columns, entry)
	}

	return yaml.Marshal(doc)
}
