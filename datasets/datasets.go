// Package datasets ships the built-in formal contexts and reads and writes
// contexts in YAML.
//
// A context file looks like this:
//
//	name: animals
//	description: Five animals described by biological and behavioral traits.
//	objects: [Cat, Dog, Dolphin, Eagle, Shark]
//	attributes: [Mammal, Can_Swim, Has_Fur, Can_Fly, Predator]
//	incidence:
//	  - [1, 0, 1, 0, 1]
//	  ...
//
// Incidence rows follow the object order and hold 0 or 1 per attribute.
package datasets

import (
	"bytes"
	"embed"
	"io"
	"os"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/gofca/fca"
	"github.com/YuminosukeSato/gofca/pkg/errors"
)

//go:embed data/*.yaml
var builtin embed.FS

// Built-in dataset names.
const (
	AnimalsName              = "animals"
	ProgrammingLanguagesName = "programming_languages"
)

// Dataset is a named formal context.
type Dataset struct {
	Name        string
	Description string
	Context     *fca.FormalContext
}

// file is the on-disk layout.
type file struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Objects     []string `yaml:"objects"`
	Attributes  []string `yaml:"attributes"`
	Incidence   [][]int  `yaml:"incidence,flow"`
}

// Names lists the built-in datasets in alphabetical order.
func Names() []string {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	slices.Sort(names)
	return names
}

// Load returns the built-in dataset with the given name.
func Load(name string) (*Dataset, error) {
	raw, err := builtin.ReadFile(path.Join("data", name+".yaml"))
	if err != nil {
		return nil, errors.NewValidationError("dataset", "unknown dataset, expected one of "+strings.Join(Names(), ", "), name)
	}
	return Decode(bytes.NewReader(raw))
}

// LoadFile reads a context file from disk.
func LoadFile(filename string) (*Dataset, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open context file %s", filename)
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return d, nil
}

// Decode parses one context document. Unknown keys are rejected.
func Decode(r io.Reader) (*Dataset, error) {
	const op = "datasets.Decode"

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f file
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, errors.NewInvalidContextError(op, "empty document")
		}
		return nil, errors.WrapInvalidContext(op, "malformed context file", err)
	}
	if f.Incidence == nil {
		f.Incidence = make([][]int, 0)
	}

	ctx, err := fca.NewFormalContextFromInts(f.Objects, f.Attributes, f.Incidence)
	if err != nil {
		return nil, err
	}
	return &Dataset{Name: f.Name, Description: f.Description, Context: ctx}, nil
}

// Encode writes d in the context file format.
func Encode(w io.Writer, d *Dataset) error {
	c := d.Context
	f := file{
		Name:        d.Name,
		Description: d.Description,
		Objects:     c.Objects(),
		Attributes:  c.Attributes(),
		Incidence:   make([][]int, c.NumObjects()),
	}
	for g := range f.Incidence {
		row := make([]int, c.NumAttributes())
		for m := range row {
			if c.Incident(g, m) {
				row[m] = 1
			}
		}
		f.Incidence[g] = row
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return errors.Wrap(err, "encode context")
	}
	return errors.WithStack(enc.Close())
}

// Animals returns the built-in animals context.
func Animals() *fca.FormalContext { return mustLoad(AnimalsName) }

// ProgrammingLanguages returns the built-in programming languages context.
func ProgrammingLanguages() *fca.FormalContext { return mustLoad(ProgrammingLanguagesName) }

func mustLoad(name string) *fca.FormalContext {
	d, err := Load(name)
	if err != nil {
		panic(err)
	}
	return d.Context
}
