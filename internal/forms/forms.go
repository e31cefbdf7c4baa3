// Package forms loads declarative verse-form definitions and checks a
// poem's metrics against them.
//
// Forms are written in CUE and validated against the #Form schema in
// forms.cue. A built-in catalog (soneto, copla, seguidilla, decima, haiku,
// romance) ships embedded; users can layer their own .cue files on top of
// it from a directory.
package forms

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/token"
)

//go:embed forms.cue
var catalogCUE []byte

// Form is a compiled verse-form definition.
type Form struct {
	// Name is the catalog key, e.g. "soneto".
	Name string `json:"name"`

	Description string `json:"description,omitempty"`

	// Lines is the expected number of non-blank lines; 0 means any.
	Lines int `json:"lines,omitempty"`

	// Meter is the expected syllable count per line; 0 means any.
	Meter int `json:"meter,omitempty"`

	// Pattern lists per-line syllable expectations and cycles over the
	// poem's lines. A non-empty pattern overrides Meter.
	Pattern []int `json:"pattern,omitempty"`

	// Tolerance is the allowed absolute deviation per line.
	Tolerance int `json:"tolerance,omitempty"`
}

// CompileError reports a problem in a form definition.
type CompileError struct {
	Form    string
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	target := e.Form
	if e.Field != "" {
		target += "." + e.Field
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: form %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), target, e.Message)
	}
	return fmt.Sprintf("form %s: %s", target, e.Message)
}

// Catalog is a named set of verse forms.
type Catalog struct {
	forms map[string]Form
}

// Default compiles the embedded catalog.
func Default() (*Catalog, error) {
	ctx := cuecontext.New()
	root := ctx.CompileBytes(catalogCUE, cue.Filename("forms.cue"))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("compile embedded catalog: %w", err)
	}
	return build(root)
}

// LoadDir compiles the embedded catalog plus every .cue file in dir,
// unified on top of it. User files add forms or tighten existing ones;
// they are validated against the same #Form schema.
func LoadDir(dir string) (*Catalog, error) {
	ctx := cuecontext.New()
	root := ctx.CompileBytes(catalogCUE, cue.Filename("forms.cue"))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("compile embedded catalog: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read forms directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".cue") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read form file %s: %w", path, err)
		}
		v := ctx.CompileBytes(data, cue.Filename(path))
		if err := v.Err(); err != nil {
			return nil, fmt.Errorf("compile form file %s: %w", path, err)
		}
		root = root.Unify(v)
		if err := root.Err(); err != nil {
			return nil, fmt.Errorf("merge form file %s: %w", path, err)
		}
	}

	if err := root.Validate(cue.Concrete(false)); err != nil {
		return nil, fmt.Errorf("validate forms: %w", err)
	}
	return build(root)
}

// Get returns the form with the given name.
func (c *Catalog) Get(name string) (Form, bool) {
	f, ok := c.forms[name]
	return f, ok
}

// Names returns the catalog's form names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.forms))
	for name := range c.forms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the forms in name order.
func (c *Catalog) All() []Form {
	all := make([]Form, 0, len(c.forms))
	for _, name := range c.Names() {
		all = append(all, c.forms[name])
	}
	return all
}

// build extracts every entry under "forms" from a compiled CUE value.
func build(root cue.Value) (*Catalog, error) {
	formsVal := root.LookupPath(cue.ParsePath("forms"))
	if !formsVal.Exists() {
		return nil, &CompileError{Form: "forms", Message: "catalog has no forms struct"}
	}

	cat := &Catalog{forms: make(map[string]Form)}
	it, err := formsVal.Fields()
	if err != nil {
		return nil, fmt.Errorf("iterate forms: %w", err)
	}
	for it.Next() {
		name := it.Selector().String()
		form, err := compileForm(name, it.Value())
		if err != nil {
			return nil, err
		}
		cat.forms[name] = form
	}
	return cat, nil
}

// compileForm parses a single CUE form value into a Form.
// Defaults from the #Form schema make every field concrete on lookup.
func compileForm(name string, v cue.Value) (Form, error) {
	form := Form{Name: name}

	if err := v.Err(); err != nil {
		return form, &CompileError{Form: name, Message: err.Error(), Pos: v.Pos()}
	}

	desc, err := lookupString(v, "description")
	if err != nil {
		return form, &CompileError{Form: name, Field: "description", Message: err.Error(), Pos: v.Pos()}
	}
	form.Description = desc

	for field, dst := range map[string]*int{
		"lines":     &form.Lines,
		"meter":     &form.Meter,
		"tolerance": &form.Tolerance,
	} {
		n, err := lookupInt(v, field)
		if err != nil {
			return form, &CompileError{Form: name, Field: field, Message: err.Error(), Pos: v.Pos()}
		}
		*dst = n
	}

	patternVal := v.LookupPath(cue.ParsePath("pattern"))
	if patternVal.Exists() {
		list, err := patternVal.List()
		if err == nil {
			for list.Next() {
				n, err := list.Value().Int64()
				if err != nil {
					return form, &CompileError{Form: name, Field: "pattern", Message: err.Error(), Pos: patternVal.Pos()}
				}
				form.Pattern = append(form.Pattern, int(n))
			}
		}
	}

	if form.Lines > 0 && len(form.Pattern) > form.Lines {
		return form, &CompileError{
			Form:    name,
			Field:   "pattern",
			Message: fmt.Sprintf("pattern has %d entries but form has %d lines", len(form.Pattern), form.Lines),
			Pos:     v.Pos(),
		}
	}

	return form, nil
}

func lookupString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", nil
	}
	return fv.String()
}

func lookupInt(v cue.Value, field string) (int, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return 0, nil
	}
	n, err := fv.Int64()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
