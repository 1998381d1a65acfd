// File: argsparser/register.go

package argsparser

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// argSpec holds what is known about a registered argument
type argSpec struct {
	optional     bool
	defaultValue string // Empty means no default
	help         string
}

// Parser is the registry of known arguments. It is filled with Add and
// AddDefault before Parse is called, and is not modified by parsing.
type Parser struct {
	specs   map[string]argSpec
	appPath string // argv[0] of the last Parse, shown in help
	out     io.Writer
	exit    func(code int)
}

// New creates an empty Parser that prints help to stdout and exits with os.Exit.
func New() *Parser {
	return &Parser{
		specs: make(map[string]argSpec),
		out:   os.Stdout,
		exit:  os.Exit,
	}
}

// SetOutput sets where help is written. A nil writer restores stdout.
func (p *Parser) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	p.out = w
}

// SetExitFunc replaces the action run after help is printed. A nil func restores os.Exit.
func (p *Parser) SetExitFunc(fn func(code int)) {
	if fn == nil {
		fn = os.Exit
	}
	p.exit = fn
}

// Add registers an argument without a default value.
// A mandatory argument (optional=false) must be passed or Parse fails; an
// optional one may be omitted, in which case it has no value at all.
// It returns false only if name is already registered.
func (p *Parser) Add(name, help string, optional bool) bool {
	return p.insert(name, argSpec{optional: optional, help: help})
}

// AddDefault registers an optional argument whose value is defaultValue
// when it is not passed. The default is stored in its canonical string form.
// It returns false only if name is already registered; the existing
// registration is left untouched.
//
// A default whose string form is empty (e.g. "") is a programming error and panics.
func AddDefault[T Scalar](p *Parser, name string, defaultValue T, help string) bool {
	value := FormatValue(defaultValue)
	if value == "" {
		panic(fmt.Errorf("%w: default value is empty for [%s]", ErrEmptyDefault, name))
	}
	return p.insert(name, argSpec{optional: true, defaultValue: value, help: help})
}

func (p *Parser) insert(name string, spec argSpec) bool {
	if _, exists := p.specs[name]; exists {
		return false
	}
	p.specs[name] = spec
	return true
}

// Has reports whether name is registered.
func (p *Parser) Has(name string) bool {
	_, ok := p.specs[name]
	return ok
}

// Names returns the registered argument names in lexicographic order.
func (p *Parser) Names() []string {
	names := make([]string, 0, len(p.specs))
	for name := range p.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
