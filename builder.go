// File: argsparser/builder.go

package argsparser

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ValidatorFunc checks a fully parsed Args and returns an error if it is not acceptable.
type ValidatorFunc func(a *Args) error

// Builder provides a fluent interface for parsing a command line
type Builder struct {
	parser     *Parser
	args       []string
	out        io.Writer
	exit       func(code int)
	required   []string
	validators []ValidatorFunc
}

// NewBuilder creates a builder with an empty Parser reading os.Args
func NewBuilder() *Builder {
	return &Builder{
		parser:     New(),
		args:       os.Args,
		validators: make([]ValidatorFunc, 0),
	}
}

// WithParser uses p, with its registered arguments, instead of an empty Parser
func (b *Builder) WithParser(p *Parser) *Builder {
	if p != nil {
		b.parser = p
	}
	return b
}

// WithArgs sets the argument vector, including the program path at index 0
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithOutput sets where help is written
func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.out = w
	return b
}

// WithExitFunc sets the action run after help is printed
func (b *Builder) WithExitFunc(fn func(code int)) *Builder {
	b.exit = fn
	return b
}

// WithRequired demands that names have a value after parsing, whether passed or defaulted
func (b *Builder) WithRequired(names ...string) *Builder {
	b.required = append(b.required, names...)
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Parser returns the underlying Parser so arguments can be registered on it
func (b *Builder) Parser() *Parser {
	return b.parser
}

// Build parses the arguments and runs the checks
func (b *Builder) Build() (*Args, error) {
	if b.out != nil {
		b.parser.SetOutput(b.out)
	}
	if b.exit != nil {
		b.parser.SetExitFunc(b.exit)
	}

	args, err := b.parser.Parse(b.args)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, name := range b.required {
		if !args.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, newError(ErrNotFound, "Required arguments have no value: [%s]", strings.Join(missing, ", "))
	}

	for _, validator := range b.validators {
		if err := validator(args); err != nil {
			return nil, fmt.Errorf("argument validation failed: %w", err)
		}
	}

	return args, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Args {
	args, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("argument parsing failed: %v", err))
	}
	return args
}

// BuildAndScan builds and decodes the result into the provided target pointer
func (b *Builder) BuildAndScan(target any) error {
	args, err := b.Build()
	if err != nil {
		return err
	}

	if err := args.Scan(target); err != nil {
		return fmt.Errorf("failed to scan arguments into target: %w", err)
	}
	return nil
}
