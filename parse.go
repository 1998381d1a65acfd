// File: argsparser/parse.go

package argsparser

import (
	"slices"
	"strings"
)

const (
	argPrefix    = "--"
	valueSep     = "="
	expectedForm = "--arg=value"
)

var helpTokens = []string{"help", "--help", "-h"}

// Parse validates argv against the registered arguments and returns the values.
// argv[0] is the program path and every following element must look like
// --name=value. Later occurrences of a name overwrite earlier ones.
//
// When the only argument is "help", "--help" or "-h", help is printed and the
// exit action is run with status 0. Should that action return, Parse returns
// ErrHelpRequested.
func (p *Parser) Parse(argv []string) (*Args, error) {
	if len(argv) > 0 {
		p.appPath = argv[0]
	}

	if len(argv) == 2 && slices.Contains(helpTokens, argv[1]) {
		p.PrintHelp()
		p.exit(0)
		return nil, ErrHelpRequested
	}

	values := make(map[string]string)
	explicit := make(map[string]bool)

	for i := 1; i < len(argv); i++ {
		name, value, err := splitToken(argv[i])
		if err != nil {
			return nil, err
		}
		if !p.Has(name) {
			return nil, newError(ErrUnknownArgument, "Unknown arg: [%s]. Try --help", name)
		}
		values[name] = value
		explicit[name] = true
	}

	// Fill defaults, then make sure every mandatory argument was passed
	for _, name := range p.Names() {
		spec := p.specs[name]
		_, passed := values[name]

		if spec.optional {
			if !passed && spec.defaultValue != "" {
				values[name] = spec.defaultValue
			}
			continue
		}

		if !passed {
			return nil, newError(ErrMissingMandatory,
				"Mandatory argument [%s] not passed in arguments. Try --help", name)
		}
	}

	return &Args{values: values, explicit: explicit}, nil
}

// splitToken turns "--name=value" into its stripped name and value.
func splitToken(token string) (string, string, error) {
	formatErr := newError(ErrFormat,
		"Unexpected format: [%s], expected format is: [%s]. Try --help", token, expectedForm)

	if !strings.HasPrefix(token, argPrefix) {
		return "", "", formatErr
	}
	body := strings.TrimPrefix(token, argPrefix)

	if strings.Count(body, valueSep) != 1 {
		return "", "", formatErr
	}

	name, value, _ := strings.Cut(body, valueSep)
	name = Strip(name, DefaultStripChars)
	value = Strip(value, DefaultStripChars)
	if name == "" || value == "" {
		return "", "", formatErr
	}

	return name, value, nil
}
