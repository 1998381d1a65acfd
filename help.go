// File: argsparser/help.go

package argsparser

import (
	"fmt"
	"strings"
)

// RenderHelp describes every registered argument, ordered by name, followed by
// the help flag itself.
func (p *Parser) RenderHelp() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Following is the list of configured arguments for %s:\n", p.appPath)

	for _, name := range p.Names() {
		spec := p.specs[name]
		fmt.Fprintf(&b, "%s%s\n\t", argPrefix, name)
		fmt.Fprintf(&b, "Description: %s, Optional: [%s]", spec.help, FormatValue(spec.optional))
		if spec.optional && spec.defaultValue != "" {
			fmt.Fprintf(&b, ", Default value: [%s]", spec.defaultValue)
		}
		b.WriteString("\n")
	}

	b.WriteString("--help\n\tDescription: To print this message\n\n")
	return b.String()
}

// PrintHelp writes RenderHelp to the configured output.
func (p *Parser) PrintHelp() {
	fmt.Fprint(p.out, p.RenderHelp())
}
