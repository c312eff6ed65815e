package immargs

import (
	"fmt"
	"strings"
)

// helpRow is one aligned entry in a help section.
type helpRow struct {
	usage string
	help  string
}

// renderHelp builds the full help text: a usage line followed by the
// options, arguments and commands sections. Usage columns are aligned to
// the widest entry across all three sections.
func renderHelp(spec *Spec, binName string) string {
	options := make([]helpRow, 0, len(spec.options))
	for _, opt := range spec.options {
		options = append(options, helpRow{usage: opt.usage, help: opt.help})
	}

	// Positional slots appear only when they carry help text; the usage
	// line already names them all.
	var arguments []helpRow
	var commands []helpRow
	for _, slot := range spec.nonOptions {
		if slot.help != "" {
			arguments = append(arguments, helpRow{usage: slot.usage, help: slot.help})
		}
		for _, cmd := range slot.commands {
			usage := strings.Join(append([]string{cmd.Name}, cmd.Aliases...), ", ")
			commands = append(commands, helpRow{usage: usage, help: cmd.Help})
		}
	}

	width := 0
	for _, rows := range [][]helpRow{options, arguments, commands} {
		for _, row := range rows {
			if len(row.usage) > width {
				width = len(row.usage)
			}
		}
	}

	var b strings.Builder
	b.WriteString("usage: ")
	b.WriteString(binName)
	if len(spec.options) > 0 {
		b.WriteString(" [options]")
	}
	for _, slot := range spec.nonOptions {
		b.WriteString(" ")
		b.WriteString(slot.usage)
		if slot.isCommand() {
			b.WriteString(" [...]")
		}
	}
	b.WriteString("\n\n")

	writeSection(&b, "options", width, options)
	writeSection(&b, "arguments", width, arguments)
	writeSection(&b, "commands", width, commands)

	return b.String()
}

func writeSection(b *strings.Builder, title string, width int, rows []helpRow) {
	if len(rows) == 0 {
		return
	}

	fmt.Fprintf(b, "%s:\n", title)
	for _, row := range rows {
		if row.help != "" {
			fmt.Fprintf(b, "   %-*s     %s\n", width, row.usage, row.help)
		} else {
			fmt.Fprintf(b, "   %s\n", row.usage)
		}
	}
	b.WriteString("\n")
}

// renderVersion builds the version text reported by --version.
func renderVersion(spec *Spec) string {
	version := spec.version
	if version == "" {
		version = "unknown"
	}
	return spec.name + " " + version
}
