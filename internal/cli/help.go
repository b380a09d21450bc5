package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdbuild/internal/ui/pretty"
)

// Command groups shown in the root help.
const (
	groupDocuments = "documents"
	groupAnalysis  = "analysis"
)

// minColumnGap is the number of spaces that separates a flag or example
// from its description.
const minColumnGap = 2

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
	Dim         lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	plain := lipgloss.NewStyle()
	if !colorEnabled {
		return &HelpStyles{
			Command: plain, Heading: plain, Subcommand: plain, Flag: plain,
			Description: plain, Example: plain, Dim: plain,
		}
	}
	return &HelpStyles{
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Description: plain,
		Example:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders styled help for Cobra commands.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer))}
}

const usageTemplate = `{{ heading "Usage:" }}{{if .Runnable}}
  {{ command .UseLine }}{{end}}{{if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ examples .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}{{ $cmds := .Commands }}
{{- range $group := .Groups}}

{{ heading $group.Title }}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ description .Short }}{{end}}{{end}}
{{- end}}
{{- if not .AllChildCommandsHaveGroup}}

{{ heading "Other Commands:" }}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ description .Short }}{{end}}{{end}}
{{- end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ command .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ trimTrailing . }}

{{end}}` + usageTemplate

// ApplyToCommand installs the styled templates on cmd. Subcommands inherit
// them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := template.FuncMap{
		"command":      h.styles.Command.Render,
		"heading":      h.styles.Heading.Render,
		"subcommand":   h.styles.Subcommand.Render,
		"description":  h.styles.Description.Render,
		"dim":          h.styles.Dim.Render,
		"flags":        h.flagUsages,
		"examples":     h.examples,
		"rpad":         rpad,
		"trimTrailing": trimTrailingWhitespaces,
	}

	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		if err := usage.Execute(command.OutOrStderr(), command); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := help.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// flagUsages styles pflag's usage table: flag names, dimmed value types and
// descriptions.
func (h *HelpFormatter) flagUsages(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		indent, left, right, ok := splitColumns(line)
		if !ok {
			continue
		}
		padding := strings.Repeat(" ", len(line)-len(indent)-len(left)-len(right))
		lines[i] = indent + h.styleFlagTokens(left) + padding + h.styles.Description.Render(right)
	}
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) styleFlagTokens(part string) string {
	tokens := strings.Fields(part)
	for i, token := range tokens {
		if !strings.HasPrefix(token, "-") {
			tokens[i] = h.styles.Dim.Render(token)
			continue
		}
		name, comma := strings.CutSuffix(token, ",")
		tokens[i] = h.styles.Flag.Render(name)
		if comma {
			tokens[i] += ","
		}
	}
	return strings.Join(tokens, " ")
}

// examples styles each example line: the command, then a dimmed comment.
// Comments either follow a '#' or are separated by a wide gap.
func (h *HelpFormatter) examples(text string) string {
	lines := strings.Split(trimTrailingWhitespaces(text), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if cmdPart, comment, found := strings.Cut(line, "#"); found {
			lines[i] = h.styles.Example.Render(cmdPart) + h.styles.Dim.Render("#"+comment)
			continue
		}
		indent, left, right, ok := splitColumns(line)
		if !ok {
			lines[i] = h.styles.Example.Render(line)
			continue
		}
		padding := strings.Repeat(" ", len(line)-len(indent)-len(left)-len(right))
		lines[i] = indent + h.styles.Example.Render(left) + padding + h.styles.Dim.Render(right)
	}
	return strings.Join(lines, "\n")
}

// splitColumns splits a help line at the first gap of minColumnGap or more
// spaces after its leading indentation.
func splitColumns(line string) (indent, left, right string, ok bool) {
	trimmed := strings.TrimLeft(line, " ")
	indent = line[:len(line)-len(trimmed)]

	gap := strings.Repeat(" ", minColumnGap)
	idx := strings.Index(trimmed, gap)
	if idx <= 0 {
		return indent, trimmed, "", false
	}
	right = strings.TrimLeft(trimmed[idx:], " ")
	if right == "" {
		return indent, trimmed, "", false
	}
	return indent, trimmed[:idx], right, true
}

// rpad adds padding to the right of a string.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

// trimTrailingWhitespaces removes trailing whitespace from lines.
func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
