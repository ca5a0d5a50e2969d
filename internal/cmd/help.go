package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msbee/msbee/internal/ui"
)

var (
	groupHeaderRE   = regexp.MustCompile(`(?m)^([A-Z][A-Za-z &]+:)\s*$`)
	sectionHeaderRE = regexp.MustCompile(`(?m)^(Examples|Flags|Usage|Global Flags|Aliases|Available Commands|Output formats|Keys):`)
	cmdLineRE       = regexp.MustCompile(`(?m)^(  )([a-z][a-z0-9]*(?:-[a-z0-9]+)*)(\s{2,})(.*)$`)
	flagLineRE      = regexp.MustCompile(`(?m)^(\s+)(-\w,\s+--[\w-]+|--[\w-]+)(\s+)(string|int|duration|bool)?(\s*.*)$`)
	defaultRE       = regexp.MustCompile(`\(default[^)]*\)`)
)

// colorizedHelpFunc prints cobra's help with accented headers and
// highlighted commands and flags.
func colorizedHelpFunc(cmd *cobra.Command, _ []string) {
	var out strings.Builder
	switch {
	case cmd.Long != "":
		out.WriteString(cmd.Long)
		out.WriteString("\n\n")
	case cmd.Short != "":
		out.WriteString(cmd.Short)
		out.WriteString("\n\n")
	}
	out.WriteString(cmd.UsageString())
	fmt.Fprint(cmd.OutOrStdout(), colorizeHelpOutput(out.String()))
}

func colorizeHelpOutput(help string) string {
	result := groupHeaderRE.ReplaceAllStringFunc(help, func(match string) string {
		return ui.RenderAccent(strings.TrimSpace(match))
	})
	result = sectionHeaderRE.ReplaceAllStringFunc(result, ui.RenderAccent)

	result = cmdLineRE.ReplaceAllStringFunc(result, func(match string) string {
		parts := cmdLineRE.FindStringSubmatch(match)
		if len(parts) != 5 {
			return match
		}
		return parts[1] + ui.RenderBold(parts[2]) + parts[3] + parts[4]
	})

	result = flagLineRE.ReplaceAllStringFunc(result, func(match string) string {
		parts := flagLineRE.FindStringSubmatch(match)
		if len(parts) != 6 {
			return match
		}
		desc := defaultRE.ReplaceAllStringFunc(parts[5], ui.RenderMuted)
		if parts[4] != "" {
			return parts[1] + ui.RenderBold(parts[2]) + parts[3] + ui.RenderMuted(parts[4]) + desc
		}
		return parts[1] + ui.RenderBold(parts[2]) + parts[3] + desc
	})

	return result
}

func init() {
	rootCmd.SetHelpFunc(colorizedHelpFunc)
}
