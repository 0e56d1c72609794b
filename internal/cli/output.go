package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/stockroom/pagenav/internal/config"
	"github.com/stockroom/pagenav/internal/pagerange"
	"github.com/stockroom/pagenav/internal/tui"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"

	tabPadding = 2
)

// ErrUnsupportedOutput is returned for an unknown --output value.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// addOutputFlag registers --output on cmd.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", "",
		"output format: table, json or yaml (default from config)")
}

// resolveOutput returns the effective output format for the --output flag value.
func resolveOutput(flagValue string) (string, error) {
	format := config.GetOutputFormat(flagValue)
	switch format {
	case outputTable, outputJSON, outputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: table, json, yaml)", ErrUnsupportedOutput, format)
	}
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, format)
	}
}

// renderBar renders layout for cmd's output: styled on a color terminal, plain otherwise.
func renderBar(cmd *cobra.Command, layout pagerange.Layout) string {
	if f, ok := cmd.OutOrStdout().(*os.File); ok && f == os.Stdout &&
		tui.DetectOutputMode(false, false) == tui.OutputModeStyled {
		return tui.RenderPaginationBar(layout)
	}
	return tui.RenderPlainBar(layout)
}

// newPrinter returns a number printer for the configured locale.
func newPrinter() *message.Printer {
	tag, err := language.Parse(config.GetGlobalConfig().Output.Locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}
