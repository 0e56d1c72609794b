package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockroom/pagenav/internal/logging"
	"github.com/stockroom/pagenav/internal/pagerange"
)

// gotoParams holds the flags of the goto command.
type gotoParams struct {
	current   int
	requested int
	total     int
	output    string
}

// NewGotoCmd creates the goto command, which validates a page change request.
// A rejected request is reported, not treated as a failure.
func NewGotoCmd() *cobra.Command {
	var params gotoParams

	cmd := &cobra.Command{
		Use:   "goto",
		Short: "Validate a page change",
		Long: `Checks whether moving from --current to --requested is allowed within --total
pages and prints the resulting page and direction. Requests for the current page or
for a page outside the listing print "rejected" and exit successfully.`,
		Example: `  # Move forward one page
  pagenav goto --current 3 --requested 4 --total 10

  # Jump past the end (rejected)
  pagenav goto --current 10 --requested 11 --total 10 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeGoto(cmd, params)
		},
	}

	cmd.Flags().IntVar(&params.current, "current", 1, "current page (1-based)")
	cmd.Flags().IntVar(&params.requested, "requested", 0, "requested page (1-based)")
	cmd.Flags().IntVar(&params.total, "total", 0, "total number of pages")
	addOutputFlag(cmd, &params.output)
	_ = cmd.MarkFlagRequired("requested")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func executeGoto(cmd *cobra.Command, params gotoParams) error {
	format, err := resolveOutput(params.output)
	if err != nil {
		return err
	}

	result, tr, err := pagerange.Answer(params.current, params.requested, params.total)
	switch {
	case errors.Is(err, pagerange.ErrRejected):
		logging.FromContext(cmd.Context()).Debug().
			Str("component", "cli").
			Err(err).
			Msg("page change rejected")
	case err != nil:
		return err
	}

	if format != outputTable {
		return writeStructured(cmd.OutOrStdout(), format, result)
	}

	out := cmd.OutOrStdout()
	if !result.Accepted {
		_, _ = fmt.Fprintln(out, "rejected")
		return nil
	}
	_, _ = fmt.Fprintf(out, "page %d -> %d (%s)\n", tr.From, tr.NewPage, result.Direction)
	return nil
}
