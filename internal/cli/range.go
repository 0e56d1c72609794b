package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockroom/pagenav/internal/config"
	"github.com/stockroom/pagenav/internal/logging"
	"github.com/stockroom/pagenav/internal/pagerange"
)

// rangeParams holds the flags of the range command.
type rangeParams struct {
	current int
	total   int
	delta   int
	output  string
}

// NewRangeCmd creates the range command, which prints the pagination controls for a
// position in a listing.
func NewRangeCmd() *cobra.Command {
	var params rangeParams

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Show the pagination controls for a page",
		Long: `Computes the page tokens shown around the current page: the first and last
pages are always present, up to --delta siblings on each side of the current page,
and an ellipsis wherever more than one page is hidden.`,
		Example: `  # Controls for page 10 of 20
  pagenav range --current 10 --total 20

  # Narrow window, as JSON
  pagenav range --current 10 --total 20 --delta 1 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("delta") {
				params.delta = config.GetGlobalConfig().Pagination.Delta
			}
			return executeRange(cmd, params)
		},
	}

	cmd.Flags().IntVar(&params.current, "current", 1, "current page (1-based)")
	cmd.Flags().IntVar(&params.total, "total", 0, "total number of pages")
	cmd.Flags().IntVar(&params.delta, "delta", pagerange.DefaultDelta,
		"number of sibling pages shown on each side of the current page (default from config)")
	addOutputFlag(cmd, &params.output)
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func executeRange(cmd *cobra.Command, params rangeParams) error {
	format, err := resolveOutput(params.output)
	if err != nil {
		return err
	}

	state := pagerange.State{
		TotalPages:  params.total,
		CurrentPage: params.current,
		Delta:       params.delta,
		StartAt:     config.GetGlobalConfig().Pagination.StartAt,
	}
	layout := pagerange.Compute(state)

	logging.FromContext(cmd.Context()).Debug().
		Str("component", "cli").
		Int("current", layout.CurrentPage).
		Int("total", layout.TotalPages).
		Int("tokens", len(layout.Tokens)).
		Msg("range computed")

	if format != outputTable {
		return writeStructured(cmd.OutOrStdout(), format, layout)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, renderBar(cmd, layout))
	_, _ = fmt.Fprintf(out, "page %d of %d\n", layout.CurrentPage, layout.TotalPages)
	return nil
}
