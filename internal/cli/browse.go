package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stockroom/pagenav/internal/cli/pagination"
	"github.com/stockroom/pagenav/internal/config"
	"github.com/stockroom/pagenav/internal/inventory"
	"github.com/stockroom/pagenav/internal/tui"
)

// ErrNotInteractive is returned by browse when stdin or stdout is not a terminal.
var ErrNotInteractive = errors.New("browse requires an interactive terminal; use 'pagenav list' instead")

// NewBrowseCmd creates the browse command, which pages through a listing in a
// full-screen terminal pager.
func NewBrowseCmd() *cobra.Command {
	var (
		params listParams
		fs     *pagination.FlagSet
	)
	pageParams := pagination.NewPaginationParams()

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through an inventory listing interactively",
		Long: `Opens a full-screen pager over the listing. Use ←/h and →/l to move one page,
home/g and end/G for the first and last page, type a page number and press enter to
jump, and q to quit.`,
		Example: `  # Browse a listing
  pagenav browse --file stock.yaml

  # Start on page 4, sorted by name
  pagenav browse --file stock.yaml --page 4 --sort name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsInteractive() {
				return ErrNotInteractive
			}

			cfg := config.GetGlobalConfig()
			if !cmd.Flags().Changed("page-size") {
				pageParams.PageSize = cfg.Pagination.PageSize
			}
			if !cmd.Flags().Changed("delta") {
				pageParams.Delta = cfg.Pagination.Delta
			}
			if _, err := fs.Resolve(); err != nil {
				return err
			}
			return executeBrowse(cmd, params, pageParams)
		},
	}

	fs = bindListFlags(cmd, &params, pageParams)

	return cmd
}

func executeBrowse(cmd *cobra.Command, params listParams, pageParams *pagination.PaginationParams) error {
	items, err := loadListing(cmd, params, pageParams)
	if err != nil {
		return err
	}

	pageSize := pageParams.PageSize
	fetch := func(page int) inventory.Page {
		return inventory.Paginate(items, page, pageSize)
	}

	m := tui.NewPagerModel(cmd.Context(), browseTitle(params.files), fetch, pageParams.Page, pageParams.Delta)
	if err = tui.RunPager(cmd.Context(), m); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}

// browseTitle names the pager after the listing files.
func browseTitle(files []string) string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	return "Inventory · " + strings.Join(names, ", ")
}
