package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/stockroom/pagenav/internal/cli/pagination"
	"github.com/stockroom/pagenav/internal/config"
	"github.com/stockroom/pagenav/internal/inventory"
	"github.com/stockroom/pagenav/internal/logging"
	"github.com/stockroom/pagenav/internal/pagerange"
)

// ErrNoListingFiles is returned when no --file was given.
var ErrNoListingFiles = errors.New("at least one --file is required")

// listParams holds the flags of the list command besides the pagination flags.
type listParams struct {
	files     []string
	warehouse string
	status    string
	output    string
}

// listResult is the structured output of the list command.
type listResult struct {
	Items      []inventory.Item          `json:"items"      yaml:"items"`
	Pagination pagination.PaginationMeta `json:"pagination" yaml:"pagination"`
}

// NewListCmd creates the list command, which prints one page of an inventory listing.
func NewListCmd() *cobra.Command {
	var (
		params listParams
		fs     *pagination.FlagSet
	)
	pageParams := pagination.NewPaginationParams()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of an inventory listing",
		Long: `Loads one or more listing files (YAML or JSON), filters and sorts the items,
and prints the requested page followed by its pagination controls. Pages past the
end show the last page.`,
		Example: `  # First page with defaults
  pagenav list --file stock.yaml

  # Page 3, largest quantities first, one warehouse
  pagenav list --file central.yaml --file harbor.json --page 3 --sort quantity:desc --warehouse central

  # Only low stock, as YAML
  pagenav list --file stock.yaml --status low_stock --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			return executeList(cmd, params, pageParams)
		},
	}

	fs = bindListFlags(cmd, &params, pageParams)
	addOutputFlag(cmd, &params.output)

	return cmd
}

// bindListFlags registers the listing flags shared by list and browse.
func bindListFlags(cmd *cobra.Command, params *listParams, pageParams *pagination.PaginationParams) *pagination.FlagSet {
	cmd.Flags().StringSliceVarP(&params.files, "file", "f", nil, "listing file (YAML or JSON); repeatable")
	cmd.Flags().StringVar(&params.warehouse, "warehouse", "", "only items stored in this warehouse")
	cmd.Flags().StringVar(&params.status, "status", "",
		"only items with this status (in_stock, low_stock, out_of_stock, in_transit)")
	return pagination.BindFlags(cmd, pageParams)
}

// loadListing loads, filters and sorts the listing described by params.
func loadListing(cmd *cobra.Command, params listParams, pageParams *pagination.PaginationParams) ([]inventory.Item, error) {
	if len(params.files) == 0 {
		return nil, ErrNoListingFiles
	}

	filter := inventory.Filter{Warehouse: params.warehouse}
	if params.status != "" {
		status, err := inventory.ParseStatus(params.status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}

	sorter := pagination.NewItemSorter()
	if pageParams.SortField != "" {
		if err := sorter.Validate(pageParams.SortField); err != nil {
			return nil, err
		}
	}

	items, err := inventory.LoadFiles(cmd.Context(), params.files...)
	if err != nil {
		return nil, err
	}

	items = filter.Apply(items)
	items = sorter.Sort(items, pageParams.SortField, pageParams.SortOrder)

	logging.FromContext(cmd.Context()).Debug().
		Str("component", "cli").
		Strs("files", params.files).
		Int("items", len(items)).
		Msg("listing loaded")

	return items, nil
}

func executeList(cmd *cobra.Command, params listParams, pageParams *pagination.PaginationParams) error {
	format, err := resolveOutput(params.output)
	if err != nil {
		return err
	}

	items, err := loadListing(cmd, params, pageParams)
	if err != nil {
		return err
	}

	page := inventory.Paginate(items, pageParams.Page, pageParams.PageSize)
	meta := pagination.NewPaginationMeta(*pageParams, page.TotalItems)

	if format != outputTable {
		data := page.Items
		if data == nil {
			data = []inventory.Item{}
		}
		return writeStructured(cmd.OutOrStdout(), format, listResult{Items: data, Pagination: meta})
	}

	out := cmd.OutOrStdout()
	if err = writeItemTable(out, page.Items); err != nil {
		return err
	}

	state := pagerange.State{
		TotalPages:  page.TotalPages,
		CurrentPage: page.PageNumber,
		Delta:       pageParams.Delta,
		StartAt:     pagerange.DefaultStartAt,
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderBar(cmd, pagerange.Compute(state)))
	_, _ = fmt.Fprintln(out, listSummary(page))
	return nil
}

// writeItemTable prints items as aligned columns.
func writeItemTable(out io.Writer, items []inventory.Item) error {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(out, "No items found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "SKU\tName\tWarehouse\tQuantity\tStatus\tUpdated")
	fmt.Fprintln(w, "---\t----\t---------\t--------\t------\t-------")

	p := newPrinter()
	for _, item := range items {
		updated := "-"
		if !item.UpdatedAt.IsZero() {
			updated = item.UpdatedAt.Format(time.DateOnly)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.SKU, item.Name, item.Warehouse,
			strings.TrimSpace(p.Sprintf("%d %s", item.Quantity, item.Unit)),
			item.Status, updated)
	}

	return w.Flush()
}

// listSummary describes the page position with locale-formatted counts.
func listSummary(page inventory.Page) string {
	p := newPrinter()
	return p.Sprintf("page %d of %d · %d items", page.PageNumber, page.TotalPages, page.TotalItems)
}
