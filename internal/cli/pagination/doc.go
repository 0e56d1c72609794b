// Package pagination provides the page, sort and metadata handling shared by the
// commands and handlers that list inventory.
//
// This package contains:
//   - PaginationParams: --page/--page-size/--delta/--sort parsing and validation
//   - PaginationMeta: response metadata, including the rendered page tokens
//   - ItemSorter: stable sorting of inventory items by a validated field
package pagination
