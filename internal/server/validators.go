package server

import (
	"github.com/go-playground/validator/v10"

	"github.com/stockroom/pagenav/internal/cli/pagination"
	"github.com/stockroom/pagenav/internal/inventory"
)

// SortExprValidator accepts "field" or "field:asc|desc" over the sortable item fields.
func SortExprValidator(fl validator.FieldLevel) bool {
	field, _, err := pagination.ParseSort(fl.Field().String())
	if err != nil {
		return false
	}
	return pagination.NewItemSorter().IsValidField(field)
}

// ItemStatusValidator accepts the known inventory statuses in any spelling ParseStatus understands.
func ItemStatusValidator(fl validator.FieldLevel) bool {
	_, err := inventory.ParseStatus(fl.Field().String())
	return err == nil
}
