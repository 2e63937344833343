package chemistry

import "errors"

var (
	// ErrUnknownOil is returned when a lye calculation references an oil
	// that is not in the catalog. Property and fatty acid aggregation skip
	// unknown oils instead of failing; only the lye math is strict, since a
	// wrong saponification value makes the batch unsafe.
	ErrUnknownOil = errors.New("chemistry: unknown oil")

	// ErrInvalidParameter is returned for numeric inputs outside their
	// documented ranges, such as a zero lye concentration.
	ErrInvalidParameter = errors.New("chemistry: invalid parameter")

	// ErrEmptySelection is returned when a calculation is requested with no
	// oil weights, or with weights that sum to zero.
	ErrEmptySelection = errors.New("chemistry: no oils selected")
)
