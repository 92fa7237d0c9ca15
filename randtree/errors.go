package randtree

import "errors"

// ErrEmptyLeafSet indicates the caller supplied no labels to draw from.
var ErrEmptyLeafSet = errors.New("randtree: leaf label set is empty")

// ErrInvalidCount indicates a requested leaf count is not achievable: it
// is <= 0, or unique is true and count exceeds the number of distinct
// labels available.
var ErrInvalidCount = errors.New("randtree: invalid leaf count")
