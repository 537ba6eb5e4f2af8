package models

import (
	"math"
	"strconv"
)

// UserQuery holds the query parameters of the user listing.
type UserQuery struct {
	Page string
}

// BlogQuery holds the query parameters of the blog listing.
type BlogQuery struct {
	AuthorUsername string
	Page           string
}

// ParsePage converts a 1-based page parameter; anything missing, non-numeric
// or below one yields the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Offset returns the number of rows to skip for page with the given size.
// Pages too far out to be represented saturate at math.MaxInt, which still
// lands past the last row.
func Offset(page, size int) int {
	if page <= 1 || size <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (page - 1) * size
}
