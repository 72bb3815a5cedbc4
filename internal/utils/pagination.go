package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// MaxPageSize caps the page size of any paginated listing.
const MaxPageSize = 100

// Pagination holds skip/limit pagination parameters.
type Pagination struct {
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// GetPagination extracts skip and limit from the query parameters, applying
// defaults and the page size cap.
func GetPagination(c *fiber.Ctx, defaultLimit int) Pagination {
	skip, err := strconv.Atoi(c.Query("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return Pagination{Skip: skip, Limit: limit}
}
