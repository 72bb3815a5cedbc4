package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginate(t *testing.T, target string, defaultLimit int) Pagination {
	t.Helper()

	var got Pagination
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = GetPagination(c, defaultLimit)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	return got
}

func TestGetPaginationDefaults(t *testing.T) {
	p := paginate(t, "/", 20)
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, 20, p.Limit)
}

func TestGetPaginationFromQuery(t *testing.T) {
	p := paginate(t, "/?skip=40&limit=10", 20)
	assert.Equal(t, 40, p.Skip)
	assert.Equal(t, 10, p.Limit)
}

func TestGetPaginationCapsLimit(t *testing.T) {
	p := paginate(t, "/?limit=5000", 20)
	assert.Equal(t, MaxPageSize, p.Limit)
}

func TestGetPaginationRejectsBadValues(t *testing.T) {
	p := paginate(t, "/?skip=-5&limit=abc", 20)
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, 20, p.Limit)
}
