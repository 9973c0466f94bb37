package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// envelope is the standard response body: {success, data|error, meta?}.
type envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   string    `json:"error,omitempty"`
	Meta    *pageMeta `json:"meta,omitempty"`
}

// pageMeta carries pagination totals for list responses.
type pageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

// pageParams reads page/limit query params; zero means "use service default".
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

func respondPaged(c echo.Context, status int, data any, page, limit int, total int64, totalPages int) error {
	return c.JSON(status, envelope{
		Success: true,
		Data:    data,
		Meta: &pageMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}
