package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talkincode/selectshop/internal/webserver"
)

func registerSearchRoutes() {
	webserver.ApiGET("/search", searchItems)
}

// searchItems proxies the shopping search so the browser never sees
// the API credentials.
func searchItems(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "query is required", nil)
	}
	items, err := GetApp(c).Searcher().SearchItems(c.Request().Context(), query)
	if err != nil {
		return fail(c, http.StatusBadGateway, "SEARCH_FAILED", "Search request failed", err.Error())
	}
	return ok(c, items)
}
