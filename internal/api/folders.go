package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talkincode/selectshop/internal/service"
	"github.com/talkincode/selectshop/internal/webserver"
)

func registerFolderRoutes() {
	webserver.ApiPOST("/folders", addFolders)
	webserver.ApiGET("/folders", listFolders)
	webserver.ApiGET("/folders/:folderId/products", listFolderProducts)
	webserver.ApiGET("/folders/:folderId/stats", folderStats)
}

func addFolders(c echo.Context) error {
	var form service.FolderRequest
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
	}
	if err := c.Validate(&form); err != nil {
		return err
	}
	folders, err := GetApp(c).FolderService().AddFolders(c.Request().Context(), form.FolderNames, GetCurrentUser(c))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, folders)
}

func listFolders(c echo.Context) error {
	folders, err := GetApp(c).FolderService().GetFolders(c.Request().Context(), GetCurrentUser(c))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, folders)
}

func listFolderProducts(c echo.Context) error {
	folderID, err := parseIDParam(c, "folderId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid folder id", nil)
	}
	q := parseSort(c)
	result, err := GetApp(c).ProductService().GetProductsInFolder(c.Request().Context(), folderID, q, GetCurrentUser(c))
	if err != nil {
		return failFromError(c, err)
	}
	return paged(c, result.Items, result.Total, q.Page+1, q.Limit())
}

func folderStats(c echo.Context) error {
	folderID, err := parseIDParam(c, "folderId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid folder id", nil)
	}
	stats, err := GetApp(c).ProductService().FolderStats(c.Request().Context(), folderID, GetCurrentUser(c))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, stats)
}
