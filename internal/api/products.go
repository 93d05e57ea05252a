package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/talkincode/selectshop/internal/service"
	"github.com/talkincode/selectshop/internal/webserver"
)

func registerProductRoutes() {
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiGET("/products", listProducts)
	webserver.ApiPOST("/products/:productId/folder", addProductToFolder)
	webserver.ApiPOST("/admin/refresh", runRefresh)
}

func createProduct(c echo.Context) error {
	var form service.ProductRequest
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
	}
	if err := c.Validate(&form); err != nil {
		return err
	}
	user := GetCurrentUser(c)
	resp, err := GetApp(c).ProductService().CreateProduct(c.Request().Context(), form, user)
	if err != nil {
		return failFromError(c, err)
	}
	zap.S().Infof("user %s registered product %d", user.Username, resp.ID)
	return ok(c, resp)
}

func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid product id", nil)
	}
	var form service.MyPriceRequest
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
	}
	resp, err := GetApp(c).ProductService().UpdateProduct(c.Request().Context(), id, form)
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, resp)
}

func listProducts(c echo.Context) error {
	user := GetCurrentUser(c)
	q := parseSort(c)
	if folderID := c.QueryParam("folderId"); folderID != "" {
		fid, err := strconv.ParseInt(folderID, 10, 64)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid folder id", nil)
		}
		result, err := GetApp(c).ProductService().GetProductsInFolder(c.Request().Context(), fid, q, user)
		if err != nil {
			return failFromError(c, err)
		}
		return paged(c, result.Items, result.Total, q.Page+1, q.Limit())
	}
	result, err := GetApp(c).ProductService().GetProducts(c.Request().Context(), user, q)
	if err != nil {
		return failFromError(c, err)
	}
	return paged(c, result.Items, result.Total, q.Page+1, q.Limit())
}

func addProductToFolder(c echo.Context) error {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid product id", nil)
	}
	folderID, err := strconv.ParseInt(c.QueryParam("folderId"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid folder id", nil)
	}
	if err := GetApp(c).ProductService().AddFolder(c.Request().Context(), productID, folderID, GetCurrentUser(c)); err != nil {
		return failFromError(c, err)
	}
	return ok(c, nil)
}

// runRefresh triggers a full price refresh outside the schedule.
func runRefresh(c echo.Context) error {
	user := GetCurrentUser(c)
	if !user.IsAdmin() {
		return fail(c, http.StatusForbidden, "NOT_OWNER", "Admin only", nil)
	}
	app := GetApp(c)
	go app.RunPriceRefreshNow(context.Background())
	return ok(c, "refresh started")
}
