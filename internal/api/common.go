package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/talkincode/selectshop/internal/app"
	"github.com/talkincode/selectshop/internal/domain"
	"github.com/talkincode/selectshop/internal/service"
	"github.com/talkincode/selectshop/internal/store"
	"github.com/talkincode/selectshop/internal/webserver"
)

// InitRouter registers every HTTP route.
func InitRouter() {
	registerAuthRoutes()
	registerProductRoutes()
	registerFolderRoutes()
	registerSearchRoutes()
}

func GetApp(c echo.Context) *app.Application {
	return c.Get(webserver.AppContextKey).(*app.Application)
}

func GetDB(c echo.Context) *gorm.DB {
	return c.Get(webserver.DBContextKey).(*gorm.DB)
}

func GetCurrentUser(c echo.Context) *domain.SysUser {
	return c.Get(webserver.UserContextKey).(*domain.SysUser)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, echo.Map{"code": 0, "data": data})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, echo.Map{"code": code, "message": message, "detail": detail})
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, echo.Map{
		"code":     0,
		"data":     rows,
		"total":    total,
		"page":     page,
		"per_page": pageSize,
	})
}

// parsePagination reads the 1-based page and size query params with the
// defaults the front end relies on.
func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	pageSize = 10
	if ps, err := strconv.Atoi(c.QueryParam("size")); err == nil && ps > 0 && ps <= 100 {
		pageSize = ps
	}
	return page, pageSize
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// parseSort reads sortBy/isAsc into a zero-based store query.
func parseSort(c echo.Context) store.PageQuery {
	page, size := parsePagination(c)
	isAsc, _ := strconv.ParseBool(c.QueryParam("isAsc"))
	return store.PageQuery{
		Page:   page - 1,
		Size:   size,
		SortBy: c.QueryParam("sortBy"),
		Asc:    isAsc,
	}
}

// failFromError maps the service error kinds onto client-visible
// responses; anything unrecognized is a server error.
func failFromError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidTargetPrice):
		return fail(c, http.StatusBadRequest, "INVALID_TARGET_PRICE", err.Error(), nil)
	case errors.Is(err, service.ErrProductNotFound):
		return fail(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found", nil)
	case errors.Is(err, service.ErrFolderNotFound):
		return fail(c, http.StatusNotFound, "FOLDER_NOT_FOUND", "Folder not found", nil)
	case errors.Is(err, service.ErrNotOwner):
		return fail(c, http.StatusForbidden, "NOT_OWNER", "Not your product or folder", nil)
	case errors.Is(err, service.ErrDuplicateFolderName):
		return fail(c, http.StatusConflict, "DUPLICATE_FOLDER_NAME", "Folder name already exists", err.Error())
	case errors.Is(err, service.ErrDuplicateAssociation):
		return fail(c, http.StatusConflict, "DUPLICATE_ASSOCIATION", "Product is already in the folder", nil)
	default:
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Request failed", err.Error())
	}
}
