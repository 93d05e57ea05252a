package webserver

import (
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/talkincode/selectshop/internal/app"
	"github.com/talkincode/selectshop/internal/domain"
	"github.com/talkincode/selectshop/pkg/common"
)

// echo context keys populated by the webserver middleware
const (
	AppContextKey  = "selectshop_app"
	DBContextKey   = "selectshop_db"
	UserContextKey = "selectshop_user"
)

var server *WebServer

type WebServer struct {
	root *echo.Echo
	api  *echo.Group
	app  *app.Application
}

// Init builds the global web server around the application.
func Init(application *app.Application) *WebServer {
	server = NewWebServer(application)
	return server
}

func NewWebServer(application *app.Application) *WebServer {
	root := echo.New()
	root.HideBanner = true
	root.HidePort = true
	root.Validator = NewValidator()

	s := &WebServer{root: root, app: application}

	root.Use(middleware.Recover())
	root.Use(s.injectContext)

	s.api = root.Group("/api",
		echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(application.Config().Web.Secret),
		}),
		s.currentUser,
	)
	return s
}

// Listen starts the global web server and blocks.
func Listen() error {
	return server.Start()
}

func (s *WebServer) Start() error {
	cfg := s.app.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("web server listening on %s", addr)
	return s.root.Start(addr)
}

// Echo exposes the underlying echo instance (used in tests).
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

// injectContext makes the application and its database handle available
// to every handler.
func (s *WebServer) injectContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(AppContextKey, s.app)
		c.Set(DBContextKey, s.app.DB())
		return next(c)
	}
}

// currentUser resolves the JWT claims into a SysUser row and rejects
// disabled accounts.
func (s *WebServer) currentUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
		}

		uid := cast.ToInt64(claims["uid"])
		var user domain.SysUser
		if err := s.app.DB().Where("id = ?", uid).First(&user).Error; err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unknown account")
		}
		if user.Status != common.ENABLED {
			return echo.NewHTTPError(http.StatusForbidden, "account disabled")
		}

		c.Set(UserContextKey, &user)
		return next(c)
	}
}

// Authenticated API routes under /api

func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}

// Public routes, no token required

func PubGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

func PubPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}
