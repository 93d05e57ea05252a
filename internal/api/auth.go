package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/talkincode/selectshop/internal/domain"
	"github.com/talkincode/selectshop/internal/webserver"
	"github.com/talkincode/selectshop/pkg/common"
)

type registerRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=64"`
	Password   string `json:"password" validate:"required,min=8,max=128"`
	Email      string `json:"email" validate:"omitempty,email"`
	Admin      bool   `json:"admin"`
	AdminToken string `json:"adminToken"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func registerAuthRoutes() {
	webserver.PubPOST("/auth/register", register)
	webserver.PubPOST("/auth/login", login)
}

func register(c echo.Context) error {
	var form registerRequest
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	app := GetApp(c)

	// admin signup needs the operator-issued token
	if form.Admin && form.AdminToken != app.Config().Web.AdminToken {
		return fail(c, http.StatusForbidden, "INVALID_ADMIN_TOKEN", "Admin registration token mismatch", nil)
	}

	if _, err := app.UserStore().GetByUsername(c.Request().Context(), form.Username); err == nil {
		return fail(c, http.StatusConflict, "DUPLICATE_USERNAME", "Username already taken", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return failFromError(c, err)
	}

	level := domain.RoleUser
	if form.Admin {
		level = domain.RoleAdmin
	}
	user := domain.SysUser{
		ID:       common.UUIDint64(),
		Username: form.Username,
		Password: string(hashed),
		Email:    form.Email,
		Level:    level,
		Status:   common.ENABLED,
	}
	if err := app.UserStore().Create(c.Request().Context(), &user); err != nil {
		return failFromError(c, err)
	}
	zap.S().Infof("user %s registered", user.Username)
	return ok(c, user)
}

func login(c echo.Context) error {
	var form loginRequest
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	app := GetApp(c)
	user, err := app.UserStore().GetByUsername(c.Request().Context(), form.Username)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)
	}
	if user.Status == common.DISABLED {
		return fail(c, http.StatusForbidden, "USER_DISABLED", "Account is disabled", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)); err != nil {
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)
	}

	// uid travels as a string: snowflake ids overflow the float64 that
	// json numbers decode into
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":      strconv.FormatInt(user.ID, 10),
		"username": user.Username,
		"level":    user.Level,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(app.Config().Web.Secret))
	if err != nil {
		return failFromError(c, err)
	}

	GetDB(c).Model(&domain.SysUser{}).
		Where("id = ?", user.ID).
		Update("last_login", gorm.Expr("CURRENT_TIMESTAMP"))

	return ok(c, echo.Map{"token": signed, "username": user.Username, "level": user.Level})
}
