package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/dovietdong/WebApiBase/internal/auth"
	apierrors "github.com/dovietdong/WebApiBase/internal/errors"
	"github.com/dovietdong/WebApiBase/internal/handler"
	"github.com/dovietdong/WebApiBase/internal/response"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = httpErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/products", productHandler.ListProducts)
	api.GET("/products/:id", productHandler.GetProduct)

	// Secured routes: claims are resolved once here, before any policy check.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, response.Fail("missing or invalid token"))
		},
	}))

	// Product mutations (admin only)
	secured.POST("/products", productHandler.CreateProduct, requireAdmin)
	secured.PUT("/products/:id", productHandler.UpdateProduct, requireAdmin)
	secured.DELETE("/products/:id", productHandler.DeleteProduct, requireAdmin)

	// User routes
	secured.GET("/users", userHandler.ListUsers, requireAdmin)
	secured.GET("/users/:id", userHandler.GetUser) // self-or-admin checked in the handler
}

// requireAdmin gates a route on the Admin role claim.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, _ := c.Get("user").(*auth.Claims)
		if err := auth.RequireAdmin(claims); err != nil {
			return c.JSON(http.StatusForbidden, response.Fail(err.Error()))
		}
		return next(c)
	}
}

// httpErrorHandler converts every error that escapes a handler into the
// uniform envelope. Unexpected failures are reported as a generic 500.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var status int
	var message string

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	} else {
		httpErr := apierrors.MapErrorToHTTP(err)
		status = httpErr.StatusCode
		message = httpErr.Message
	}

	if status >= http.StatusInternalServerError {
		message = "internal server error"
	}

	_ = c.JSON(status, response.Fail(message))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
