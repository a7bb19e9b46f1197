package sandbox

import (
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/mgmt/internal/database"
	"github.com/mdouchement/mgmt/internal/sandbox/middlewares"
	"github.com/sirupsen/logrus"
)

// An IOC is an Iversion Of Control pattern used to init the sandbox package.
type IOC struct {
	Version  string
	Database database.Client
	// Tokens maps the accepted bearer tokens to their tenant.
	Tokens map[string]string
	Logger *logrus.Logger
}

// EchoEngine instantiates the web server emulating the management API.
func EchoEngine(ctrl IOC) *echo.Echo {
	if ctrl.Logger == nil {
		ctrl.Logger = logrus.New()
	}

	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
		Output: ctrl.Logger.Out,
	}))
	engine.Binder = middlewares.NewBinder()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler(ctrl.Logger)

	engine.Pre(middleware.Rewrite(map[string]string{
		"/": "/version",
	}))

	////////////
	// Router //
	////////////

	router := engine.Group("")
	restricted := router.Group("/api/v2")
	restricted.Use(middlewares.Bearer(ctrl.Tokens))

	// generic handlers
	//
	router.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})

	//
	// email provider handlers
	//
	provider := &provider{
		db: ctrl.Database,
	}
	restricted.GET("/emails/provider", provider.Show)
	restricted.POST("/emails/provider", provider.Create)
	restricted.PATCH("/emails/provider", provider.Update)
	restricted.DELETE("/emails/provider", provider.Delete)

	return engine
}

// PrintRoutes prints the Echo engine exposed routes.
func PrintRoutes(w io.Writer, e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	fmt.Fprintln(w, "Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Fprintf(w, "%6s %s\n", route.Method, route.Path)
	}
}

func currentTenant(c echo.Context) string {
	tenant, _ := c.Get(middlewares.CurrentTenantContextKey).(string)
	return tenant
}
