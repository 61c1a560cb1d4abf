// Package router builds the echo instance: global middleware, the error
// handler and every route of the directory API.
package router

import (
	"net/http"

	"github.com/deppfellow/directory/internal/handler"
	"github.com/deppfellow/directory/internal/middleware"
	"github.com/deppfellow/directory/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)
	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limit())
	}

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerDirectoryRoutes(v1, h.Directory)

	return router
}

func registerDirectoryRoutes(g *echo.Group, h *handler.DirectoryHandler) {
	employees := g.Group("/employees")
	employees.GET("", handler.Handle(h.FindAllEmployees, http.StatusOK))
	employees.POST("", handler.Handle(h.CreateEmployee, http.StatusCreated))
	employees.GET("/:id/possible-managers", handler.Handle(h.FindAllPossibleManagers, http.StatusOK))
	employees.DELETE("/:id", handler.Handle(h.RemoveEmployee, http.StatusOK))
	employees.PUT("/:id/role", handler.Handle(h.UpdateEmployeeRole, http.StatusOK))
	employees.PUT("/:id/manager", handler.Handle(h.UpdateEmployeeManager, http.StatusOK))

	roles := g.Group("/roles")
	roles.GET("", handler.Handle(h.FindAllRoles, http.StatusOK))
	roles.POST("", handler.Handle(h.CreateRole, http.StatusCreated))
	roles.DELETE("/:id", handler.Handle(h.RemoveRole, http.StatusOK))

	departments := g.Group("/departments")
	departments.GET("", handler.Handle(h.FindAllDepartments, http.StatusOK))
	departments.POST("", handler.Handle(h.CreateDepartment, http.StatusCreated))
	departments.GET("/budgets", handler.Handle(h.ViewDepartmentBudgets, http.StatusOK))
	departments.DELETE("/:id", handler.Handle(h.RemoveDepartment, http.StatusOK))
	departments.GET("/:id/employees", handler.Handle(h.FindAllEmployeesByDepartment, http.StatusOK))

	g.GET("/managers/:id/employees", handler.Handle(h.FindAllEmployeesByManager, http.StatusOK))
}
