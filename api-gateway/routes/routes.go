package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hallaoui/ferme-ops/api-gateway/health"
	"github.com/hallaoui/ferme-ops/api-gateway/middleware"
	"github.com/hallaoui/ferme-ops/api-gateway/proxy"
)

// RouteDefinition maps a path prefix to a backend service
type RouteDefinition struct {
	Prefix            string
	ServiceName       string
	Description       string
	RequireAuth       bool
	RequireSuperAdmin bool
}

// Routes is the gateway routing table
var Routes = []RouteDefinition{
	{
		Prefix:      "/auth",
		ServiceName: "user",
		Description: "Authentication (login, registration)",
	},
	{
		Prefix:      "/users",
		ServiceName: "user",
		Description: "User profile management",
		RequireAuth: true,
	},
	{
		Prefix:            "/admin",
		ServiceName:       "user",
		Description:       "User administration",
		RequireAuth:       true,
		RequireSuperAdmin: true,
	},
	{
		Prefix:      "/api/fermes",
		ServiceName: "housing",
		Description: "Sector management",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/workers",
		ServiceName: "housing",
		Description: "Worker management",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/rooms",
		ServiceName: "housing",
		Description: "Room management",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/occupancy",
		ServiceName: "housing",
		Description: "Occupancy reconciliation and statistics",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/stock",
		ServiceName: "stock",
		Description: "Stock levels and additions",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/transfers",
		ServiceName: "stock",
		Description: "Inter-sector stock transfers",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/additions",
		ServiceName: "stock",
		Description: "Pending stock additions",
		RequireAuth: true,
	},
}

// SetupRoutes registers all gateway routes
func SetupRoutes(
	app *fiber.App,
	rp *proxy.ReverseProxy,
	checker *health.HealthChecker,
	cbManager *middleware.CircuitBreakerManager,
) {
	// Gateway liveness and aggregated backend health
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(checker.QuickCheck())
	})
	app.Get("/health/services", func(c *fiber.Ctx) error {
		return c.JSON(checker.CheckAllServices(c.UserContext()))
	})

	// Operational introspection
	app.Get("/gateway/circuits", func(c *fiber.Ctx) error {
		return c.JSON(cbManager.GetAllStats())
	})
	app.Get("/gateway/balancers", func(c *fiber.Ctx) error {
		return c.JSON(rp.GetLoadBalancerStats())
	})

	for _, route := range Routes {
		registerServiceRoute(app, rp, route)
	}
}

func registerServiceRoute(app *fiber.App, rp *proxy.ReverseProxy, route RouteDefinition) {
	guards := []fiber.Handler{}

	if route.RequireAuth {
		guards = append(guards, middleware.AuthMiddleware())
	}
	if route.RequireSuperAdmin {
		guards = append(guards, middleware.SuperAdminMiddleware())
	}

	group := app.Group(route.Prefix, guards...)
	group.All("/", rp.ProxyRequest(route.ServiceName))
	group.All("/*", rp.ProxyRequest(route.ServiceName))
}
