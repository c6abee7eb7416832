package proxy

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/hallaoui/ferme-ops/api-gateway/config"
	"github.com/hallaoui/ferme-ops/api-gateway/loadbalancer"
	"github.com/hallaoui/ferme-ops/pkg/logger"
)

// ReverseProxy forwards gateway requests to backend service instances
type ReverseProxy struct {
	config        *config.GatewayConfig
	client        *http.Client
	loadBalancers map[string]*loadbalancer.RoundRobin
}

// NewReverseProxy creates a reverse proxy with one balancer per service
func NewReverseProxy(cfg *config.GatewayConfig) (*ReverseProxy, error) {
	loadBalancers := make(map[string]*loadbalancer.RoundRobin)
	for name, svc := range cfg.Services {
		lb, err := loadbalancer.NewRoundRobin(svc.Instances)
		if err != nil {
			return nil, fmt.Errorf("failed to create load balancer for %s: %w", name, err)
		}
		loadBalancers[name] = lb
	}

	return &ReverseProxy{
		config: cfg,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		loadBalancers: loadBalancers,
	}, nil
}

// ProxyRequest forwards the request to the named service
func (p *ReverseProxy) ProxyRequest(serviceName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc, ok := p.config.GetService(serviceName)
		if !ok {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": fmt.Sprintf("Unknown service: %s", serviceName),
			})
		}

		lb := p.loadBalancers[serviceName]
		server := lb.Next()

		targetURL := buildTargetURL(server, c)

		req, err := http.NewRequestWithContext(
			c.UserContext(),
			c.Method(),
			targetURL,
			strings.NewReader(string(c.Body())),
		)
		if err != nil {
			logger.Error(c.UserContext()).
				Err(err).
				Str("service", serviceName).
				Str("target", targetURL).
				Msg("Failed to build proxy request")

			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Failed to forward request",
			})
		}

		copyRequestHeaders(&c.Request().Header, req)

		client := p.client
		if svc.Timeout > 0 {
			client = &http.Client{Timeout: svc.Timeout}
		}

		resp, err := client.Do(req)
		if err != nil {
			logger.Error(c.UserContext()).
				Err(err).
				Str("service", serviceName).
				Str("target", targetURL).
				Msg("Backend request failed")

			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":   "Service unavailable",
				"service": serviceName,
			})
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Failed to read backend response",
			})
		}

		for key, values := range resp.Header {
			for _, value := range values {
				c.Set(key, value)
			}
		}

		return c.Status(resp.StatusCode).Send(body)
	}
}

// GetLoadBalancerStats returns per-service balancer statistics
func (p *ReverseProxy) GetLoadBalancerStats() map[string]interface{} {
	stats := make(map[string]interface{})
	for name, lb := range p.loadBalancers {
		stats[name] = lb.GetStats()
	}
	return stats
}

func buildTargetURL(server string, c *fiber.Ctx) string {
	target := strings.TrimSuffix(server, "/") + c.Path()
	if query := string(c.Request().URI().QueryString()); query != "" {
		target += "?" + query
	}
	return target
}

func copyRequestHeaders(src *fasthttp.RequestHeader, dst *http.Request) {
	src.VisitAll(func(key, value []byte) {
		k := string(key)
		// Host is set from the target URL
		if strings.EqualFold(k, "Host") {
			return
		}
		dst.Header.Add(k, string(value))
	})
}
