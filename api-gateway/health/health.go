package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/hallaoui/ferme-ops/api-gateway/config"
)

// ServiceHealth represents the health of a single backend service
type ServiceHealth struct {
	Name      string        `json:"name"`
	Status    string        `json:"status"`
	Latency   time.Duration `json:"latency_ms"`
	Error     string        `json:"error,omitempty"`
	CheckedAt time.Time     `json:"checked_at"`
}

// GatewayHealth aggregates the health of the gateway and its backends
type GatewayHealth struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Services  map[string]ServiceHealth `json:"services"`
}

// HealthChecker checks the health of backend services
type HealthChecker struct {
	config *config.GatewayConfig
	client *http.Client
}

// NewHealthChecker creates a health checker
func NewHealthChecker(cfg *config.GatewayConfig) *HealthChecker {
	return &HealthChecker{
		config: cfg,
		client: &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// CheckService checks the health of one service
func (h *HealthChecker) CheckService(ctx context.Context, svc config.ServiceConfig) ServiceHealth {
	result := ServiceHealth{
		Name:      svc.Name,
		CheckedAt: time.Now(),
	}

	url := svc.BaseURL + svc.HealthCheck
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = err.Error()
		return result
	}

	resp, err := h.client.Do(req)
	result.Latency = time.Since(start) / time.Millisecond
	if err != nil {
		result.Status = "unhealthy"
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		result.Status = "healthy"
	} else {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
	}

	return result
}

// CheckAllServices checks all configured services concurrently
func (h *HealthChecker) CheckAllServices(ctx context.Context) GatewayHealth {
	results := make(map[string]ServiceHealth)

	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, svc := range h.config.Services {
		wg.Add(1)
		go func(svc config.ServiceConfig) {
			defer wg.Done()
			health := h.CheckService(ctx, svc)

			mu.Lock()
			results[svc.Name] = health
			mu.Unlock()
		}(svc)
	}

	wg.Wait()

	return GatewayHealth{
		Status:    determineOverallStatus(results),
		Timestamp: time.Now(),
		Services:  results,
	}
}

// QuickCheck reports gateway liveness without touching backends
func (h *HealthChecker) QuickCheck() GatewayHealth {
	return GatewayHealth{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  map[string]ServiceHealth{},
	}
}

func determineOverallStatus(results map[string]ServiceHealth) string {
	healthy := 0
	for _, r := range results {
		if r.Status == "healthy" {
			healthy++
		}
	}

	switch {
	case healthy == len(results):
		return "healthy"
	case healthy > 0:
		return "degraded"
	default:
		return "unhealthy"
	}
}
