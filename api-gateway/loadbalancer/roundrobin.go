package loadbalancer

import (
	"fmt"
	"sync"
)

// RoundRobin distributes requests across service instances
type RoundRobin struct {
	servers []string
	current int
	mu      sync.Mutex
}

// NewRoundRobin creates a round robin balancer over the given instances
func NewRoundRobin(servers []string) (*RoundRobin, error) {
	if len(servers) == 0 {
		return nil, fmt.Errorf("at least one server instance is required")
	}
	return &RoundRobin{servers: servers}, nil
}

// Next returns the next server in rotation
func (rr *RoundRobin) Next() string {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	server := rr.servers[rr.current]
	rr.current = (rr.current + 1) % len(rr.servers)
	return server
}

// GetServers returns a copy of the current server list
func (rr *RoundRobin) GetServers() []string {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	servers := make([]string, len(rr.servers))
	copy(servers, rr.servers)
	return servers
}

// AddServer adds an instance to the rotation
func (rr *RoundRobin) AddServer(server string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	for _, s := range rr.servers {
		if s == server {
			return
		}
	}
	rr.servers = append(rr.servers, server)
}

// RemoveServer removes an instance from the rotation
func (rr *RoundRobin) RemoveServer(server string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	for i, s := range rr.servers {
		if s == server {
			rr.servers = append(rr.servers[:i], rr.servers[i+1:]...)
			if rr.current >= len(rr.servers) && len(rr.servers) > 0 {
				rr.current = 0
			}
			return
		}
	}
}

// GetStats returns balancer statistics
func (rr *RoundRobin) GetStats() map[string]interface{} {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	return map[string]interface{}{
		"servers":       rr.servers,
		"server_count":  len(rr.servers),
		"current_index": rr.current,
	}
}
