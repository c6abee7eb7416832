package query

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/user/domain"
)

// GetStatsQuery represents the query to get account statistics (superadmin only)
type GetStatsQuery struct{}

// UserStats represents account statistics
type UserStats struct {
	TotalUsers      int64 `json:"total_users"`
	SuperAdminCount int64 `json:"superadmin_count"`
	AdminCount      int64 `json:"admin_count"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.UserRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.UserRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*UserStats, error) {
	totalUsers, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	superAdminCount, err := h.repo.CountByRole(domain.RoleSuperAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to count superadmins: %w", err)
	}

	adminCount, err := h.repo.CountByRole(domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}

	return &UserStats{
		TotalUsers:      totalUsers,
		SuperAdminCount: superAdminCount,
		AdminCount:      adminCount,
	}, nil
}
