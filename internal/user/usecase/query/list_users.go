package query

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/user/domain"
)

// ListUsersQuery represents the query to list accounts
type ListUsersQuery struct {
	FermeID uint // 0 lists every account
	Limit   int
	Offset  int
}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(query ListUsersQuery) ([]domain.User, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}

	var (
		users []domain.User
		err   error
	)
	if query.FermeID > 0 {
		users, err = h.repo.FindByFerme(query.FermeID, limit, query.Offset)
	} else {
		users, err = h.repo.FindAll(limit, query.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
