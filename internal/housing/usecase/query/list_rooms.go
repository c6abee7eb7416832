package query

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// ListRoomsQuery represents the query to list rooms
type ListRoomsQuery struct {
	FermeID uint // 0 lists rooms across every sector
	Limit   int
	Offset  int
}

// ListRoomsHandler handles list rooms query
type ListRoomsHandler struct {
	repo domain.RoomRepository
}

// NewListRoomsHandler creates a new list rooms handler
func NewListRoomsHandler(repo domain.RoomRepository) *ListRoomsHandler {
	return &ListRoomsHandler{repo: repo}
}

// Handle executes the list rooms query
func (h *ListRoomsHandler) Handle(query ListRoomsQuery) ([]domain.Room, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}

	var (
		rooms []domain.Room
		err   error
	)
	if query.FermeID > 0 {
		rooms, err = h.repo.FindByFerme(query.FermeID, limit, query.Offset)
	} else {
		rooms, err = h.repo.FindAll(limit, query.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return rooms, nil
}
