package query

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// GetRoomQuery represents the query to get a room by ID
type GetRoomQuery struct {
	ID uint
}

// GetRoomHandler handles get room query
type GetRoomHandler struct {
	repo domain.RoomRepository
}

// NewGetRoomHandler creates a new get room handler
func NewGetRoomHandler(repo domain.RoomRepository) *GetRoomHandler {
	return &GetRoomHandler{repo: repo}
}

// Handle executes the get room query
func (h *GetRoomHandler) Handle(query GetRoomQuery) (*domain.Room, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("invalid room id")
	}

	room, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("room not found")
	}

	return room, nil
}
