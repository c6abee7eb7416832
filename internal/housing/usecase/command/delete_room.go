package command

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// DeleteRoomCommand represents the command to delete a room
type DeleteRoomCommand struct {
	ID uint
}

// DeleteRoomHandler handles delete room command
type DeleteRoomHandler struct {
	repo domain.RoomRepository
}

// NewDeleteRoomHandler creates a new delete room handler
func NewDeleteRoomHandler(repo domain.RoomRepository) *DeleteRoomHandler {
	return &DeleteRoomHandler{repo: repo}
}

// Handle executes the delete room command
func (h *DeleteRoomHandler) Handle(cmd DeleteRoomCommand) (*domain.Room, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid room id")
	}

	room, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("room not found")
	}

	if room.OccupantsActuels > 0 {
		return nil, fmt.Errorf("room still has %d occupants", room.OccupantsActuels)
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return nil, fmt.Errorf("failed to delete room: %w", err)
	}

	return room, nil
}
