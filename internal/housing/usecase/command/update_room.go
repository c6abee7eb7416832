package command

import (
	"fmt"
	"time"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// UpdateRoomCommand represents the command to update a room's capacity
type UpdateRoomCommand struct {
	ID             uint
	CapaciteTotale int
}

// UpdateRoomHandler handles update room command
type UpdateRoomHandler struct {
	repo domain.RoomRepository
}

// NewUpdateRoomHandler creates a new update room handler
func NewUpdateRoomHandler(repo domain.RoomRepository) *UpdateRoomHandler {
	return &UpdateRoomHandler{repo: repo}
}

// Handle executes the update room command
func (h *UpdateRoomHandler) Handle(cmd UpdateRoomCommand) (*domain.Room, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid room id")
	}
	if cmd.CapaciteTotale < 1 {
		return nil, fmt.Errorf("capacite_totale must be at least 1")
	}

	room, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("room not found")
	}

	room.CapaciteTotale = cmd.CapaciteTotale
	room.UpdatedAt = time.Now()

	if err := h.repo.Update(room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return room, nil
}
