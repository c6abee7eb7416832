package command

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// CreateRoomCommand represents the command to create a room in a sector
type CreateRoomCommand struct {
	FermeID        uint
	Numero         string
	Genre          string
	CapaciteTotale int
}

// CreateRoomHandler handles create room command
type CreateRoomHandler struct {
	repo domain.RoomRepository
}

// NewCreateRoomHandler creates a new create room handler
func NewCreateRoomHandler(repo domain.RoomRepository) *CreateRoomHandler {
	return &CreateRoomHandler{repo: repo}
}

// Handle executes the create room command
func (h *CreateRoomHandler) Handle(cmd CreateRoomCommand) (*domain.Room, error) {
	if cmd.FermeID == 0 {
		return nil, fmt.Errorf("ferme_id is required")
	}
	if cmd.Numero == "" {
		return nil, fmt.Errorf("numero is required")
	}
	if cmd.Genre != domain.GenreHommes && cmd.Genre != domain.GenreFemmes {
		return nil, fmt.Errorf("invalid genre: %s", cmd.Genre)
	}
	if cmd.CapaciteTotale < 1 {
		return nil, fmt.Errorf("capacite_totale must be at least 1")
	}

	// Room numbers are unique per sector and genre
	key := domain.RoomKey{FermeID: cmd.FermeID, Numero: cmd.Numero, Genre: cmd.Genre}
	if existing, _ := h.repo.FindByKey(key); existing != nil {
		return nil, fmt.Errorf("room %s (%s) already exists in this ferme", cmd.Numero, cmd.Genre)
	}

	room := &domain.Room{
		FermeID:        cmd.FermeID,
		Numero:         cmd.Numero,
		Genre:          cmd.Genre,
		CapaciteTotale: cmd.CapaciteTotale,
	}

	if err := h.repo.Create(room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return room, nil
}
