package command

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// UpdateFermeCommand represents the command to update a sector
type UpdateFermeCommand struct {
	ID           uint
	Nom          string
	Localisation string
}

// UpdateFermeHandler handles update ferme command
type UpdateFermeHandler struct {
	repo domain.FermeRepository
}

// NewUpdateFermeHandler creates a new update ferme handler
func NewUpdateFermeHandler(repo domain.FermeRepository) *UpdateFermeHandler {
	return &UpdateFermeHandler{repo: repo}
}

// Handle executes the update ferme command
func (h *UpdateFermeHandler) Handle(cmd UpdateFermeCommand) (*domain.Ferme, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid ferme id")
	}
	if cmd.Nom == "" {
		return nil, fmt.Errorf("nom is required")
	}

	ferme, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("ferme not found")
	}

	ferme.Nom = cmd.Nom
	ferme.Localisation = cmd.Localisation

	if err := h.repo.Update(ferme); err != nil {
		return nil, fmt.Errorf("failed to update ferme: %w", err)
	}

	return ferme, nil
}
