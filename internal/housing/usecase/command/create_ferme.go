package command

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// CreateFermeCommand represents the command to create a sector
type CreateFermeCommand struct {
	Nom          string
	Localisation string
}

// CreateFermeHandler handles create ferme command
type CreateFermeHandler struct {
	repo domain.FermeRepository
}

// NewCreateFermeHandler creates a new create ferme handler
func NewCreateFermeHandler(repo domain.FermeRepository) *CreateFermeHandler {
	return &CreateFermeHandler{repo: repo}
}

// Handle executes the create ferme command
func (h *CreateFermeHandler) Handle(cmd CreateFermeCommand) (*domain.Ferme, error) {
	if cmd.Nom == "" {
		return nil, fmt.Errorf("nom is required")
	}

	ferme := &domain.Ferme{
		Nom:          cmd.Nom,
		Localisation: cmd.Localisation,
	}

	if err := h.repo.Create(ferme); err != nil {
		return nil, fmt.Errorf("failed to create ferme: %w", err)
	}

	return ferme, nil
}
