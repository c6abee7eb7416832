package command

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// DeleteFermeCommand represents the command to delete a sector
type DeleteFermeCommand struct {
	ID uint
}

// DeleteFermeHandler handles delete ferme command
type DeleteFermeHandler struct {
	repo domain.FermeRepository
}

// NewDeleteFermeHandler creates a new delete ferme handler
func NewDeleteFermeHandler(repo domain.FermeRepository) *DeleteFermeHandler {
	return &DeleteFermeHandler{repo: repo}
}

// Handle executes the delete ferme command
func (h *DeleteFermeHandler) Handle(cmd DeleteFermeCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid ferme id")
	}

	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return fmt.Errorf("ferme not found")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete ferme: %w", err)
	}

	return nil
}
