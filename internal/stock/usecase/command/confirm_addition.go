package command

import (
	"time"

	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

// ConfirmAdditionCommand represents the command to confirm a pending addition
type ConfirmAdditionCommand struct {
	ID uint
}

// ConfirmAdditionHandler handles confirm addition command
type ConfirmAdditionHandler struct {
	additionRepo domain.AdditionRepository
}

// NewConfirmAdditionHandler creates a new confirm addition handler
func NewConfirmAdditionHandler(additionRepo domain.AdditionRepository) *ConfirmAdditionHandler {
	return &ConfirmAdditionHandler{additionRepo: additionRepo}
}

// Handle executes the confirm addition command
func (h *ConfirmAdditionHandler) Handle(cmd ConfirmAdditionCommand) (*domain.StockAddition, error) {
	return h.additionRepo.ConfirmAndApply(cmd.ID, time.Now())
}
