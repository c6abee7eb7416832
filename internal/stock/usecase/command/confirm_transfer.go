package command

import (
	"time"

	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

// ConfirmTransferCommand represents the command to confirm a pending transfer
type ConfirmTransferCommand struct {
	ID uint
}

// ConfirmTransferHandler handles confirm transfer command
type ConfirmTransferHandler struct {
	transferRepo domain.TransferRepository
}

// NewConfirmTransferHandler creates a new confirm transfer handler
func NewConfirmTransferHandler(transferRepo domain.TransferRepository) *ConfirmTransferHandler {
	return &ConfirmTransferHandler{transferRepo: transferRepo}
}

// Handle executes the confirm transfer command
func (h *ConfirmTransferHandler) Handle(cmd ConfirmTransferCommand) (*domain.StockTransfer, error) {
	return h.transferRepo.ConfirmAndMove(cmd.ID, time.Now())
}
