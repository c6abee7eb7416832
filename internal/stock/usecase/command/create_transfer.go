package command

import (
	"errors"
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

// CreateTransferCommand represents the command to propose a stock transfer
type CreateTransferCommand struct {
	FromSecteurID uint
	ToSecteurID   uint
	Item          string
	Quantity      int
	Unit          string
}

// CreateTransferHandler handles create transfer command
type CreateTransferHandler struct {
	stockRepo    domain.StockRepository
	transferRepo domain.TransferRepository
}

// NewCreateTransferHandler creates a new create transfer handler
func NewCreateTransferHandler(stockRepo domain.StockRepository, transferRepo domain.TransferRepository) *CreateTransferHandler {
	return &CreateTransferHandler{stockRepo: stockRepo, transferRepo: transferRepo}
}

// Handle executes the create transfer command. The sender's balance is
// checked up front so an impossible transfer never produces a pending row.
func (h *CreateTransferHandler) Handle(cmd CreateTransferCommand) (*domain.StockTransfer, error) {
	if cmd.FromSecteurID == 0 || cmd.ToSecteurID == 0 {
		return nil, fmt.Errorf("%w: both secteur ids are required", domain.ErrValidation)
	}
	if cmd.FromSecteurID == cmd.ToSecteurID {
		return nil, fmt.Errorf("%w: cannot transfer to the same secteur", domain.ErrValidation)
	}
	if cmd.Item == "" {
		return nil, fmt.Errorf("%w: item is required", domain.ErrValidation)
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	available := 0
	sender, err := h.stockRepo.FindBySecteurAndItem(cmd.FromSecteurID, cmd.Item)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if sender != nil {
		available = sender.Quantity
	}

	if available < cmd.Quantity {
		return nil, &domain.InsufficientStockError{
			Item:      cmd.Item,
			Requested: cmd.Quantity,
			Available: available,
		}
	}

	transfer := &domain.StockTransfer{
		FromSecteurID: cmd.FromSecteurID,
		ToSecteurID:   cmd.ToSecteurID,
		Item:          cmd.Item,
		Quantity:      cmd.Quantity,
		Unit:          cmd.Unit,
		Status:        domain.StatusPending,
	}
	if err := h.transferRepo.Create(transfer); err != nil {
		return nil, err
	}

	return transfer, nil
}
