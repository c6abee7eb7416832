package command

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

// Actor identifies the authenticated account performing a ledger operation
type Actor struct {
	UserID    uint
	Role      string
	SecteurID uint
}

// IsSuperAdmin reports whether the actor holds cross-sector privilege
func (a Actor) IsSuperAdmin() bool {
	return a.Role == "superadmin"
}

// AddStockCommand represents the command to add quantity to a sector's stock
type AddStockCommand struct {
	Actor     Actor
	SecteurID uint
	Item      string
	Quantity  int
	Unit      string
}

// AddStockResult reports how the addition was handled. A cross-sector actor
// produces a pending addition awaiting the sector's approval, a sector admin
// credits the balance directly.
type AddStockResult struct {
	Pending  bool                  `json:"pending"`
	Addition *domain.StockAddition `json:"addition,omitempty"`
	Stock    *domain.StockItem     `json:"stock,omitempty"`
}

// AddStockHandler handles add stock command
type AddStockHandler struct {
	stockRepo    domain.StockRepository
	additionRepo domain.AdditionRepository
}

// NewAddStockHandler creates a new add stock handler
func NewAddStockHandler(stockRepo domain.StockRepository, additionRepo domain.AdditionRepository) *AddStockHandler {
	return &AddStockHandler{stockRepo: stockRepo, additionRepo: additionRepo}
}

// Handle executes the add stock command
func (h *AddStockHandler) Handle(cmd AddStockCommand) (*AddStockResult, error) {
	if cmd.SecteurID == 0 {
		return nil, fmt.Errorf("%w: secteur_id is required", domain.ErrValidation)
	}
	if cmd.Item == "" {
		return nil, fmt.Errorf("%w: item is required", domain.ErrValidation)
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	if cmd.Actor.IsSuperAdmin() {
		addition := &domain.StockAddition{
			SecteurID: cmd.SecteurID,
			Item:      cmd.Item,
			Quantity:  cmd.Quantity,
			Unit:      cmd.Unit,
			Status:    domain.StatusPending,
			AddedBy:   cmd.Actor.UserID,
		}
		if err := h.additionRepo.Create(addition); err != nil {
			return nil, err
		}
		return &AddStockResult{Pending: true, Addition: addition}, nil
	}

	if err := h.stockRepo.AddQuantity(cmd.SecteurID, cmd.Item, cmd.Quantity, cmd.Unit); err != nil {
		return nil, err
	}

	stock, err := h.stockRepo.FindBySecteurAndItem(cmd.SecteurID, cmd.Item)
	if err != nil {
		return nil, err
	}
	return &AddStockResult{Stock: stock}, nil
}
