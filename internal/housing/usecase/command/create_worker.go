package command

import (
	"fmt"
	"time"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// CreateWorkerCommand represents the command to register a worker in a sector
type CreateWorkerCommand struct {
	FermeID    uint
	Nom        string
	CIN        string
	Telephone  string
	Sexe       string
	Age        int
	Chambre    string
	DateEntree time.Time
}

// CreateWorkerHandler handles create worker command
type CreateWorkerHandler struct {
	repo domain.WorkerRepository
}

// NewCreateWorkerHandler creates a new create worker handler
func NewCreateWorkerHandler(repo domain.WorkerRepository) *CreateWorkerHandler {
	return &CreateWorkerHandler{repo: repo}
}

// Handle executes the create worker command
func (h *CreateWorkerHandler) Handle(cmd CreateWorkerCommand) (*domain.Worker, error) {
	if cmd.FermeID == 0 {
		return nil, fmt.Errorf("ferme_id is required")
	}
	if cmd.Nom == "" {
		return nil, fmt.Errorf("nom is required")
	}
	if cmd.CIN == "" {
		return nil, fmt.Errorf("cin is required")
	}
	if cmd.Sexe != domain.SexeHomme && cmd.Sexe != domain.SexeFemme {
		return nil, fmt.Errorf("invalid sexe: %s", cmd.Sexe)
	}

	dateEntree := cmd.DateEntree
	if dateEntree.IsZero() {
		dateEntree = time.Now()
	}

	worker := &domain.Worker{
		FermeID:    cmd.FermeID,
		Nom:        cmd.Nom,
		CIN:        cmd.CIN,
		Telephone:  cmd.Telephone,
		Sexe:       cmd.Sexe,
		Age:        cmd.Age,
		Chambre:    cmd.Chambre,
		Statut:     domain.StatutActif,
		DateEntree: dateEntree,
	}

	if err := h.repo.Create(worker); err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	return worker, nil
}
