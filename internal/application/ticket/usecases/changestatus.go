package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID uint
	Actor    ticket.Actor
	Status   string
}

type ChangeStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
	Changed   bool
}

// ChangeStatusUseCase is the status-only shortcut used by the kanban board.
// Any status can be set from any other; there is no transition graph, only
// the role guard.
type ChangeStatusUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	txMgr       TxManager
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	txMgr TxManager,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	if !ticket.CanUpdate(cmd.Actor) {
		return nil, errors.NewForbiddenError("only technicians and administrators can change ticket status")
	}

	newStatus, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	changed, old, err := t.ChangeStatus(newStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !changed {
		return &ChangeStatusResult{
			TicketID:  t.ID(),
			OldStatus: old.String(),
			NewStatus: newStatus.String(),
			Changed:   false,
		}, nil
	}

	actorID := cmd.Actor.ID
	entry, err := ticket.NewHistoryEntry(t.ID(), &actorID, ticket.FieldStatus, old.String(), newStatus.String())
	if err != nil {
		return nil, err
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		return uc.historyRepo.Save(txCtx, entry)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to persist status change", "ticket_id", t.ID(), "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "from", old.String(), "to", newStatus.String())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: old.String(),
		NewStatus: newStatus.String(),
		Changed:   true,
	}, nil
}
