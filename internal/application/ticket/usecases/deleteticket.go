package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	Actor    ticket.Actor
}

// DeleteTicketUseCase removes a ticket with its comments and history.
// Administrators only.
type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	txMgr      TxManager
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, txMgr TxManager, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo, txMgr: txMgr, logger: logger}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	if !cmd.Actor.Role.IsAdministrator() {
		return errors.NewForbiddenError("only administrators can delete tickets")
	}

	if _, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID); err != nil {
		return err
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Delete(txCtx, cmd.TicketID); err != nil {
			return fmt.Errorf("failed to delete ticket: %w", err)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", txErr)
		return txErr
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
