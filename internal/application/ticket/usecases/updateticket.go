package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID uint
	Actor    ticket.Actor

	// Nil fields are left untouched. AssigneeSet distinguishes "unassign"
	// (set with nil AssigneeID) from "no change".
	Status      *string
	Priority    *string
	AssigneeID  *uint
	AssigneeSet bool
}

type UpdateTicketResult struct {
	TicketID      uint
	Status        string
	Priority      string
	AssigneeID    *uint
	ChangedFields []string
}

// UpdateTicketUseCase applies status, priority and assignment changes in one
// shot and records a history entry per field that actually changed. Values in
// history are the display strings shown in the timeline, with assignees
// resolved to names at change time.
type UpdateTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	userRepo    user.Repository
	txMgr       TxManager
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	userRepo user.Repository,
	txMgr TxManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	if !ticket.CanUpdate(cmd.Actor) {
		uc.logger.Warnw("actor not allowed to update tickets", "actor_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError("only technicians and administrators can update tickets")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	actorID := cmd.Actor.ID
	var entries []*ticket.HistoryEntry
	var changedFields []string

	if cmd.Status != nil {
		newStatus, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changed, old, err := t.ChangeStatus(newStatus)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if changed {
			entry, err := ticket.NewHistoryEntry(t.ID(), &actorID, ticket.FieldStatus, old.String(), newStatus.String())
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
			changedFields = append(changedFields, string(ticket.FieldStatus))
		}
	}

	if cmd.Priority != nil {
		newPriority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changed, old, err := t.ChangePriority(newPriority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if changed {
			entry, err := ticket.NewHistoryEntry(t.ID(), &actorID, ticket.FieldPriority, old.Display(), newPriority.Display())
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
			changedFields = append(changedFields, string(ticket.FieldPriority))
		}
	}

	if cmd.AssigneeSet {
		oldName, err := uc.assigneeName(ctx, t.AssigneeID())
		if err != nil {
			return nil, err
		}
		newName, err := uc.assigneeName(ctx, cmd.AssigneeID)
		if err != nil {
			return nil, err
		}
		if changed, _ := t.AssignTo(cmd.AssigneeID); changed {
			entry, err := ticket.NewHistoryEntry(t.ID(), &actorID, ticket.FieldAssignedTo, oldName, newName)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
			changedFields = append(changedFields, string(ticket.FieldAssignedTo))
		}
	}

	if len(entries) > 0 {
		txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				return fmt.Errorf("failed to update ticket: %w", err)
			}
			for _, entry := range entries {
				if err := uc.historyRepo.Save(txCtx, entry); err != nil {
					return fmt.Errorf("failed to save history entry: %w", err)
				}
			}
			return nil
		})
		if txErr != nil {
			uc.logger.Errorw("failed to persist ticket update", "ticket_id", t.ID(), "error", txErr)
			return nil, txErr
		}
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "changed_fields", changedFields)

	return &UpdateTicketResult{
		TicketID:      t.ID(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		AssigneeID:    t.AssigneeID(),
		ChangedFields: changedFields,
	}, nil
}

// assigneeName resolves an assignee ID to the name recorded in history.
// A nil ID renders as the unassigned placeholder.
func (uc *UpdateTicketUseCase) assigneeName(ctx context.Context, id *uint) (string, error) {
	if id == nil {
		return ticket.UnassignedDisplay, nil
	}
	u, err := uc.userRepo.FindByID(ctx, *id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return "", errors.NewValidationError("assignee does not exist")
		}
		return "", err
	}
	return u.Name(), nil
}
