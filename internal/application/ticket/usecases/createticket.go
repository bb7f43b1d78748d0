package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title        string
	Description  string
	OriginSector string
	TargetSector string
	Priority     string
	CreatorID    uint
	Attachment   string
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

// CreateTicketUseCase opens a ticket on behalf of the creator. The origin
// sector defaults to the creator's own sector but can be overridden on the
// form, and every new ticket gets a status history entry so the timeline
// starts at creation.
type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	userRepo    user.Repository
	txMgr       TxManager
	mailer      Mailer
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	userRepo user.Repository,
	txMgr TxManager,
	mailer Mailer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		txMgr:       txMgr,
		mailer:      mailer,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "creator_id", cmd.CreatorID)

	creator, err := uc.userRepo.FindByID(ctx, cmd.CreatorID)
	if err != nil {
		uc.logger.Errorw("failed to load creator", "creator_id", cmd.CreatorID, "error", err)
		return nil, err
	}

	originSector := creator.Sector()
	if cmd.OriginSector != "" {
		originSector, err = vo.NewSector(cmd.OriginSector)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	targetSector, err := vo.NewSector(cmd.TargetSector)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		cmd.CreatorID,
		originSector,
		targetSector,
		priority,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Attachment != "" {
		newTicket.SetAttachment(cmd.Attachment)
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}

		actorID := cmd.CreatorID
		entry, err := ticket.NewHistoryEntry(
			newTicket.ID(),
			&actorID,
			ticket.FieldStatus,
			ticket.UnassignedDisplay,
			newTicket.Status().String(),
		)
		if err != nil {
			return fmt.Errorf("failed to create history entry: %w", err)
		}
		return uc.historyRepo.Save(txCtx, entry)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to persist ticket", "error", txErr)
		return nil, txErr
	}

	uc.notifyTargetSector(ctx, newTicket, creator)

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "target_sector", targetSector.String())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

// notifyTargetSector mails the technicians of the target sector plus the
// administrators. Delivery problems never fail the creation.
func (uc *CreateTicketUseCase) notifyTargetSector(ctx context.Context, t *ticket.Ticket, creator *user.User) {
	if uc.mailer == nil {
		return
	}

	recipients := map[string]struct{}{}
	techs, err := uc.userRepo.ListTechniciansBySector(ctx, t.TargetSector())
	if err != nil {
		uc.logger.Warnw("failed to load technicians for notification", "error", err)
	}
	for _, tech := range techs {
		recipients[tech.Email()] = struct{}{}
	}
	admins, err := uc.userRepo.ListAdministrators(ctx)
	if err != nil {
		uc.logger.Warnw("failed to load administrators for notification", "error", err)
	}
	for _, admin := range admins {
		recipients[admin.Email()] = struct{}{}
	}
	delete(recipients, creator.Email())
	if len(recipients) == 0 {
		return
	}

	to := make([]string, 0, len(recipients))
	for email := range recipients {
		to = append(to, email)
	}
	subject := fmt.Sprintf("New ticket #%d: %s", t.ID(), t.Title())
	body := fmt.Sprintf("%s opened a ticket for %s.\n\n%s", creator.Name(), t.TargetSector(), t.Description())
	if err := uc.mailer.Send(ctx, to, subject, body); err != nil {
		uc.logger.Warnw("failed to send ticket notification mail", "ticket_id", t.ID(), "error", err)
	}
}
