package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

// kanbanOrder ranks priorities without relying on the lexical order of the
// stored strings. Works on both sqlite and mysql.
const kanbanOrder = "CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END DESC, created_at ASC"

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gormDB *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so cleared pointers (assignee, closed_at) are written too.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

// Delete removes the ticket together with its comments and history in one
// transaction. When the context already carries one, gorm nests a savepoint.
func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket comments: %w", err)
		}
		if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketHistoryModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket history: %w", err)
		}

		result := tx.Delete(&models.TicketModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("ticket not found")
		}
		return nil
	})
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadComments(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) List(ctx context.Context, vis ticket.Visibility, filter ticket.Filter) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.scopeVisibility(tx.Model(&models.TicketModel{}), vis)

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		if _, err := strconv.ParseUint(q, 10, 32); err == nil {
			// Ticket numbers match as substrings too, so "12" finds #12,
			// #112 and #124. CHAR keeps the cast portable across sqlite
			// and mysql.
			query = query.Where("LOWER(title) LIKE ? OR CAST(id AS CHAR) LIKE ?", pattern, "%"+q+"%")
		} else {
			query = query.Where("LOWER(title) LIKE ?", pattern)
		}
	} else if !filter.IncludeFinished {
		query = query.Where("status NOT IN ?", []string{
			vo.StatusResolved.String(),
			vo.StatusClosed.String(),
		})
	}

	if filter.Order == ticket.OrderKanban {
		query = query.Order(kanbanOrder)
	} else {
		query = query.Order("created_at DESC")
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

func (r *TicketRepository) FindCreatedAfter(ctx context.Context, after time.Time) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("created_at > ?", after.UnixMilli()).
		Order("created_at ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets created after: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

func (r *TicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *TicketRepository) FindCommentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	return r.commentsToDomain(commentModels)
}

func (r *TicketRepository) FindCommentsCreatedAfter(ctx context.Context, after time.Time) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("created_at > ?", after.UnixMilli()).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments created after: %w", err)
	}

	return r.commentsToDomain(commentModels)
}

// scopeVisibility translates the actor-derived filter into SQL so list,
// kanban and search all share the same scope.
func (r *TicketRepository) scopeVisibility(query *gorm.DB, vis ticket.Visibility) *gorm.DB {
	switch {
	case vis.All:
		return query
	case vis.Sector != nil:
		// Technicians also keep sight of tickets they opened themselves or
		// were assigned across sector lines.
		return query.Where(
			"origin_sector = ? OR target_sector = ? OR assignee_id = ? OR creator_id = ?",
			vis.Sector.String(), vis.Sector.String(), vis.ActorID, vis.ActorID,
		)
	case vis.CreatorID != nil:
		return query.Where("creator_id = ?", *vis.CreatorID)
	default:
		// An empty visibility matches nothing.
		return query.Where("1 = 0")
	}
}

func (r *TicketRepository) commentsToDomain(commentModels []models.CommentModel) ([]*ticket.Comment, error) {
	comments := make([]*ticket.Comment, len(commentModels))
	for i, model := range commentModels {
		c, err := r.mapper.CommentToDomain(&model)
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}
	return comments, nil
}

func (r *TicketRepository) loadComments(ctx context.Context, t *ticket.Ticket, ticketID uint) error {
	comments, err := r.FindCommentsByTicketID(ctx, ticketID)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if err := t.AddComment(c); err != nil {
			return err
		}
	}
	return nil
}
