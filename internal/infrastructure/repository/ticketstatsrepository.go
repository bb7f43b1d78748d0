package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

// TicketStatsRepository serves the grouped aggregates behind the dashboard
// and the reports page.
type TicketStatsRepository struct {
	db *gorm.DB
}

func NewTicketStatsRepository(gormDB *gorm.DB) *TicketStatsRepository {
	return &TicketStatsRepository{db: gormDB}
}

func (r *TicketStatsRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return total, nil
}

func (r *TicketStatsRepository) CountByStatus(ctx context.Context) ([]ticket.StatusCount, error) {
	var counts []ticket.StatusCount
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	return counts, nil
}

func (r *TicketStatsRepository) CountByTargetSector(ctx context.Context) ([]ticket.SectorCount, error) {
	var counts []ticket.SectorCount
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).
		Select("target_sector as sector, COUNT(*) as count").
		Group("target_sector").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by sector: %w", err)
	}
	return counts, nil
}

func (r *TicketStatsRepository) CountByPriority(ctx context.Context) ([]ticket.PriorityCount, error) {
	var counts []ticket.PriorityCount
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).
		Select("priority, COUNT(*) as count").
		Group("priority").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by priority: %w", err)
	}
	return counts, nil
}

func (r *TicketStatsRepository) CountByCreator(ctx context.Context) ([]ticket.CreatorCount, error) {
	var counts []ticket.CreatorCount
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).
		Select("tickets.creator_id, users.name as creator_name, COUNT(*) as count").
		Joins("JOIN users ON users.id = tickets.creator_id").
		Group("tickets.creator_id, users.name").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by creator: %w", err)
	}
	return counts, nil
}

// ClosedDurations computes closed_at - created_at per closed ticket in Go
// from the stored millisecond timestamps, avoiding dialect-specific date
// arithmetic.
func (r *TicketStatsRepository) ClosedDurations(ctx context.Context) ([]time.Duration, error) {
	type closedRow struct {
		CreatedAt int64
		ClosedAt  int64
	}

	var rows []closedRow
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).
		Select("created_at, closed_at").
		Where("status = ? AND closed_at IS NOT NULL", vo.StatusClosed.String()).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load closed ticket durations: %w", err)
	}

	durations := make([]time.Duration, 0, len(rows))
	for _, row := range rows {
		durations = append(durations, time.Duration(row.ClosedAt-row.CreatedAt)*time.Millisecond)
	}
	return durations, nil
}
