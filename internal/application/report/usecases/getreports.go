package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CountDTO struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type CreatorCountDTO struct {
	CreatorID   uint   `json:"creator_id"`
	CreatorName string `json:"creator_name"`
	Count       int64  `json:"count"`
}

type ReportsResult struct {
	TotalTickets      int64             `json:"total_tickets"`
	ByStatus          []CountDTO        `json:"by_status"`
	ByTargetSector    []CountDTO        `json:"by_target_sector"`
	ByPriority        []CountDTO        `json:"by_priority"`
	ByCreator         []CreatorCountDTO `json:"by_creator"`
	AverageResolution string            `json:"average_resolution"`
}

type GetReportsExecutor interface {
	Execute(ctx context.Context) (*ReportsResult, error)
}

// GetReportsUseCase computes the reporting view on demand. Nothing is
// cached or materialized; every call hits the grouped queries directly.
type GetReportsUseCase struct {
	statsRepo ticket.StatsRepository
	logger    logger.Interface
}

func NewGetReportsUseCase(statsRepo ticket.StatsRepository, logger logger.Interface) *GetReportsUseCase {
	return &GetReportsUseCase{statsRepo: statsRepo, logger: logger}
}

func (uc *GetReportsUseCase) Execute(ctx context.Context) (*ReportsResult, error) {
	uc.logger.Debugw("executing get reports use case")

	total, err := uc.statsRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := uc.statsRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	bySector, err := uc.statsRepo.CountByTargetSector(ctx)
	if err != nil {
		return nil, err
	}
	byPriority, err := uc.statsRepo.CountByPriority(ctx)
	if err != nil {
		return nil, err
	}
	byCreator, err := uc.statsRepo.CountByCreator(ctx)
	if err != nil {
		return nil, err
	}

	durations, err := uc.statsRepo.ClosedDurations(ctx)
	if err != nil {
		return nil, err
	}

	result := &ReportsResult{
		TotalTickets:      total,
		ByStatus:          make([]CountDTO, 0, len(byStatus)),
		ByTargetSector:    make([]CountDTO, 0, len(bySector)),
		ByPriority:        make([]CountDTO, 0, len(byPriority)),
		ByCreator:         make([]CreatorCountDTO, 0, len(byCreator)),
		AverageResolution: averageResolution(durations),
	}
	for _, c := range byStatus {
		result.ByStatus = append(result.ByStatus, CountDTO{Label: c.Status, Count: c.Count})
	}
	for _, c := range bySector {
		result.ByTargetSector = append(result.ByTargetSector, CountDTO{Label: c.Sector, Count: c.Count})
	}
	for _, c := range byPriority {
		result.ByPriority = append(result.ByPriority, CountDTO{Label: c.Priority, Count: c.Count})
	}
	for _, c := range byCreator {
		result.ByCreator = append(result.ByCreator, CreatorCountDTO{
			CreatorID:   c.CreatorID,
			CreatorName: c.CreatorName,
			Count:       c.Count,
		})
	}

	return result, nil
}

// averageResolution renders the mean closed_at-created_at span as a compact
// duration string. No closed tickets renders as the floor value.
func averageResolution(durations []time.Duration) string {
	if len(durations) == 0 {
		return utils.FormatDuration(0)
	}
	var total time.Duration
	for _, d := range durations {
		total += d
	}
	return utils.FormatDuration(total / time.Duration(len(durations)))
}
