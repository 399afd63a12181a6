package usecases

import (
	"context"
	"time"

	"workdesk/internal/domain/gamification"
	"workdesk/internal/domain/workorder"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

type KPIReportQuery struct {
	From time.Time
	To   time.Time
	// TopPerformers bounds the leaderboard slice in the report.
	TopPerformers int
}

type PerformerSummary struct {
	UserID      uint
	TotalPoints int
	Level       int
	Resolved    int
}

type KPIReportResult struct {
	From               time.Time
	To                 time.Time
	CountsByStatus     map[string]int64
	ResolvedInPeriod   int
	PointsInPeriod     int
	AvgResolutionHours float64
	OnTimeRate         float64
	TopPerformers      []PerformerSummary
}

// KPIReportUseCase assembles the operational dashboard numbers: backlog by
// status, throughput and timeliness over a period, and the current top
// performers.
type KPIReportUseCase struct {
	workOrderRepo workorder.Repository
	profileRepo   gamification.ProfileRepository
	logger        logger.Interface
}

func NewKPIReportUseCase(
	workOrderRepo workorder.Repository,
	profileRepo gamification.ProfileRepository,
	logger logger.Interface,
) *KPIReportUseCase {
	return &KPIReportUseCase{
		workOrderRepo: workOrderRepo,
		profileRepo:   profileRepo,
		logger:        logger,
	}
}

func (uc *KPIReportUseCase) Execute(ctx context.Context, query KPIReportQuery) (*KPIReportResult, error) {
	if query.To.IsZero() {
		query.To = time.Now()
	}
	if query.From.IsZero() {
		query.From = query.To.AddDate(0, -1, 0)
	}
	if query.From.After(query.To) {
		return nil, errors.NewValidationError("report period start must precede its end")
	}
	if query.TopPerformers <= 0 {
		query.TopPerformers = 5
	}

	counts, err := uc.workOrderRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count work orders by status", "error", err)
		return nil, err
	}

	countsByStatus := make(map[string]int64, len(counts))
	for status, n := range counts {
		countsByStatus[status.String()] = n
	}

	resolved, err := uc.workOrderRepo.FindResolvedBetween(ctx, query.From, query.To)
	if err != nil {
		uc.logger.Errorw("failed to load resolved work orders", "error", err)
		return nil, err
	}

	result := &KPIReportResult{
		From:           query.From,
		To:             query.To,
		CountsByStatus: countsByStatus,
	}

	var totalHours float64
	var onTime int
	for _, order := range resolved {
		result.ResolvedInPeriod++
		result.PointsInPeriod += order.PointsEarned()

		if duration, ok := order.ResolutionDuration(); ok {
			totalHours += duration.Hours()
		}
		if due := order.DueDate(); due == nil || !order.ResolvedAt().After(*due) {
			onTime++
		}
	}

	if result.ResolvedInPeriod > 0 {
		result.AvgResolutionHours = totalHours / float64(result.ResolvedInPeriod)
		result.OnTimeRate = float64(onTime) / float64(result.ResolvedInPeriod)
	}

	top, err := uc.profileRepo.ListTop(ctx, query.TopPerformers)
	if err != nil {
		uc.logger.Errorw("failed to load top performers", "error", err)
		return nil, err
	}
	for _, p := range top {
		result.TopPerformers = append(result.TopPerformers, PerformerSummary{
			UserID:      p.UserID(),
			TotalPoints: p.TotalPoints(),
			Level:       p.Level(),
			Resolved:    p.ResolvedCount(),
		})
	}

	return result, nil
}
