package usecases

import "context"

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*ProfileDTO, error)
}

type LeaderboardExecutor interface {
	Execute(ctx context.Context, query LeaderboardQuery) (*LeaderboardResult, error)
}

type RecalculateProfilesExecutor interface {
	Execute(ctx context.Context, cmd RecalculateProfilesCommand) (*RecalculateProfilesResult, error)
}

type BackfillPointsExecutor interface {
	Execute(ctx context.Context, cmd BackfillPointsCommand) (*BackfillPointsResult, error)
}
