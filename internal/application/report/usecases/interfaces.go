package usecases

import "context"

type KPIReportExecutor interface {
	Execute(ctx context.Context, query KPIReportQuery) (*KPIReportResult, error)
}
