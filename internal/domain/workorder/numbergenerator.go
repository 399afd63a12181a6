package workorder

import "context"

// NumberGenerator hands out unique work order numbers in the form WO-000123.
// Implementations must stay monotonic under concurrent callers.
type NumberGenerator interface {
	Next(ctx context.Context) (string, error)
}
