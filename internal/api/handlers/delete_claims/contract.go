package delete_claims

import "context"

type LedgerService interface {
	DeleteClaims(ctx context.Context, ids []int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
