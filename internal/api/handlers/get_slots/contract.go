package get_slots

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

type SlotResolver interface {
	Resolve(ctx context.Context, groupID string) ([]types.TimeString, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
