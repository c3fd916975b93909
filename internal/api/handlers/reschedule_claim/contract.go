package reschedule_claim

import (
	"context"

	rescheduleClaim "github.com/m04kA/SMC-CapacityService/internal/usecase/reschedule_claim"
)

type RescheduleClaimUseCase interface {
	Execute(ctx context.Context, req *rescheduleClaim.Request) (*rescheduleClaim.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
