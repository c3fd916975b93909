package allocate_demand

import (
	"context"

	allocateDemand "github.com/m04kA/SMC-CapacityService/internal/usecase/allocate_demand"
)

type AllocateDemandUseCase interface {
	Execute(ctx context.Context, req *allocateDemand.Request) (*allocateDemand.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
