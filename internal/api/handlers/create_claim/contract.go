package create_claim

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/internal/service/ledger/models"
)

type LedgerService interface {
	CreateClaim(ctx context.Context, req *models.CreateClaimRequest) (*models.ClaimResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
