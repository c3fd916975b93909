package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/internal/service/ledger/models"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// Service сервис журнала резервирований ёмкости
type Service struct {
	claimRepo ClaimRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса журнала
func NewService(claimRepo ClaimRepository, logger Logger) *Service {
	return &Service{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

// SumReserved суммирует занятую ёмкость (канал, дата, час) с учётом
// same-area exemption: scheduled считается всегда, held — только когда
// его область не совпадает с запрашивающей
func (s *Service) SumReserved(ctx context.Context, channelID string, date time.Time, hour types.TimeString, area *string) (int, error) {
	claims, err := s.claimRepo.GetByChannelAndDate(ctx, channelID, date, &hour)
	if err != nil {
		s.logger.Error("SumReserved: repository error for channel=%s date=%s hour=%s: %v",
			channelID, date.Format(domain.DateFormat), hour, err)
		return 0, fmt.Errorf("%w: SumReserved - repository error: %v", ErrInternal, err)
	}

	return domain.CountReserved(claims, area), nil
}

// CreateClaim сохраняет новое резервирование
// Количество должно быть строго положительным, вид — известным
func (s *Service) CreateClaim(ctx context.Context, req *models.CreateClaimRequest) (*models.ClaimResponse, error) {
	s.logger.Info("CreateClaim: channel=%s date=%s hour=%s quantity=%d kind=%s",
		req.ChannelID, req.Date.Format(domain.DateFormat), req.Hour, req.Quantity, req.Kind)

	if req.Quantity <= 0 {
		s.logger.Warn("CreateClaim: rejected non-positive quantity %d", req.Quantity)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, req.Quantity)
	}

	kind := domain.ClaimKind(req.Kind)
	if !kind.IsValid() {
		s.logger.Warn("CreateClaim: rejected unknown kind %q", req.Kind)
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
	}

	hour, err := types.NewTimeStringFromString(req.Hour)
	if err != nil {
		s.logger.Warn("CreateClaim: invalid hour %q: %v", req.Hour, err)
		return nil, fmt.Errorf("%w: invalid hour %q", ErrInvalidInput, req.Hour)
	}

	claim := &domain.Claim{
		ChannelID: req.ChannelID,
		Date:      domain.DateOnly(req.Date),
		Hour:      hour,
		Quantity:  req.Quantity,
		Area:      req.Area,
		Kind:      kind,
	}

	created, err := s.claimRepo.Create(ctx, claim)
	if err != nil {
		s.logger.Error("CreateClaim: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateClaim - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateClaim: successfully created claim id=%d", created.ID)
	return models.FromDomainClaim(created), nil
}

// DeleteClaims массово удаляет резервирования по идентификаторам
// Используется при переносе touchpoint'а: старые claim'ы удаляются до
// вставки новых
func (s *Service) DeleteClaims(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: ids are required", ErrInvalidInput)
	}

	s.logger.Info("DeleteClaims: deleting %d claims", len(ids))

	if err := s.claimRepo.DeleteByIDs(ctx, ids); err != nil {
		s.logger.Error("DeleteClaims: repository error: %v", err)
		return fmt.Errorf("%w: DeleteClaims - repository error: %v", ErrInternal, err)
	}

	return nil
}

// FindClaimsForReschedule находит резервирования, соответствующие прежнему
// (канал, дата, час) touchpoint'а перед их удалением
// Час сравнивается усечённым до HH:MM; область, если передана, должна совпасть
func (s *Service) FindClaimsForReschedule(ctx context.Context, channelID string, date time.Time, hourPrefix string, area *string) ([]*models.ClaimResponse, error) {
	claims, err := s.claimRepo.FindByHourPrefix(ctx, channelID, date, hourPrefix, area)
	if err != nil {
		s.logger.Error("FindClaimsForReschedule: repository error for channel=%s date=%s hour=%s: %v",
			channelID, date.Format(domain.DateFormat), hourPrefix, err)
		return nil, fmt.Errorf("%w: FindClaimsForReschedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("FindClaimsForReschedule: found %d claims for channel=%s date=%s hour=%s",
		len(claims), channelID, date.Format(domain.DateFormat), hourPrefix)
	return models.FromDomainClaimList(claims), nil
}
