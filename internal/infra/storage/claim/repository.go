package claim

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapacityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// Repository репозиторий журнала резервирований ёмкости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резервирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var claimColumns = []string{
	"id",
	"channel_id",
	"claim_date",
	"hour",
	"quantity",
	"area",
	"kind",
	"created_at",
}

// Create сохраняет новое резервирование
// Количество должно быть строго положительным: фильтрация нулевых и
// отрицательных значений лежит на вызывающем, здесь последний рубеж
func (r *Repository) Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error) {
	if claim.Quantity <= 0 {
		return nil, fmt.Errorf("%w: Create - got %d", ErrInvalidQuantity, claim.Quantity)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("capacity_claims").
		Columns(
			"channel_id",
			"claim_date",
			"hour",
			"quantity",
			"area",
			"kind",
		).
		Values(
			claim.ChannelID,
			claim.Date,
			claim.Hour,
			claim.Quantity,
			claim.Area,
			claim.Kind,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&claim.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	claim.CreatedAt = createdAt.Time

	return claim, nil
}

// GetByChannelAndDate получает резервирования канала на дату
// Опционально сужает выборку до конкретного часа
func (r *Repository) GetByChannelAndDate(ctx context.Context, channelID string, date time.Time, hour *types.TimeString) ([]*domain.Claim, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(claimColumns...).
		From("capacity_claims").
		Where(squirrel.Eq{"channel_id": channelID}).
		Where(squirrel.Eq{"claim_date": domain.DateOnly(date)}).
		OrderBy("hour ASC, id ASC")

	// Фильтрация по часу, если указан
	if hour != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"hour": *hour})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByChannelAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByChannelAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanClaims(rows)
}

// FindByHourPrefix находит резервирования канала на дату по усечённому
// часу (HH:MM) и, если область указана, с совпадающей областью
// Используется при переносе touchpoint'а для поиска удаляемых claim'ов
func (r *Repository) FindByHourPrefix(ctx context.Context, channelID string, date time.Time, hourPrefix string, area *string) ([]*domain.Claim, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(claimColumns...).
		From("capacity_claims").
		Where(squirrel.Eq{"channel_id": channelID}).
		Where(squirrel.Eq{"claim_date": domain.DateOnly(date)}).
		Where(squirrel.Like{"hour": types.TruncateToHHMM(hourPrefix) + "%"}).
		OrderBy("id ASC")

	if area != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"area": *area})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByHourPrefix - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByHourPrefix - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanClaims(rows)
}

// DeleteByIDs массово удаляет резервирования по идентификаторам
func (r *Repository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("capacity_claims").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByIDs - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByIDs - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanClaims сканирует результаты запроса в слайс резервирований
func (r *Repository) scanClaims(rows *sql.Rows) ([]*domain.Claim, error) {
	claims := make([]*domain.Claim, 0)

	for rows.Next() {
		var claim domain.Claim
		var createdAt sql.NullTime

		err := rows.Scan(
			&claim.ID,
			&claim.ChannelID,
			&claim.Date,
			&claim.Hour,
			&claim.Quantity,
			&claim.Area,
			&claim.Kind,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanClaims - scan row: %v", ErrScanRow, err)
		}

		claim.CreatedAt = createdAt.Time

		claims = append(claims, &claim)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanClaims - rows error: %v", ErrScanRow, err)
	}

	return claims, nil
}
