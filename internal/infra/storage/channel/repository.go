package channel

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapacityService/pkg/psqlbuilder"
)

// Repository репозиторий справочника каналов
// Каналы создаются внешним процессом синхронизации, поэтому здесь только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каналов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var channelColumns = []string{
	"id",
	"name",
	"external_id",
	"slot_group_id",
	"max_hourly_capacity",
	"created_at",
	"updated_at",
}

// GetByName получает канал по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Channel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(channelColumns...).
		From("channels").
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanChannel(executor.QueryRowContext(ctx, query, args...), "GetByName")
}

// GetByExternalID получает канал по внешнему ID
func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*domain.Channel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(channelColumns...).
		From("channels").
		Where(squirrel.Eq{"external_id": externalID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByExternalID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanChannel(executor.QueryRowContext(ctx, query, args...), "GetByExternalID")
}

func (r *Repository) scanChannel(row *sql.Row, method string) (*domain.Channel, error) {
	var channel domain.Channel
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&channel.ID,
		&channel.Name,
		&channel.ExternalID,
		&channel.SlotGroupID,
		&channel.MaxHourlyCapacity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrChannelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan channel: %v", ErrScanRow, method, err)
	}

	channel.CreatedAt = createdAt.Time
	channel.UpdatedAt = updatedAt.Time

	return &channel, nil
}
