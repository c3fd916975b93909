package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapacityService/pkg/psqlbuilder"
)

// Repository репозиторий локального справочника слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindActiveByGroup получает активные слоты группы, упорядоченные по метке
// Лексикографический порядок HH:MM совпадает с хронологическим
func (r *Repository) FindActiveByGroup(ctx context.Context, groupID string) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"group_id",
		"label",
		"active",
		"created_at",
		"updated_at",
	).
		From("channel_slots").
		Where(squirrel.Eq{"group_id": groupID}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("label ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByGroup - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByGroup - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.GroupID,
			&s.Label,
			&s.Active,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: FindActiveByGroup - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindActiveByGroup - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
