package repository

import (
	"context"
	"fmt"
	"strings"

	"travel-backoffice/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

type ActivityRepository interface {
	Record(ctx context.Context, activity *model.Activity) (*model.Activity, error)
	List(ctx context.Context, filter model.ActivityFilter) ([]*model.Activity, error)
}

type ActivityRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &ActivityRepositoryImpl{
		pool: pool,
	}
}

func (r *ActivityRepositoryImpl) Record(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	query := `
		INSERT INTO activity_log (request_id, actor, mutation, resource, entity_id, succeeded, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		activity.RequestID,
		activity.Actor,
		activity.Mutation,
		activity.Resource,
		activity.EntityID,
		activity.Succeeded,
		activity.Error,
	).Scan(
		&activity.ID,
		&activity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return activity, nil
}

// List returns the newest entries first, optionally narrowed by resource and actor.
func (r *ActivityRepositoryImpl) List(ctx context.Context, filter model.ActivityFilter) ([]*model.Activity, error) {
	wheres := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Resource != "" {
		wheres = append(wheres, fmt.Sprintf("resource = $%d", argPos))
		args = append(args, filter.Resource)
		argPos++
	}
	if filter.Actor != "" {
		wheres = append(wheres, fmt.Sprintf("actor = $%d", argPos))
		args = append(args, filter.Actor)
		argPos++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	args = append(args, limit)

	where := ""
	if len(wheres) > 0 {
		where = "WHERE " + strings.Join(wheres, " AND ")
	}
	query := fmt.Sprintf(`
		SELECT id, request_id, actor, mutation, resource, entity_id, succeeded, error, created_at
		FROM activity_log
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d
	`, where, argPos)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]*model.Activity, 0)
	for rows.Next() {
		var activity model.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.RequestID,
			&activity.Actor,
			&activity.Mutation,
			&activity.Resource,
			&activity.EntityID,
			&activity.Succeeded,
			&activity.Error,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		activities = append(activities, &activity)
	}
	return activities, rows.Err()
}
