package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"museum-ticketing/internal/model"
	apperrors "museum-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MuseumRepository interface {
	Create(ctx context.Context, museum *model.Museum) (*model.Museum, error)
	List(ctx context.Context) ([]*model.Museum, error)
	FindByID(ctx context.Context, id int) (*model.Museum, error)
	FindByMuseumID(ctx context.Context, museumID uuid.UUID) (*model.Museum, error)
	Update(ctx context.Context, id int, params model.UpdateMuseumParams) (*model.Museum, error)
	Count(ctx context.Context) (int, error)

	// Transaction methods
	// FindByIDWithLock 鎖定館方記錄，作為同一 (museum, date) 確認流程的序列化點
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Museum, error)
}

type MuseumRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewMuseumRepository(pool *pgxpool.Pool) MuseumRepository {
	return &MuseumRepositoryImpl{
		pool: pool,
	}
}

const museumColumns = `id, museum_id, name, description, museum_type, city, state,
		max_daily_capacity, created_at, updated_at`

func scanMuseum(row pgx.Row) (*model.Museum, error) {
	var museum model.Museum
	err := row.Scan(
		&museum.ID,
		&museum.MuseumID,
		&museum.Name,
		&museum.Description,
		&museum.MuseumType,
		&museum.City,
		&museum.State,
		&museum.MaxDailyCapacity,
		&museum.CreatedAt,
		&museum.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &museum, nil
}

func (r *MuseumRepositoryImpl) Create(ctx context.Context, museum *model.Museum) (*model.Museum, error) {
	if museum.MaxDailyCapacity <= 0 {
		museum.MaxDailyCapacity = model.DefaultDailyCapacity
	}

	query := fmt.Sprintf(`
		INSERT INTO museums (museum_id, name, description, museum_type, city, state, max_daily_capacity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, museumColumns)

	return scanMuseum(r.pool.QueryRow(ctx, query,
		museum.MuseumID, museum.Name, museum.Description,
		museum.MuseumType, museum.City, museum.State, museum.MaxDailyCapacity,
	))
}

func (r *MuseumRepositoryImpl) List(ctx context.Context) ([]*model.Museum, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM museums
		ORDER BY created_at DESC
	`, museumColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	museums := make([]*model.Museum, 0)
	for rows.Next() {
		museum, err := scanMuseum(rows)
		if err != nil {
			return nil, err
		}
		museums = append(museums, museum)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return museums, nil
}

func (r *MuseumRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Museum, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM museums
		WHERE id = $1
	`, museumColumns)

	museum, err := scanMuseum(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrMuseumNotFound
		}
		return nil, err
	}
	return museum, nil
}

func (r *MuseumRepositoryImpl) FindByMuseumID(ctx context.Context, museumID uuid.UUID) (*model.Museum, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM museums
		WHERE museum_id = $1
	`, museumColumns)

	museum, err := scanMuseum(r.pool.QueryRow(ctx, query, museumID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrMuseumNotFound
		}
		return nil, err
	}
	return museum, nil
}

func (r *MuseumRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Museum, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM museums
		WHERE id = $1
		FOR UPDATE
	`, museumColumns)

	museum, err := scanMuseum(tx.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrMuseumNotFound
		}
		return nil, err
	}
	return museum, nil
}

func (r *MuseumRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateMuseumParams) (*model.Museum, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Name != nil {
		appendSet("name", *params.Name)
	}
	if params.Description != nil {
		appendSet("description", *params.Description)
	}
	if params.MuseumType != nil {
		appendSet("museum_type", *params.MuseumType)
	}
	if params.City != nil {
		appendSet("city", *params.City)
	}
	if params.State != nil {
		appendSet("state", *params.State)
	}
	if params.MaxDailyCapacity != nil {
		if *params.MaxDailyCapacity <= 0 {
			return nil, apperrors.ErrInvalidInput
		}
		appendSet("max_daily_capacity", *params.MaxDailyCapacity)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	appendSet("updated_at", time.Now().UTC())

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE museums
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, museumColumns)

	museum, err := scanMuseum(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrMuseumNotFound
		}
		return nil, err
	}
	return museum, nil
}

func (r *MuseumRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM museums`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
