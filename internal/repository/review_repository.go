package repository

import (
	"context"

	"museum-ticketing/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *model.Review) (*model.Review, error)
	CreateFeedback(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error)
	ListReviewsByMuseumID(ctx context.Context, museumID int) ([]*model.Review, error)
	CountReviews(ctx context.Context) (int, error)
	CountFeedback(ctx context.Context) (int, error)
}

type ReviewRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &ReviewRepositoryImpl{
		pool: pool,
	}
}

func (r *ReviewRepositoryImpl) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	query := `
		INSERT INTO reviews (user_id, email, museum_id, museum_name, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, email, museum_id, museum_name, rating, comment, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		review.UserID, review.Email, review.MuseumID,
		review.MuseumName, review.Rating, review.Comment,
	).Scan(
		&review.ID,
		&review.UserID,
		&review.Email,
		&review.MuseumID,
		&review.MuseumName,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return review, nil
}

func (r *ReviewRepositoryImpl) CreateFeedback(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error) {
	query := `
		INSERT INTO feedbacks (user_id, email, museum_id, museum_name, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, email, museum_id, museum_name, message, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		feedback.UserID, feedback.Email, feedback.MuseumID,
		feedback.MuseumName, feedback.Message,
	).Scan(
		&feedback.ID,
		&feedback.UserID,
		&feedback.Email,
		&feedback.MuseumID,
		&feedback.MuseumName,
		&feedback.Message,
		&feedback.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return feedback, nil
}

func (r *ReviewRepositoryImpl) ListReviewsByMuseumID(ctx context.Context, museumID int) ([]*model.Review, error) {
	query := `
		SELECT id, user_id, email, museum_id, museum_name, rating, comment, created_at
		FROM reviews
		WHERE museum_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, museumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]*model.Review, 0)
	for rows.Next() {
		var review model.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.Email,
			&review.MuseumID,
			&review.MuseumName,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *ReviewRepositoryImpl) CountReviews(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReviewRepositoryImpl) CountFeedback(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM feedbacks`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
