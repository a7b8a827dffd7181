package repository

import (
	"context"
	"fmt"

	"museum-ticketing/internal/model"
	apperrors "museum-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	FindByBookingID(ctx context.Context, bookingID string) (*model.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]*model.Booking, error)
	// SumTicketsForDate 彙總該館該日已提交的票數；是容量帳的讀取路徑
	SumTicketsForDate(ctx context.Context, museumID int, tourDate string) (int, error)
	// ExistsForUserAndMuseum 評論/回饋資格：是否存在任一筆已提交訂票
	ExistsForUserAndMuseum(ctx context.Context, userID string, museumID int) (bool, error)
	Count(ctx context.Context) (int, error)
	SumTickets(ctx context.Context) (int, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error)
	// SumTicketsForDateTx 在持有館方行鎖的交易內重新彙總，與 Create 同屬一個原子單元
	SumTicketsForDateTx(ctx context.Context, tx pgx.Tx, museumID int, tourDate string) (int, error)
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

const bookingColumns = `id, booking_id, user_id, email, museum_id, museum_name,
		tour_date, tickets, booking_date, payment_method, payment_status, created_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var booking model.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingID,
		&booking.UserID,
		&booking.Email,
		&booking.MuseumID,
		&booking.MuseumName,
		&booking.TourDate,
		&booking.Tickets,
		&booking.BookingDate,
		&booking.PaymentMethod,
		&booking.PaymentStatus,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error) {
	query := fmt.Sprintf(`
		INSERT INTO bookings (
			booking_id, user_id, email, museum_id, museum_name,
			tour_date, tickets, booking_date, payment_method, payment_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s
	`, bookingColumns)

	created, err := scanBooking(tx.QueryRow(ctx, query,
		booking.BookingID, booking.UserID, booking.Email,
		booking.MuseumID, booking.MuseumName, booking.TourDate,
		booking.Tickets, booking.BookingDate, booking.PaymentMethod, booking.PaymentStatus,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return created, nil
}

func (r *BookingRepositoryImpl) FindByBookingID(ctx context.Context, bookingID string) (*model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings
		WHERE booking_id = $1
	`, bookingColumns)

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]*model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC
	`, bookingColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*model.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

const sumTicketsForDateQuery = `
	SELECT COALESCE(SUM(tickets), 0)
	FROM bookings
	WHERE museum_id = $1 AND tour_date = $2
`

func (r *BookingRepositoryImpl) SumTicketsForDate(ctx context.Context, museumID int, tourDate string) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, sumTicketsForDateQuery, museumID, tourDate).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *BookingRepositoryImpl) SumTicketsForDateTx(ctx context.Context, tx pgx.Tx, museumID int, tourDate string) (int, error) {
	var total int
	err := tx.QueryRow(ctx, sumTicketsForDateQuery, museumID, tourDate).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *BookingRepositoryImpl) ExistsForUserAndMuseum(ctx context.Context, userID string, museumID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND museum_id = $2
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, museumID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *BookingRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingRepositoryImpl) SumTickets(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(tickets), 0) FROM bookings`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
