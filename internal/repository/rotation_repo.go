package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/senyabanana/tender-vault/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// RotationRepository - интерфейс для работы с циклами показа.
type RotationRepository interface {
	PublicIDExists(ctx context.Context, publicId string) (bool, error)
	ActivateCycle(ctx context.Context, tenderId, publicId string, now time.Time, window, cooldown time.Duration) (*models.Cycle, error)
	GetActiveCycle(ctx context.Context, tenderId string) (*models.Cycle, error)
	ListExpiredCycles(ctx context.Context, now time.Time) ([]models.Cycle, error)
	ReclaimCycle(ctx context.Context, cycleId, tenderId string, now time.Time, cooldown time.Duration) error
	AwardCycle(ctx context.Context, tenderId, performerId string, now time.Time) (*models.AwardResult, error)
}

// PostgresRotationRepository - реализация RotationRepository для базы данных.
type PostgresRotationRepository struct {
	DB     *pgxpool.Pool
	Orders OrderRepository
}

// NewPostgresRotationRepository создаёт новый экземпляр PostgresRotationRepository.
func NewPostgresRotationRepository(db *pgxpool.Pool, orders OrderRepository) *PostgresRotationRepository {
	return &PostgresRotationRepository{DB: db, Orders: orders}
}

const cycleColumns = `id, tender_id, cycle_number, public_id, status, display_start_time, display_end_time, order_id, created_at`

func scanCycle(row pgx.Row) (*models.Cycle, error) {
	var c models.Cycle
	err := row.Scan(
		&c.ID,
		&c.TenderID,
		&c.CycleNumber,
		&c.PublicID,
		&c.Status,
		&c.DisplayStartTime,
		&c.DisplayEndTime,
		&c.OrderID,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// lockTender читает тендер под блокировкой строки. Порядок блокировок во всех
// переходах одинаковый: сначала тендер, потом цикл.
func lockTender(ctx context.Context, tx pgx.Tx, tenderId string) (*models.Tender, error) {
	query := `SELECT ` + tenderColumns + ` FROM tender WHERE id = $1 FOR UPDATE`
	tender, err := scanTender(tx.QueryRow(ctx, query, tenderId))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrTenderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock tender: %w", err)
	}
	return tender, nil
}

// PublicIDExists проверяет, выдавался ли уже такой публичный идентификатор.
func (r *PostgresRotationRepository) PublicIDExists(ctx context.Context, publicId string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM rotation_cycle WHERE public_id = $1)`
	err := r.DB.QueryRow(ctx, query, publicId).Scan(&exists)
	return exists, err
}

// ActivateCycle активирует один цикл показа тендера в одной транзакции:
// тендер блокируется и перепроверяется на пригодность, публикуется анонимный заказ,
// создаётся запись цикла и обновляются счётчики тендера. Тендер, исчерпавший лимит
// показов этой активацией, выводится из ротации той же транзакцией под той же
// блокировкой строки.
func (r *PostgresRotationRepository) ActivateCycle(ctx context.Context, tenderId, publicId string, now time.Time, window, cooldown time.Duration) (*models.Cycle, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin activation: %w", err)
	}
	defer tx.Rollback(ctx)

	tender, err := lockTender(ctx, tx, tenderId)
	if err != nil {
		return nil, err
	}
	if !tender.IsEligible(now, cooldown) {
		return nil, models.ErrEligibilityMismatch
	}

	orderId, err := r.Orders.CreateAnonymousOrder(ctx, tx, publicId, tender)
	if err != nil {
		return nil, err
	}

	cycle := &models.Cycle{
		ID:               uuid.New().String(),
		TenderID:         tender.ID,
		CycleNumber:      tender.UsageCount + 1,
		PublicID:         publicId,
		Status:           models.ActiveCycle,
		DisplayStartTime: now,
		DisplayEndTime:   now.Add(window),
		OrderID:          orderId,
		CreatedAt:        now,
	}
	_, err = tx.Exec(ctx, `
       INSERT INTO rotation_cycle (id, tender_id, cycle_number, public_id, status, display_start_time, display_end_time, order_id, created_at)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
   `,
		cycle.ID,
		cycle.TenderID,
		cycle.CycleNumber,
		cycle.PublicID,
		cycle.Status,
		cycle.DisplayStartTime,
		cycle.DisplayEndTime,
		cycle.OrderID,
		cycle.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == "rotation_cycle_public_id_key" {
			return nil, models.ErrIDCollision
		}
		return nil, fmt.Errorf("failed to insert cycle: %w", err)
	}

	_, err = tx.Exec(ctx, `
       UPDATE tender
       SET status = $1, usage_count = usage_count + 1, last_displayed_at = $2,
           display_start_time = $2, display_end_time = $3
       WHERE id = $4
   `, tender.StatusAfterActivation(), now, cycle.DisplayEndTime, tender.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update tender on activation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit activation: %w", err)
	}
	return cycle, nil
}

// GetActiveCycle возвращает активный цикл показа для тендера.
func (r *PostgresRotationRepository) GetActiveCycle(ctx context.Context, tenderId string) (*models.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM rotation_cycle WHERE tender_id = $1 AND status = $2`
	return scanCycle(r.DB.QueryRow(ctx, query, tenderId, models.ActiveCycle))
}

// ListExpiredCycles возвращает активные циклы, у которых окно показа уже закончилось.
func (r *PostgresRotationRepository) ListExpiredCycles(ctx context.Context, now time.Time) ([]models.Cycle, error) {
	query := `SELECT c.id, c.tender_id, c.cycle_number, c.public_id, c.status, c.display_start_time, c.display_end_time, c.order_id, c.created_at
              FROM rotation_cycle c
              JOIN tender t ON t.id = c.tender_id
              WHERE c.status = $1 AND t.display_end_time < $2`

	rows, err := r.DB.Query(ctx, query, models.ActiveCycle, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cycles []models.Cycle
	for rows.Next() {
		cycle, err := scanCycle(rows)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, *cycle)
	}
	return cycles, rows.Err()
}

// ReclaimCycle завершает просроченный цикл в одной транзакции: цикл помечается
// истёкшим, заказ снимается с площадки, тендер возвращается в хранилище с периодом
// временной архивации. Тендер, уже выведенный из ротации, в хранилище не возвращается.
// Если цикл успели заключить, возвращается models.ErrConversionConflict.
func (r *PostgresRotationRepository) ReclaimCycle(ctx context.Context, cycleId, tenderId string, now time.Time, cooldown time.Duration) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reclaim: %w", err)
	}
	defer tx.Rollback(ctx)

	tender, err := lockTender(ctx, tx, tenderId)
	if err != nil {
		return err
	}

	query := `SELECT ` + cycleColumns + ` FROM rotation_cycle WHERE id = $1 FOR UPDATE`
	cycle, err := scanCycle(tx.QueryRow(ctx, query, cycleId))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrConversionConflict
	}
	if err != nil {
		return fmt.Errorf("failed to lock cycle: %w", err)
	}
	if cycle.Status != models.ActiveCycle {
		return models.ErrConversionConflict
	}

	_, err = tx.Exec(ctx, `UPDATE rotation_cycle SET status = $1 WHERE id = $2`, models.ExpiredCycle, cycle.ID)
	if err != nil {
		return fmt.Errorf("failed to expire cycle: %w", err)
	}

	if err := r.Orders.CancelOrder(ctx, tx, cycle.OrderID); err != nil {
		return err
	}

	if tender.ReturnsToStorage() {
		_, err = tx.Exec(ctx, `
           UPDATE tender
           SET status = $1, display_start_time = NULL, display_end_time = NULL, temporary_archived_until = $2
           WHERE id = $3
       `, models.StoredTender, now.Add(cooldown), tender.ID)
	} else {
		_, err = tx.Exec(ctx, `
           UPDATE tender SET display_start_time = NULL, display_end_time = NULL WHERE id = $1
       `, tender.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update tender on reclaim: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reclaim: %w", err)
	}
	return nil
}

// AwardCycle превращает активный цикл тендера в настоящий заказ: цикл помечается
// заключённым, на заказ назначается исполнитель, заказ закрывается для откликов и
// уходит с витрины, тендер навсегда архивируется.
// Если цикл или тендер уже завершены, возвращается models.ErrConversionConflict.
func (r *PostgresRotationRepository) AwardCycle(ctx context.Context, tenderId, performerId string, now time.Time) (*models.AwardResult, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin award: %w", err)
	}
	defer tx.Rollback(ctx)

	tender, err := lockTender(ctx, tx, tenderId)
	if err != nil {
		return nil, err
	}
	if tender.Status != models.ActiveTender {
		return nil, models.ErrConversionConflict
	}

	query := `SELECT ` + cycleColumns + ` FROM rotation_cycle WHERE tender_id = $1 ORDER BY cycle_number DESC LIMIT 1 FOR UPDATE`
	cycle, err := scanCycle(tx.QueryRow(ctx, query, tender.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrConversionConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock cycle: %w", err)
	}
	if cycle.Status != models.ActiveCycle {
		return nil, models.ErrConversionConflict
	}

	_, err = tx.Exec(ctx, `UPDATE rotation_cycle SET status = $1 WHERE id = $2`, models.AwardedCycle, cycle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to award cycle: %w", err)
	}

	assignmentId, err := r.Orders.EnsureAssignment(ctx, tx, cycle.OrderID, performerId)
	if err != nil {
		return nil, err
	}

	if err := r.Orders.CompleteOrder(ctx, tx, cycle.OrderID); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
       UPDATE tender SET status = $1, display_start_time = NULL, display_end_time = NULL WHERE id = $2
   `, models.ArchivedTender, tender.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to archive tender: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit award: %w", err)
	}

	cycle.Status = models.AwardedCycle
	return &models.AwardResult{
		Cycle:        cycle,
		OrderID:      cycle.OrderID,
		AssignmentID: assignmentId,
		PerformerID:  performerId,
	}, nil
}
