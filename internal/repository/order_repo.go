package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/senyabanana/tender-vault/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// OrderRepository - интерфейс для работы с анонимными заказами и назначениями исполнителей.
// Методы с pgx.Tx выполняются внутри транзакции вызывающей стороны.
type OrderRepository interface {
	CreateAnonymousOrder(ctx context.Context, tx pgx.Tx, publicId string, tender *models.Tender) (string, error)
	CancelOrder(ctx context.Context, tx pgx.Tx, orderId string) error
	CompleteOrder(ctx context.Context, tx pgx.Tx, orderId string) error
	EnsureAssignment(ctx context.Context, tx pgx.Tx, orderId, performerId string) (string, error)
	ListOpenOrders(ctx context.Context, limit, offset int, serviceTypes []string) ([]models.VaultOrder, error)
}

// PostgresOrderRepository - реализация OrderRepository для базы данных.
type PostgresOrderRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresOrderRepository создаёт новый экземпляр PostgresOrderRepository.
func NewPostgresOrderRepository(db *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

// CreateAnonymousOrder публикует анонимный заказ по полям тендера и возвращает его идентификатор.
// Заказ не содержит организации и автора, наружу смотрит только публичный идентификатор.
func (r *PostgresOrderRepository) CreateAnonymousOrder(ctx context.Context, tx pgx.Tx, publicId string, tender *models.Tender) (string, error) {
	orderId := uuid.New().String()
	_, err := tx.Exec(ctx, `
       INSERT INTO vault_order (id, public_id, name, description, service_type, subcategory,
                                budget_from, budget_to, attachments, status, created_at)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
   `,
		orderId,
		publicId,
		tender.Name,
		tender.Description,
		tender.ServiceType,
		tender.Subcategory,
		tender.BudgetFrom,
		tender.BudgetTo,
		tender.Attachments,
		models.OpenOrder,
		time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert anonymous order: %w", err)
	}
	return orderId, nil
}

// CancelOrder снимает заказ с площадки после истечения окна показа.
func (r *PostgresOrderRepository) CancelOrder(ctx context.Context, tx pgx.Tx, orderId string) error {
	_, err := tx.Exec(ctx, `UPDATE vault_order SET status = $1 WHERE id = $2`, models.CanceledOrder, orderId)
	if err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}
	return nil
}

// CompleteOrder закрывает заказ после выбора исполнителя, с витрины заказ уходит.
func (r *PostgresOrderRepository) CompleteOrder(ctx context.Context, tx pgx.Tx, orderId string) error {
	_, err := tx.Exec(ctx, `UPDATE vault_order SET status = $1 WHERE id = $2`, models.CompletedOrder, orderId)
	if err != nil {
		return fmt.Errorf("failed to complete order: %w", err)
	}
	return nil
}

// EnsureAssignment создаёт назначение исполнителя на заказ, если его ещё нет.
func (r *PostgresOrderRepository) EnsureAssignment(ctx context.Context, tx pgx.Tx, orderId, performerId string) (string, error) {
	var assignmentId string
	err := tx.QueryRow(ctx, `SELECT id FROM order_assignment WHERE order_id = $1`, orderId).Scan(&assignmentId)
	if err == nil {
		return assignmentId, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("failed to check assignment: %w", err)
	}

	assignmentId = uuid.New().String()
	_, err = tx.Exec(ctx, `
       INSERT INTO order_assignment (id, order_id, performer_id, created_at)
       VALUES ($1, $2, $3, $4)
   `, assignmentId, orderId, performerId, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert assignment: %w", err)
	}
	return assignmentId, nil
}

// ListOpenOrders возвращает список открытых анонимных заказов.
func (r *PostgresOrderRepository) ListOpenOrders(ctx context.Context, limit, offset int, serviceTypes []string) ([]models.VaultOrder, error) {
	query := `SELECT id, public_id, name, description, service_type, subcategory, budget_from, budget_to, attachments, status, created_at
              FROM vault_order WHERE status = $1`
	args := []interface{}{models.OpenOrder}
	argIndex := 2

	var filters []string
	if len(serviceTypes) > 0 {
		filters = append(filters, fmt.Sprintf("service_type = ANY($%d)", argIndex))
		args = append(args, pq.Array(serviceTypes))
		argIndex++
	}
	if len(filters) > 0 {
		query += " AND " + strings.Join(filters, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.VaultOrder
	for rows.Next() {
		var o models.VaultOrder
		if err := rows.Scan(
			&o.ID,
			&o.PublicID,
			&o.Name,
			&o.Description,
			&o.ServiceType,
			&o.Subcategory,
			&o.BudgetFrom,
			&o.BudgetTo,
			&o.Attachments,
			&o.Status,
			&o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
