package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/senyabanana/tender-vault/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// VaultRepository - интерфейс для работы с хранилищем тендеров.
type VaultRepository interface {
	CreateTender(ctx context.Context, tenderReq models.TenderRequest, maxUsage int) (*models.Tender, error)
	SelectEligibleCandidates(ctx context.Context, now time.Time, cooldown time.Duration, limit int) ([]models.Tender, error)
}

// PostgresVaultRepository - реализация VaultRepository для базы данных.
type PostgresVaultRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresVaultRepository создаёт новый экземпляр PostgresVaultRepository.
func NewPostgresVaultRepository(db *pgxpool.Pool) *PostgresVaultRepository {
	return &PostgresVaultRepository{DB: db}
}

const tenderColumns = `id, name, description, service_type, subcategory, budget_from, budget_to,
       status, usage_count, max_usage, last_displayed_at, temporary_archived_until,
       display_start_time, display_end_time, attachments, organization_id, creator_username, created_at`

func scanTender(row pgx.Row) (*models.Tender, error) {
	var t models.Tender
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.ServiceType,
		&t.Subcategory,
		&t.BudgetFrom,
		&t.BudgetTo,
		&t.Status,
		&t.UsageCount,
		&t.MaxUsage,
		&t.LastDisplayedAt,
		&t.TemporaryArchivedUntil,
		&t.DisplayStartTime,
		&t.DisplayEndTime,
		&t.Attachments,
		&t.OrganizationID,
		&t.CreatorUsername,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTender помещает новый тендер в хранилище со статусом Stored.
func (r *PostgresVaultRepository) CreateTender(ctx context.Context, tenderReq models.TenderRequest, maxUsage int) (*models.Tender, error) {
	newTender := models.Tender{
		ID:              uuid.New().String(),
		Name:            tenderReq.Name,
		Description:     tenderReq.Description,
		ServiceType:     tenderReq.ServiceType,
		Subcategory:     tenderReq.Subcategory,
		BudgetFrom:      tenderReq.BudgetFrom,
		BudgetTo:        tenderReq.BudgetTo,
		Status:          models.StoredTender,
		UsageCount:      0,
		MaxUsage:        maxUsage,
		Attachments:     tenderReq.Attachments,
		OrganizationID:  tenderReq.OrganizationID,
		CreatorUsername: tenderReq.CreatorUsername,
		CreatedAt:       time.Now().UTC(),
	}
	_, err := r.DB.Exec(ctx, `
       INSERT INTO tender (id, name, description, service_type, subcategory, budget_from, budget_to,
                           status, usage_count, max_usage, attachments, organization_id, creator_username, created_at)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
   `,
		newTender.ID,
		newTender.Name,
		newTender.Description,
		newTender.ServiceType,
		newTender.Subcategory,
		newTender.BudgetFrom,
		newTender.BudgetTo,
		newTender.Status,
		newTender.UsageCount,
		newTender.MaxUsage,
		newTender.Attachments,
		newTender.OrganizationID,
		newTender.CreatorUsername,
		newTender.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert tender: %w", err)
	}
	return &newTender, nil
}

// SelectEligibleCandidates выбирает случайный набор тендеров, подходящих для ротации.
// Выборка равномерно случайная, условия повторяют Tender.IsEligible.
func (r *PostgresVaultRepository) SelectEligibleCandidates(ctx context.Context, now time.Time, cooldown time.Duration, limit int) ([]models.Tender, error) {
	query := `SELECT ` + tenderColumns + `
              FROM tender
              WHERE status = $1
                AND usage_count < max_usage
                AND (last_displayed_at IS NULL OR last_displayed_at <= $2)
                AND (temporary_archived_until IS NULL OR temporary_archived_until <= $3)
              ORDER BY RANDOM() LIMIT $4`

	rows, err := r.DB.Query(ctx, query, models.StoredTender, now.Add(-cooldown), now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenders []models.Tender
	for rows.Next() {
		tender, err := scanTender(rows)
		if err != nil {
			return nil, err
		}
		tenders = append(tenders, *tender)
	}
	return tenders, rows.Err()
}
