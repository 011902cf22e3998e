package services

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/senyabanana/tender-vault/internal/models"
	"github.com/senyabanana/tender-vault/internal/repository"
	"github.com/senyabanana/tender-vault/internal/utils"

	"github.com/jackc/pgx/v5"
)

// RotationPolicy - параметры политики ротации хранилища.
type RotationPolicy struct {
	BatchMin        int
	BatchMax        int
	DisplayDuration time.Duration
	Cooldown        time.Duration
	MaxIdAttempts   int
	DefaultMaxUsage int
}

// RotationService запускает ежедневную ротацию: выбирает кандидатов из хранилища
// и активирует для каждого новый цикл показа.
type RotationService struct {
	Vault    repository.VaultRepository
	Rotation repository.RotationRepository
	Policy   RotationPolicy
	Logger   *log.Logger
	rnd      *rand.Rand
}

// NewRotationService создаёт новый экземпляр RotationService.
func NewRotationService(vault repository.VaultRepository, rotation repository.RotationRepository, policy RotationPolicy, logger *log.Logger) *RotationService {
	return &RotationService{
		Vault:    vault,
		Rotation: rotation,
		Policy:   policy,
		Logger:   logger,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// RunDailyRotation выполняет один запуск ежедневной ротации. Размер пачки выбирается
// случайно в пределах политики, ошибки отдельных тендеров не прерывают остальных.
// Тендеры, исчерпавшие лимит показов на этой активации, сразу выводятся из ротации.
func (s *RotationService) RunDailyRotation(ctx context.Context) (models.RotationSummary, error) {
	var summary models.RotationSummary
	now := time.Now().UTC()

	batchSize := s.Policy.BatchMin
	if s.Policy.BatchMax > s.Policy.BatchMin {
		batchSize += s.rnd.Intn(s.Policy.BatchMax - s.Policy.BatchMin + 1)
	}

	candidates, err := s.Vault.SelectEligibleCandidates(ctx, now, s.Policy.Cooldown, batchSize)
	if err != nil {
		return summary, err
	}

	for i := range candidates {
		tender := &candidates[i]

		cycle, err := s.activateTender(ctx, tender, now)
		if err != nil {
			summary.Failed++
			s.Logger.Printf("rotation: activation of tender %s failed: %v", tender.ID, err)
			continue
		}
		summary.Activated++

		// Вывод из ротации происходит в той же транзакции, что и активация,
		// здесь он только учитывается по зафиксированному номеру цикла.
		if cycle.CycleNumber >= tender.MaxUsage {
			summary.Retired++
		}
	}

	s.Logger.Printf("rotation: activated=%d retired=%d failed=%d", summary.Activated, summary.Retired, summary.Failed)
	return summary, nil
}

// activateTender подбирает свободный публичный идентификатор и активирует цикл.
// Столкновение идентификаторов (в том числе отловленное уникальным ограничением
// при вставке) приводит к повторной попытке с новым идентификатором.
func (s *RotationService) activateTender(ctx context.Context, tender *models.Tender, now time.Time) (*models.Cycle, error) {
	for attempt := 0; attempt < s.Policy.MaxIdAttempts; attempt++ {
		publicId, err := utils.GeneratePublicID()
		if err != nil {
			return nil, err
		}

		exists, err := s.Rotation.PublicIDExists(ctx, publicId)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		cycle, err := s.Rotation.ActivateCycle(ctx, tender.ID, publicId, now, s.Policy.DisplayDuration, s.Policy.Cooldown)
		if errors.Is(err, models.ErrIDCollision) {
			continue
		}
		return cycle, err
	}
	return nil, models.ErrIDCollision
}

// ActiveCycle возвращает активный цикл показа для тендера.
func (s *RotationService) ActiveCycle(ctx context.Context, tenderId string) (*models.Cycle, error) {
	if tenderId == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "missing required path parameter: tenderId")
	}
	cycle, err := s.Rotation.GetActiveCycle(ctx, tenderId)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.NewErrorResponse(http.StatusNotFound, "no active cycle for this tender")
	}
	if err != nil {
		return nil, err
	}
	return cycle, nil
}
