package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/senyabanana/tender-vault/internal/models"
	"github.com/senyabanana/tender-vault/internal/repository"
)

// SweeperService забирает с площадки циклы, у которых окно показа закончилось
// без выбора исполнителя.
type SweeperService struct {
	Rotation repository.RotationRepository
	Cooldown time.Duration
	Logger   *log.Logger
}

// NewSweeperService создаёт новый экземпляр SweeperService.
func NewSweeperService(rotation repository.RotationRepository, cooldown time.Duration, logger *log.Logger) *SweeperService {
	return &SweeperService{Rotation: rotation, Cooldown: cooldown, Logger: logger}
}

// SweepExpired выполняет один проход уборки. Каждый цикл завершается в своей
// транзакции, ошибки отдельных циклов не прерывают остальных. Цикл, который успели
// заключить, пропускается - заключение имеет приоритет. Повторный запуск на том же
// состоянии ничего не меняет: фильтр выбирает только активные циклы.
func (s *SweeperService) SweepExpired(ctx context.Context) (models.SweepSummary, error) {
	var summary models.SweepSummary
	now := time.Now().UTC()

	cycles, err := s.Rotation.ListExpiredCycles(ctx, now)
	if err != nil {
		return summary, err
	}

	for _, cycle := range cycles {
		err := s.Rotation.ReclaimCycle(ctx, cycle.ID, cycle.TenderID, now, s.Cooldown)
		if errors.Is(err, models.ErrConversionConflict) {
			summary.Skipped++
			continue
		}
		if err != nil {
			summary.Failed++
			s.Logger.Printf("sweeper: reclaim of cycle %s failed: %v", cycle.ID, err)
			continue
		}
		summary.Reclaimed++
	}

	s.Logger.Printf("sweeper: reclaimed=%d skipped=%d failed=%d", summary.Reclaimed, summary.Skipped, summary.Failed)
	return summary, nil
}
