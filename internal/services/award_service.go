package services

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/senyabanana/tender-vault/internal/models"
	"github.com/senyabanana/tender-vault/internal/repository"
)

// AwardService превращает активный цикл показа в настоящий заказ, когда по тендеру
// выбран исполнитель. Вызывается из обработчика события принятия отклика.
type AwardService struct {
	Rotation repository.RotationRepository
	Logger   *log.Logger
}

// NewAwardService создаёт новый экземпляр AwardService.
func NewAwardService(rotation repository.RotationRepository, logger *log.Logger) *AwardService {
	return &AwardService{Rotation: rotation, Logger: logger}
}

// ConvertToOrder заключает активный цикл тендера с выбранным исполнителем.
// Конфликт (цикл уже истёк или заключён) возвращается вызывающей стороне как
// models.ErrConversionConflict и не является фатальной ошибкой.
func (s *AwardService) ConvertToOrder(ctx context.Context, tenderId, performerId string) (*models.AwardResult, error) {
	if tenderId == "" || performerId == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "missing required parameters: tenderId or performerId")
	}

	result, err := s.Rotation.AwardCycle(ctx, tenderId, performerId, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.Logger.Printf("award: tender %s converted to order %s (performer %s)", tenderId, result.OrderID, performerId)
	return result, nil
}
