package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/senyabanana/tender-vault/internal/models"
	"github.com/senyabanana/tender-vault/internal/repository/mocks"

	"go.uber.org/mock/gomock"
)

func TestAwardService_ConvertToOrder(t *testing.T) {
	t.Run("missing parameters", func(t *testing.T) {
		s := NewAwardService(nil, testLogger())

		_, err := s.ConvertToOrder(context.Background(), "", "p-1")
		errorResponse, ok := err.(*models.ErrorResponse)
		if !ok || errorResponse.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected bad request, got %v", err)
		}

		_, err = s.ConvertToOrder(context.Background(), "t-1", "")
		errorResponse, ok = err.(*models.ErrorResponse)
		if !ok || errorResponse.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("converts active cycle to order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rotation := mocks.NewMockRotationRepository(ctrl)
		s := NewAwardService(rotation, testLogger())

		result := &models.AwardResult{
			Cycle:        &models.Cycle{ID: "c-1", Status: models.AwardedCycle},
			OrderID:      "o-1",
			AssignmentID: "a-1",
			PerformerID:  "p-1",
		}
		rotation.EXPECT().AwardCycle(gomock.Any(), "t-1", "p-1", gomock.Any()).Return(result, nil)

		got, err := s.ConvertToOrder(context.Background(), "t-1", "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.OrderID != "o-1" || got.Cycle.Status != models.AwardedCycle {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("terminal cycle surfaces as conversion conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rotation := mocks.NewMockRotationRepository(ctrl)
		s := NewAwardService(rotation, testLogger())

		rotation.EXPECT().AwardCycle(gomock.Any(), "t-1", "p-1", gomock.Any()).Return(nil, models.ErrConversionConflict)

		_, err := s.ConvertToOrder(context.Background(), "t-1", "p-1")
		if !errors.Is(err, models.ErrConversionConflict) {
			t.Fatalf("expected ErrConversionConflict, got %v", err)
		}
	})

	t.Run("unknown tender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rotation := mocks.NewMockRotationRepository(ctrl)
		s := NewAwardService(rotation, testLogger())

		rotation.EXPECT().AwardCycle(gomock.Any(), "t-404", "p-1", gomock.Any()).Return(nil, models.ErrTenderNotFound)

		_, err := s.ConvertToOrder(context.Background(), "t-404", "p-1")
		if !errors.Is(err, models.ErrTenderNotFound) {
			t.Fatalf("expected ErrTenderNotFound, got %v", err)
		}
	})
}
