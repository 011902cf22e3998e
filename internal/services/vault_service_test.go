package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/senyabanana/tender-vault/internal/models"
	"github.com/senyabanana/tender-vault/internal/repository/mocks"

	"go.uber.org/mock/gomock"
)

func validTenderRequest() models.TenderRequest {
	return models.TenderRequest{
		Name:            "Renovate office",
		Description:     "Full renovation of the second floor",
		ServiceType:     models.Construction,
		BudgetFrom:      100000,
		BudgetTo:        250000,
		OrganizationID:  "org-1",
		CreatorUsername: "ivanov",
	}
}

func TestVaultService_StoreTender(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		s := NewVaultService(nil, nil, 4)
		req := validTenderRequest()
		req.Name = ""
		_, err := s.StoreTender(context.Background(), req)
		errorResponse, ok := err.(*models.ErrorResponse)
		if !ok || errorResponse.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("invalid budget range", func(t *testing.T) {
		s := NewVaultService(nil, nil, 4)
		req := validTenderRequest()
		req.BudgetTo = req.BudgetFrom - 1
		_, err := s.StoreTender(context.Background(), req)
		errorResponse, ok := err.(*models.ErrorResponse)
		if !ok || errorResponse.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("invalid service type", func(t *testing.T) {
		s := NewVaultService(nil, nil, 4)
		req := validTenderRequest()
		req.ServiceType = "Consulting"
		_, err := s.StoreTender(context.Background(), req)
		errorResponse, ok := err.(*models.ErrorResponse)
		if !ok || errorResponse.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("stores tender with default usage limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vault := mocks.NewMockVaultRepository(ctrl)
		s := NewVaultService(vault, nil, 4)

		req := validTenderRequest()
		stored := &models.Tender{ID: "t-1", Status: models.StoredTender, MaxUsage: 4}
		vault.EXPECT().CreateTender(gomock.Any(), req, 4).Return(stored, nil)

		tender, err := s.StoreTender(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tender.Status != models.StoredTender || tender.MaxUsage != 4 {
			t.Fatalf("unexpected tender: %+v", tender)
		}
	})
}

func TestVaultService_FetchOpenOrders(t *testing.T) {
	t.Run("unsupported service type", func(t *testing.T) {
		s := NewVaultService(nil, nil, 4)
		_, err := s.FetchOpenOrders(context.Background(), 5, 0, []string{"Consulting"})
		errorResponse, ok := err.(*models.ErrorResponse)
		if !ok || errorResponse.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("returns open orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockOrderRepository(ctrl)
		s := NewVaultService(nil, orders, 4)

		open := []models.VaultOrder{{ID: "o-1", Status: models.OpenOrder}}
		orders.EXPECT().ListOpenOrders(gomock.Any(), 5, 0, []string{"Construction"}).Return(open, nil)

		got, err := s.FetchOpenOrders(context.Background(), 5, 0, []string{"Construction"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "o-1" {
			t.Fatalf("unexpected orders: %+v", got)
		}
	})
}
