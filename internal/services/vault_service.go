package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/senyabanana/tender-vault/internal/models"
	"github.com/senyabanana/tender-vault/internal/repository"
)

// VaultService отвечает за приём тендеров в хранилище и чтение публичной витрины.
type VaultService struct {
	Vault           repository.VaultRepository
	Orders          repository.OrderRepository
	DefaultMaxUsage int
}

// NewVaultService создаёт новый экземпляр VaultService.
func NewVaultService(vault repository.VaultRepository, orders repository.OrderRepository, defaultMaxUsage int) *VaultService {
	return &VaultService{Vault: vault, Orders: orders, DefaultMaxUsage: defaultMaxUsage}
}

// StoreTender помещает новый тендер в хранилище.
func (s *VaultService) StoreTender(ctx context.Context, tenderReq models.TenderRequest) (*models.Tender, error) {
	if tenderReq.Name == "" || tenderReq.Description == "" || tenderReq.OrganizationID == "" || tenderReq.CreatorUsername == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "missing required fields")
	}
	if tenderReq.BudgetFrom < 0 || tenderReq.BudgetTo < tenderReq.BudgetFrom {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "invalid budget range")
	}

	allowedServiceTypes := map[models.TenderServiceType]bool{
		models.Construction: true,
		models.Delivery:     true,
		models.Manufacture:  true,
	}
	if !allowedServiceTypes[tenderReq.ServiceType] {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "invalid service type")
	}

	return s.Vault.CreateTender(ctx, tenderReq, s.DefaultMaxUsage)
}

// FetchOpenOrders возвращает список открытых анонимных заказов на витрине.
func (s *VaultService) FetchOpenOrders(ctx context.Context, limit, offset int, serviceTypes []string) ([]models.VaultOrder, error) {
	allowedServiceTypes := map[models.TenderServiceType]bool{
		models.Construction: true,
		models.Delivery:     true,
		models.Manufacture:  true,
	}
	for _, serviceType := range serviceTypes {
		if !allowedServiceTypes[models.TenderServiceType(serviceType)] {
			return nil, models.NewErrorResponse(http.StatusBadRequest, fmt.Sprintf("unsupported service type: %s", serviceType))
		}
	}
	return s.Orders.ListOpenOrders(ctx, limit, offset, serviceTypes)
}
