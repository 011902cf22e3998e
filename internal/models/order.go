package models

import "time"

type OrderStatus string // Статус анонимного заказа

const (
	OpenOrder      OrderStatus = "Open"      // Заказ открыт для откликов
	CompletedOrder OrderStatus = "Completed" // По заказу выбран исполнитель, с витрины заказ уходит
	CanceledOrder  OrderStatus = "Canceled"  // Окно показа истекло, заказ снят с площадки
)

// VaultOrder представляет анонимный заказ, который публикуется на время цикла показа.
// Заказ не содержит данных о владельце тендера, связь с тендером хранится только в цикле.
type VaultOrder struct {
	ID          string            `json:"id"`
	PublicID    string            `json:"publicId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ServiceType TenderServiceType `json:"serviceType"`
	Subcategory string            `json:"subcategory,omitempty"`
	BudgetFrom  int64             `json:"budgetFrom"`
	BudgetTo    int64             `json:"budgetTo"`
	Attachments []string          `json:"attachments,omitempty"`
	Status      OrderStatus       `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// AwardResult представляет результат превращения цикла в настоящий заказ.
type AwardResult struct {
	Cycle        *Cycle `json:"cycle"`
	OrderID      string `json:"orderId"`
	AssignmentID string `json:"assignmentId"`
	PerformerID  string `json:"performerId"`
}
