package models

import "time"

type (
	TenderServiceType string // Тип услуги для тендера
	TenderStatus      string // Статус тендера в хранилище
)

const (
	Construction TenderServiceType = "Construction"
	Delivery     TenderServiceType = "Delivery"
	Manufacture  TenderServiceType = "Manufacture"

	StoredTender   TenderStatus = "Stored"   // Тендер лежит в хранилище и ждёт ротации
	ActiveTender   TenderStatus = "Active"   // Тендер временно показывается на площадке
	ArchivedTender TenderStatus = "Archived" // Тендер навсегда закрыт после заключения заказа
	ExpiredTender  TenderStatus = "Expired"  // Тендер исчерпал лимит показов и выведен из ротации
)

// Tender представляет модель тендера в хранилище.
type Tender struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	Description            string            `json:"description"`
	ServiceType            TenderServiceType `json:"serviceType"`
	Subcategory            string            `json:"subcategory,omitempty"`
	BudgetFrom             int64             `json:"budgetFrom"`
	BudgetTo               int64             `json:"budgetTo"`
	Status                 TenderStatus      `json:"status"`
	UsageCount             int               `json:"usageCount"`
	MaxUsage               int               `json:"maxUsage"`
	LastDisplayedAt        *time.Time        `json:"lastDisplayedAt,omitempty"`
	TemporaryArchivedUntil *time.Time        `json:"temporaryArchivedUntil,omitempty"`
	DisplayStartTime       *time.Time        `json:"displayStartTime,omitempty"`
	DisplayEndTime         *time.Time        `json:"displayEndTime,omitempty"`
	Attachments            []string          `json:"attachments,omitempty"`
	OrganizationID         string            `json:"organizationId"`
	CreatorUsername        string            `json:"-"`
	CreatedAt              time.Time         `json:"createdAt"`
}

// TenderRequest представляет структуру запроса для помещения тендера в хранилище.
type TenderRequest struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	ServiceType     TenderServiceType `json:"serviceType"`
	Subcategory     string            `json:"subcategory"`
	BudgetFrom      int64             `json:"budgetFrom"`
	BudgetTo        int64             `json:"budgetTo"`
	Attachments     []string          `json:"attachments"`
	OrganizationID  string            `json:"organizationId"`
	CreatorUsername string            `json:"creatorUsername"`
}

// IsEligible проверяет, может ли тендер попасть в очередной цикл ротации.
// Тендер подходит, если он лежит в хранилище, лимит показов не исчерпан,
// с последнего показа прошёл период охлаждения и временная архивация закончилась.
func (t *Tender) IsEligible(now time.Time, cooldown time.Duration) bool {
	if t.Status != StoredTender {
		return false
	}
	if t.UsageCount >= t.MaxUsage {
		return false
	}
	if t.LastDisplayedAt != nil && now.Sub(*t.LastDisplayedAt) < cooldown {
		return false
	}
	if t.TemporaryArchivedUntil != nil && t.TemporaryArchivedUntil.After(now) {
		return false
	}
	return true
}

// StatusAfterActivation возвращает статус тендера после очередной активации.
// Тендер, исчерпавший лимит показов этой активацией, сразу выводится из ротации;
// его последний цикл ещё показывается, но в хранилище тендер уже не вернётся.
func (t *Tender) StatusAfterActivation() TenderStatus {
	if t.UsageCount+1 >= t.MaxUsage {
		return ExpiredTender
	}
	return ActiveTender
}

// ReturnsToStorage сообщает, возвращается ли тендер в хранилище после истечения
// окна показа. Тендер, выведенный из ротации или архивированный, не возвращается.
func (t *Tender) ReturnsToStorage() bool {
	return t.Status == ActiveTender
}
