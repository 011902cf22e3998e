package models

import "time"

type CycleStatus string // Статус цикла показа

const (
	ActiveCycle  CycleStatus = "Active"  // Цикл идёт, тендер виден на площадке
	ExpiredCycle CycleStatus = "Expired" // Окно показа закончилось без исполнителя
	AwardedCycle CycleStatus = "Awarded" // Во время показа выбран исполнитель
)

// Cycle представляет один цикл показа тендера.
type Cycle struct {
	ID               string      `json:"id"`
	TenderID         string      `json:"tenderId"`
	CycleNumber      int         `json:"cycleNumber"`
	PublicID         string      `json:"publicId"`
	Status           CycleStatus `json:"status"`
	DisplayStartTime time.Time   `json:"displayStartTime"`
	DisplayEndTime   time.Time   `json:"displayEndTime"`
	OrderID          string      `json:"orderId"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// IsTerminal сообщает, завершён ли цикл окончательно.
func (c *Cycle) IsTerminal() bool {
	return c.Status == ExpiredCycle || c.Status == AwardedCycle
}
