package models

// RotationSummary представляет итог ежедневного запуска ротации.
type RotationSummary struct {
	Activated int `json:"activated"`
	Retired   int `json:"retired"`
	Failed    int `json:"failed"`
}

// SweepSummary представляет итог часовой уборки просроченных циклов.
type SweepSummary struct {
	Reclaimed int `json:"reclaimed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}
