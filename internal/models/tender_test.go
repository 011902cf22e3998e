package models

import (
	"testing"
	"time"
)

func TestTenderIsEligible(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	cooldown := 60 * 24 * time.Hour

	longAgo := now.Add(-90 * 24 * time.Hour)
	recently := now.Add(-10 * 24 * time.Hour)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name   string
		tender Tender
		want   bool
	}{
		{
			name:   "fresh stored tender",
			tender: Tender{Status: StoredTender, UsageCount: 0, MaxUsage: 4},
			want:   true,
		},
		{
			name:   "active tender is excluded",
			tender: Tender{Status: ActiveTender, UsageCount: 1, MaxUsage: 4},
			want:   false,
		},
		{
			name:   "archived tender is excluded",
			tender: Tender{Status: ArchivedTender, UsageCount: 1, MaxUsage: 4},
			want:   false,
		},
		{
			name:   "expired tender is excluded",
			tender: Tender{Status: ExpiredTender, UsageCount: 4, MaxUsage: 4},
			want:   false,
		},
		{
			name:   "usage limit reached",
			tender: Tender{Status: StoredTender, UsageCount: 4, MaxUsage: 4},
			want:   false,
		},
		{
			name:   "displayed recently",
			tender: Tender{Status: StoredTender, UsageCount: 1, MaxUsage: 4, LastDisplayedAt: &recently},
			want:   false,
		},
		{
			name:   "displayed long ago",
			tender: Tender{Status: StoredTender, UsageCount: 1, MaxUsage: 4, LastDisplayedAt: &longAgo},
			want:   true,
		},
		{
			name:   "temporary archive still in effect",
			tender: Tender{Status: StoredTender, UsageCount: 1, MaxUsage: 4, LastDisplayedAt: &longAgo, TemporaryArchivedUntil: &future},
			want:   false,
		},
		{
			name:   "temporary archive elapsed",
			tender: Tender{Status: StoredTender, UsageCount: 1, MaxUsage: 4, LastDisplayedAt: &longAgo, TemporaryArchivedUntil: &past},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tender.IsEligible(now, cooldown); got != tt.want {
				t.Fatalf("IsEligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTenderStatusAfterActivation(t *testing.T) {
	tests := []struct {
		name   string
		tender Tender
		want   TenderStatus
	}{
		{
			name:   "first of four activations",
			tender: Tender{Status: StoredTender, UsageCount: 0, MaxUsage: 4},
			want:   ActiveTender,
		},
		{
			name:   "one activation left after this one",
			tender: Tender{Status: StoredTender, UsageCount: 2, MaxUsage: 4},
			want:   ActiveTender,
		},
		{
			name:   "final activation retires the tender",
			tender: Tender{Status: StoredTender, UsageCount: 3, MaxUsage: 4},
			want:   ExpiredTender,
		},
		{
			name:   "single-use tender retires immediately",
			tender: Tender{Status: StoredTender, UsageCount: 0, MaxUsage: 1},
			want:   ExpiredTender,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tender.StatusAfterActivation(); got != tt.want {
				t.Fatalf("StatusAfterActivation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTenderReturnsToStorage(t *testing.T) {
	tests := []struct {
		status TenderStatus
		want   bool
	}{
		{ActiveTender, true},
		{StoredTender, false},
		{ArchivedTender, false},
		{ExpiredTender, false},
	}

	for _, tt := range tests {
		tender := Tender{Status: tt.status}
		if got := tender.ReturnsToStorage(); got != tt.want {
			t.Fatalf("ReturnsToStorage() for %s = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCycleIsTerminal(t *testing.T) {
	tests := []struct {
		status CycleStatus
		want   bool
	}{
		{ActiveCycle, false},
		{ExpiredCycle, true},
		{AwardedCycle, true},
	}

	for _, tt := range tests {
		c := Cycle{Status: tt.status}
		if got := c.IsTerminal(); got != tt.want {
			t.Fatalf("IsTerminal() for %s = %v, want %v", tt.status, got, tt.want)
		}
	}
}
