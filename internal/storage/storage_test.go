package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestArchiveKeys(t *testing.T) {
	consultantID := uuid.MustParse("7b1f4c52-9d0e-4a5b-8c21-3f6e2d9a1b07")
	recordID := uuid.MustParse("0c9e8f6a-2b3d-4e5f-9a1b-c2d3e4f5a6b7")

	got := WeeklyScheduleKey(consultantID, recordID)
	want := "archive/weekly/7b1f4c52-9d0e-4a5b-8c21-3f6e2d9a1b07/0c9e8f6a-2b3d-4e5f-9a1b-c2d3e4f5a6b7.json"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	date := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	got = OverrideKey(consultantID, date, recordID)
	want = "archive/overrides/7b1f4c52-9d0e-4a5b-8c21-3f6e2d9a1b07/2025-07-04-0c9e8f6a-2b3d-4e5f-9a1b-c2d3e4f5a6b7.json"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
