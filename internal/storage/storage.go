package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ArchiveStorage keeps JSON copies of schedule records removed by a hard delete.
type ArchiveStorage interface {
	PutJSON(ctx context.Context, key string, v interface{}) error

	GetJSON(ctx context.Context, key string, v interface{}) error
}

func WeeklyScheduleKey(consultantID, scheduleID uuid.UUID) string {
	return fmt.Sprintf("archive/weekly/%s/%s.json", consultantID, scheduleID)
}

func OverrideKey(consultantID uuid.UUID, date time.Time, overrideID uuid.UUID) string {
	return fmt.Sprintf("archive/overrides/%s/%s-%s.json", consultantID, date.Format("2006-01-02"), overrideID)
}
