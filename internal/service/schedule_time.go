package service

import (
	"strings"
	"sync"
	"time"

	"github.com/ankur09868/whatsapp-automation/internal/apperrors"
)

// scheduleTimeLayout is the shape the frontend submits.
const scheduleTimeLayout = "2006-01-02 15:04:05"

// All scheduled times are stored in Asia/Kolkata; downstream displays and the
// delivery worker assume it.
const storageTimeZone = "Asia/Kolkata"

var (
	storageLocation     *time.Location
	storageLocationErr  error
	storageLocationOnce sync.Once
)

func loadStorageLocation() (*time.Location, error) {
	storageLocationOnce.Do(func() {
		storageLocation, storageLocationErr = time.LoadLocation(storageTimeZone)
	})
	return storageLocation, storageLocationErr
}

// NormalizeScheduleTime parses a submitted scheduling timestamp and converts
// it to the storage time zone. Inputs without an explicit zone are treated as
// UTC instants.
func NormalizeScheduleTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperrors.Validation("scheduledTime is required")
	}

	var instant time.Time
	if t, err := time.Parse(scheduleTimeLayout, raw); err == nil {
		instant = t
	} else if t, err := time.Parse(time.RFC3339, raw); err == nil {
		instant = t.UTC()
	} else {
		return time.Time{}, apperrors.Validation("invalid scheduledTime format, expected YYYY-MM-DD HH:MM:SS")
	}

	loc, err := loadStorageLocation()
	if err != nil {
		return time.Time{}, apperrors.Persistence("failed to load storage time zone", err)
	}

	return instant.In(loc), nil
}
