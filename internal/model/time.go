package model

import "time"

// naiveLayout is how older data files store local times without an offset.
const naiveLayout = "2006-01-02T15:04:05.999999999"

func FormatTime(t time.Time) string { return t.Format(time.RFC3339Nano) }

// ParseTime accepts RFC 3339 and offset-less ISO-8601 values, the latter read in loc.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(naiveLayout, s, loc)
}
