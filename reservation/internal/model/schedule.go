package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Weekday string

const (
	Senin  Weekday = "Senin"
	Selasa Weekday = "Selasa"
	Rabu   Weekday = "Rabu"
	Kamis  Weekday = "Kamis"
	Jumat  Weekday = "Jumat"
	Sabtu  Weekday = "Sabtu"
	Minggu Weekday = "Minggu"
)

var weekdays = [...]Weekday{Senin, Selasa, Rabu, Kamis, Jumat, Sabtu, Minggu}

func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for _, d := range weekdays {
		if strings.EqualFold(string(d), s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// WeekdayOf maps a calendar date to its weekday name.
func WeekdayOf(t time.Time) Weekday {
	// time.Sunday == 0
	return weekdays[(int(t.Weekday())+6)%7]
}

// TimeOfDay is minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay accepts HH:MM and HH:MM:SS.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	layout := "15:04"
	if strings.Count(s, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case string:
		p, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = p
	case []byte:
		return t.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

type TeachingSlot struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	InstructorID   uuid.UUID  `json:"instructorId" db:"instructor_id"`
	InstructorName string     `json:"instructorName" db:"instructor_name"`
	Weekday        Weekday    `json:"weekday" db:"weekday"`
	StartTime      TimeOfDay  `json:"startTime" db:"start_time"`
	EndTime        TimeOfDay  `json:"endTime" db:"end_time"`
	CourseLabel    string     `json:"courseLabel" db:"course_label"`
	ResourceID     *uuid.UUID `json:"resourceId,omitempty" db:"resource_id"`
}

// Overlaps is inclusive at both edges: a slot ending exactly when the
// window starts still counts.
func (s TeachingSlot) Overlaps(from, to TimeOfDay) bool {
	return s.EndTime >= from && s.StartTime <= to
}

type OverlapQuery struct {
	Weekday string `query:"weekday" validate:"required"`
	From    string `query:"from" validate:"required"`
	To      string `query:"to" validate:"required"`
}
