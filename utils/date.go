package utils

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// CustomDate holds a calendar day (no time of day), always at UTC midnight.
type CustomDate struct {
	time.Time
}

// ParseDate accepts only the ISO "YYYY-MM-DD" form.
func ParseDate(s string) (CustomDate, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return CustomDate{}, fmt.Errorf("invalid date format: %s", s)
	}
	return CustomDate{t}, nil
}

// DateOf returns the calendar day t falls on in its own location.
func DateOf(t time.Time) CustomDate {
	y, m, d := t.Date()
	return CustomDate{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d CustomDate) AddDays(n int) CustomDate {
	return CustomDate{d.Time.AddDate(0, 0, n)}
}

// DaysUntil counts whole days from d to other.
func (d CustomDate) DaysUntil(other CustomDate) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

func (d CustomDate) Before(other CustomDate) bool {
	return d.Time.Before(other.Time)
}

func (d CustomDate) After(other CustomDate) bool {
	return d.Time.After(other.Time)
}

func (d *CustomDate) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = CustomDate{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d CustomDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

func (d *CustomDate) Scan(value interface{}) error {
	if value == nil {
		*d = CustomDate{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return fmt.Errorf("cannot parse date string: %v", err)
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return fmt.Errorf("cannot parse date bytes: %v", err)
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("unsupported scan type for CustomDate: %T", value)
	}
}

func (d CustomDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}
