package mapping

import (
	"time"

	"cloud.google.com/go/civil"
)

// ToModelDate converts a calendar date to midnight UTC for a DATE column.
func ToModelDate(d civil.Date) time.Time {
	return d.In(time.UTC)
}

// ToDomainDate reads the calendar day of a DATE column. pgx returns DATE
// values at midnight UTC, so the UTC day is the stored day.
func ToDomainDate(t time.Time) civil.Date {
	return civil.DateOf(t.UTC())
}

// ToModelDatePtr is ToModelDate for nullable columns.
func ToModelDatePtr(d *civil.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := ToModelDate(*d)
	return &t
}

// ToDomainDatePtr is ToDomainDate for nullable columns.
func ToDomainDatePtr(t *time.Time) *civil.Date {
	if t == nil {
		return nil
	}
	d := ToDomainDate(*t)
	return &d
}
