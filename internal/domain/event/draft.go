package event

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Draft is an event being composed before submission. It survives restarts
// through local state so an interrupted form can be resumed.
type Draft struct {
	Name        string    `json:"name" validate:"required,max=120"`
	Description string    `json:"description" validate:"required,max=2000"`
	Activity    string    `json:"activity" validate:"required"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string    `json:"time" validate:"required,datetime=15:04"`
	Location    *GeoPoint `json:"location" validate:"required"`
}

// DefaultDraft mirrors a freshly opened form.
func DefaultDraft(now time.Time) Draft {
	return Draft{
		Activity: "nogomet",
		Date:     now.Format(DateLayout),
		Time:     "12:00",
	}
}

func (d Draft) Normalize() Draft {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Activity = strings.TrimSpace(d.Activity)
	d.Date = strings.TrimSpace(d.Date)
	d.Time = strings.TrimSpace(d.Time)
	return d
}

// CheckLocation rejects coordinates outside WGS84 bounds.
func (d Draft) CheckLocation() error {
	if d.Location == nil {
		return fmt.Errorf("location is required")
	}
	if lat := d.Location.Lat(); lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range", lat)
	}
	if lng := d.Location.Lng(); lng < -180 || lng > 180 {
		return fmt.Errorf("longitude %v out of range", lng)
	}
	return nil
}
