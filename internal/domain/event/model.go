package event

import "time"

const GeoPointType = "Point"

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Type: GeoPointType, Coordinates: [2]float64{lng, lat}}
}

func (p GeoPoint) Lat() float64 { return p.Coordinates[1] }
func (p GeoPoint) Lng() float64 { return p.Coordinates[0] }

type Host struct {
	ID       string
	Username string
	Email    string
	Image    string
}

// Event is a community event as served by the backend. Followers is owned by
// the backend; clients only request follow toggles.
type Event struct {
	ID          string
	Name        string
	Description string
	Activity    string
	Date        time.Time
	Time        string
	Location    GeoPoint
	Host        Host
	Followers   []string
}

func (e Event) HasFollower(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range e.Followers {
		if id == userID {
			return true
		}
	}
	return false
}

// CanDelete reports whether the actor may delete the event: its host or an admin.
func (e Event) CanDelete(actorID string, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return actorID != "" && actorID == e.Host.ID
}

func FindByID(events []Event, id string) (Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}
