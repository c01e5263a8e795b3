package events

import "time"

const (
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// DefaultRadius is the check-in radius in kilometres.
const DefaultRadius = 5.0

type Tag struct {
	ID   string
	Name string
}

type Event struct {
	ID                 string
	Name               string
	Status             string
	Lat                float64
	Lon                float64
	Radius             float64
	HostID             string
	Start              time.Time
	End                *time.Time
	Description        string
	Tags               []Tag
	MusicStyle         string
	AttendeeIDs        []string
	CurrentAttendeeIDs []string
	CreatedAt          time.Time
}

type Media struct {
	ID            string
	Type          string
	FileAvailable bool
	CreatorID     string
	EventID       string
}

type Message struct {
	ID        string
	EventID   string
	UserID    string
	Text      string
	Timestamp time.Time
}

func (e *Event) clone() *Event {
	c := *e
	if e.End != nil {
		end := *e.End
		c.End = &end
	}
	c.Tags = append([]Tag(nil), e.Tags...)
	c.AttendeeIDs = append([]string(nil), e.AttendeeIDs...)
	c.CurrentAttendeeIDs = append([]string(nil), e.CurrentAttendeeIDs...)
	return &c
}

func (e *Event) hasAttendee(userID string) bool {
	return contains(e.AttendeeIDs, userID)
}

func (e *Event) hasTag(name string) bool {
	for _, t := range e.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func without(list []string, v string) []string {
	out := list[:0:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
