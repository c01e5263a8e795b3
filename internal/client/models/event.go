package models

import (
	"slices"
	"time"
)

type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusActive    EventStatus = "active"
	StatusCompleted EventStatus = "completed"
)

var EventStatuses = []EventStatus{StatusScheduled, StatusActive, StatusCompleted}

// Valid reports whether s is one of EventStatuses.
func (s EventStatus) Valid() bool {
	return slices.Contains(EventStatuses, s)
}

// DefaultRadius is the join radius, in kilometres, assumed for every event.
const DefaultRadius = 5.0

type Tag struct {
	ID   string
	Name string
}

// Event is an event record. Media is never stored here; the event store keeps
// it in a separate per-event list.
type Event struct {
	ID                 string
	Name               string
	Status             EventStatus
	Lat                float64
	Lon                float64
	Radius             float64
	HostID             string
	Start              time.Time
	End                time.Time // zero when the event has no end
	AttendeeIDs        []string
	CurrentAttendeeIDs []string
	Description        string
	Tags               []Tag
	MusicStyle         string
}

func (e Event) HasEnd() bool {
	return !e.End.IsZero()
}

// EventPatch is a partial event record. Nil fields were not provided; an End
// pointing at the zero time clears the end date.
type EventPatch struct {
	ID                 string
	Name               *string
	Status             *EventStatus
	Lat                *float64
	Lon                *float64
	Radius             *float64
	HostID             *string
	Start              *time.Time
	End                *time.Time
	AttendeeIDs        []string
	CurrentAttendeeIDs []string
	Description        *string
	Tags               []Tag
	MusicStyle         *string
}

// Merge applies every provided field of p over e.
func (e Event) Merge(p EventPatch) Event {
	e.ID = p.ID
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Lat != nil {
		e.Lat = *p.Lat
	}
	if p.Lon != nil {
		e.Lon = *p.Lon
	}
	if p.Radius != nil {
		e.Radius = *p.Radius
	}
	if p.HostID != nil {
		e.HostID = *p.HostID
	}
	if p.Start != nil {
		e.Start = *p.Start
	}
	if p.End != nil {
		e.End = *p.End
	}
	if p.AttendeeIDs != nil {
		e.AttendeeIDs = slices.Clone(p.AttendeeIDs)
	}
	if p.CurrentAttendeeIDs != nil {
		e.CurrentAttendeeIDs = slices.Clone(p.CurrentAttendeeIDs)
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Tags != nil {
		e.Tags = slices.Clone(p.Tags)
	}
	if p.MusicStyle != nil {
		e.MusicStyle = *p.MusicStyle
	}
	return e
}
