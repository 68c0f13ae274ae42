package models

import "time"

// EventType selects the card variant an event is rendered with
type EventType string

const (
	EventTypeCultural EventType = "cultural"
	EventTypeEsports  EventType = "esports"
)

// Event is a scheduled occurrence from the static catalog.
// Display fields are passed through untouched.
type Event struct {
	ID              string    `json:"id"`
	Type            EventType `json:"type"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Title           string    `json:"title"`
	Badge           string    `json:"badge"`
	DateDisplay     string    `json:"dateDisplay"`
	Location        string    `json:"location,omitempty"`
	SecondaryInfo   string    `json:"secondaryInfo,omitempty"`
	Description     string    `json:"description"`
	DescriptionHome string    `json:"descriptionHome"`
	CTAText         string    `json:"ctaText"`
	CTATextHome     string    `json:"ctaTextHome"`
	Href            string    `json:"href"`
}

// Phase of the two-phase reveal
type Phase string

const (
	// PhaseStatic is the pre-rendered view: every configured event
	PhaseStatic Phase = "static"
	// PhaseLive is the view once the interactive client has attached
	PhaseLive Phase = "live"
)

// CardVariant is the surface an event card is rendered on
type CardVariant string

const (
	CardVariantHome    CardVariant = "home"
	CardVariantListing CardVariant = "listing"
)

// EventCard is one event prepared for a surface
type EventCard struct {
	Variant CardVariant `json:"variant"`
	Event   Event       `json:"event"`
}

// Placeholder is a non-event card in the listing grid
type Placeholder struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var (
	NoUpcomingEventsPlaceholder = Placeholder{
		Title:       "No Upcoming Events",
		Description: "Stay tuned for future community gatherings and celebrations.",
	}
	MoreEventsComingSoonPlaceholder = Placeholder{
		Title:       "More Events Coming Soon",
		Description: "Stay tuned for updates on community gatherings and workshops.",
	}
)

// HomeSectionView is the "Upcoming Events" teaser on the home page.
// When Visible is false the whole section is left out.
type HomeSectionView struct {
	Phase   Phase       `json:"phase"`
	Visible bool        `json:"visible"`
	Title   string      `json:"title,omitempty"`
	LinkTo  string      `json:"linkTo,omitempty"`
	Cards   []EventCard `json:"cards"`
}

// ListingGridView is the grid on the events page
type ListingGridView struct {
	Phase      Phase        `json:"phase"`
	Cards      []EventCard  `json:"cards"`
	EmptyState *Placeholder `json:"emptyState,omitempty"`
	Filler     *Placeholder `json:"filler,omitempty"`
}

// Countdown is the time left until an event starts
type Countdown struct {
	EventID string    `json:"eventId"`
	Target  time.Time `json:"target"`
	Days    int64     `json:"days"`
	Hours   int64     `json:"hours"`
	Minutes int64     `json:"minutes"`
	Seconds int64     `json:"seconds"`
	Started bool      `json:"started"`
}
