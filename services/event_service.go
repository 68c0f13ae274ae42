package services

import (
	"ceam-backend/models"
	"ceam-backend/repository"
	"ceam-backend/utils/logger"
	"fmt"
	"sync"
	"time"
)

const (
	homeSectionTitle  = "Upcoming Events"
	homeSectionLinkTo = "/events"
)

// FilterUpcoming returns, in their original order, the events whose end is strictly after now.
// The input slice is not modified.
func FilterUpcoming(events []models.Event, now time.Time) []models.Event {
	upcoming := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.EndDate.After(now) {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming
}

func cards(events []models.Event, variant models.CardVariant) []models.EventCard {
	out := make([]models.EventCard, 0, len(events))
	for _, e := range events {
		out = append(out, models.EventCard{Variant: variant, Event: e})
	}
	return out
}

func phaseOf(attached bool) models.Phase {
	if attached {
		return models.PhaseLive
	}
	return models.PhaseStatic
}

// HomeSection builds the home page teaser. Once attached, an empty list hides the section.
func HomeSection(events []models.Event, attached bool) models.HomeSectionView {
	if attached && len(events) == 0 {
		return models.HomeSectionView{Phase: models.PhaseLive, Visible: false, Cards: []models.EventCard{}}
	}
	return models.HomeSectionView{
		Phase:   phaseOf(attached),
		Visible: true,
		Title:   homeSectionTitle,
		LinkTo:  homeSectionLinkTo,
		Cards:   cards(events, models.CardVariantHome),
	}
}

// ListingGrid builds the events page grid
func ListingGrid(events []models.Event, attached bool) models.ListingGridView {
	view := models.ListingGridView{
		Phase: phaseOf(attached),
		Cards: cards(events, models.CardVariantListing),
	}
	if attached && len(events) == 0 {
		empty := models.NoUpcomingEventsPlaceholder
		view.EmptyState = &empty
	}
	if len(events) > 0 {
		filler := models.MoreEventsComingSoonPlaceholder
		view.Filler = &filler
	}
	return view
}

// Reveal holds the list a consumer shows. It starts with the full list and
// narrows to the upcoming events exactly once, when the consumer attaches.
type Reveal struct {
	once     sync.Once
	mu       sync.RWMutex
	events   []models.Event
	attached bool
}

func NewReveal(all []models.Event) *Reveal {
	events := make([]models.Event, len(all))
	copy(events, all)
	return &Reveal{events: events}
}

// Attach filters the list against now. Later calls have no effect.
func (r *Reveal) Attach(now time.Time) {
	r.once.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = FilterUpcoming(r.events, now)
		r.attached = true
	})
}

// Events returns the current list and whether the consumer has attached
func (r *Reveal) Events() ([]models.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Event, len(r.events))
	copy(out, r.events)
	return out, r.attached
}

// Countdown splits the time left until target into days, hours, minutes and seconds.
// It is all zero once target has been reached.
func Countdown(target, now time.Time) models.Countdown {
	c := models.Countdown{Target: target}
	diff := target.Sub(now)
	if diff <= 0 {
		c.Started = true
		return c
	}
	total := int64(diff / time.Second)
	c.Days = total / 86400
	c.Hours = (total % 86400) / 3600
	c.Minutes = (total % 3600) / 60
	c.Seconds = total % 60
	return c
}

type EventService struct {
	catalog repository.CatalogRepositoryInterface
	logger  logger.Logger
	now     func() time.Time
}

func NewEventService(catalog repository.CatalogRepositoryInterface, log logger.Logger) *EventService {
	return &EventService{
		catalog: catalog,
		logger:  log,
		now:     time.Now,
	}
}

// ListEvents returns the full configured list, the pre-rendered phase
func (s *EventService) ListEvents() []models.Event {
	return s.catalog.Events()
}

// UpcomingEvents returns the events not yet concluded at request time
func (s *EventService) UpcomingEvents() []models.Event {
	return FilterUpcoming(s.catalog.Events(), s.now())
}

// reveal evaluates the two-phase list for phase
func (s *EventService) reveal(phase models.Phase) ([]models.Event, bool, error) {
	r := NewReveal(s.catalog.Events())
	switch phase {
	case models.PhaseStatic, "":
	case models.PhaseLive:
		r.Attach(s.now())
	default:
		return nil, false, fmt.Errorf("unknown phase %q", phase)
	}
	events, attached := r.Events()
	return events, attached, nil
}

func (s *EventService) HomeSection(phase models.Phase) (models.HomeSectionView, error) {
	events, attached, err := s.reveal(phase)
	if err != nil {
		return models.HomeSectionView{}, err
	}
	return HomeSection(events, attached), nil
}

func (s *EventService) ListingGrid(phase models.Phase) (models.ListingGridView, error) {
	events, attached, err := s.reveal(phase)
	if err != nil {
		return models.ListingGridView{}, err
	}
	return ListingGrid(events, attached), nil
}

// GetEvent looks up an event by id regardless of whether it has concluded
func (s *EventService) GetEvent(id string) (*models.Event, error) {
	for _, e := range s.catalog.Events() {
		if e.ID == id {
			event := e
			return &event, nil
		}
	}
	return nil, models.ErrEventNotFound
}

// GetCountdown returns the time left until the event starts
func (s *EventService) GetCountdown(id string) (*models.Countdown, error) {
	event, err := s.GetEvent(id)
	if err != nil {
		return nil, err
	}
	c := Countdown(event.StartDate, s.now())
	c.EventID = event.ID
	return &c, nil
}
