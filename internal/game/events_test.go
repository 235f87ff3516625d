package game

import (
	"math/rand"
	"testing"

	"github.com/mailopolis/mailopolis/pkg/models"
)

func TestCrisisForStats(t *testing.T) {
	tests := []struct {
		name      string
		stats     models.CityStats
		wantTitle string
	}{
		{
			"low sustainability triggers environmental crisis",
			models.CityStats{SustainabilityScore: 29, PublicApproval: 65},
			"Environmental Crisis",
		},
		{
			"low approval triggers confidence crisis",
			models.CityStats{SustainabilityScore: 45, PublicApproval: 29},
			"Public Confidence Crisis",
		},
		{
			"sustainability checked first",
			models.CityStats{SustainabilityScore: 10, PublicApproval: 10},
			"Environmental Crisis",
		},
		{
			"healthy stats trigger nothing",
			models.CityStats{SustainabilityScore: 45, PublicApproval: 65},
			"",
		},
		{
			"threshold is exclusive",
			models.CityStats{SustainabilityScore: 30, PublicApproval: 30},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, ok := crisisForStats(tt.stats)
			if tt.wantTitle == "" {
				if ok {
					t.Errorf("unexpected crisis %q", event.Title)
				}
				return
			}
			if !ok || event.Title != tt.wantTitle {
				t.Errorf("crisis = %q (ok=%v), want %q", event.Title, ok, tt.wantTitle)
			}
			if event.Type != models.EventCrisis {
				t.Errorf("event type = %s, want %s", event.Type, models.EventCrisis)
			}
		})
	}
}

func TestProcessEventsExpiry(t *testing.T) {
	e := newTestEngine(t, Config{
		MaxTurns: 50, EventProbability: 0,
		WinSustainability: 85, WinApproval: 80, WinHappiness: 80,
		Rand: rand.New(rand.NewSource(1)), Logger: NopLogger(),
	})
	e.activeEvents = []models.GameEvent{
		{Title: "Short", Duration: 1},
		{Title: "Long", Duration: 3},
	}

	e.processEvents()

	if len(e.activeEvents) != 1 {
		t.Fatalf("active events = %d, want 1", len(e.activeEvents))
	}
	if e.activeEvents[0].Title != "Long" || e.activeEvents[0].Duration != 2 {
		t.Errorf("surviving event = %+v, want Long with duration 2", e.activeEvents[0])
	}
}

func TestProcessEventsInjectsRandomEvent(t *testing.T) {
	e := newTestEngine(t, Config{
		MaxTurns: 50, EventProbability: 1,
		WinSustainability: 85, WinApproval: 80, WinHappiness: 80,
		Rand: rand.New(rand.NewSource(1)), Logger: NopLogger(),
	})

	e.processEvents()

	if len(e.activeEvents) != 1 {
		t.Fatalf("active events = %d, want 1 injected event", len(e.activeEvents))
	}
	titles := map[string]bool{}
	for _, event := range randomEventCatalog() {
		titles[event.Title] = true
	}
	if !titles[e.activeEvents[0].Title] {
		t.Errorf("injected event %q is not from the catalog", e.activeEvents[0].Title)
	}
}

func TestInitialEventsHoneymoon(t *testing.T) {
	events := initialEvents()
	if len(events) != 1 {
		t.Fatalf("initial events = %d, want 1", len(events))
	}
	if events[0].Title != "New Administration Honeymoon" {
		t.Errorf("title = %q, want honeymoon event", events[0].Title)
	}
	if events[0].Duration != 5 || events[0].Type != models.EventOpportunity {
		t.Errorf("honeymoon event = %+v, want 5-turn opportunity", events[0])
	}
}
