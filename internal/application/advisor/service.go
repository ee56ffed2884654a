package advisor

import (
	"log"
	"time"

	"github.com/go-notify-relay/internal/domain"
)

// The push window: weekday afternoons and evenings, when someone heading
// home actually wants the heads-up.
const (
	windowStartHour = 13
	windowEndHour   = 21
)

// areaMessages maps a geofence area id to its announcement phrase.
// Extend by adding entries; unknown areas are logged and skipped.
var areaMessages = map[string]string{
	"home":   "もうすぐ家着きます",
	"sogawa": "今総曲輪あたりにいます",
}

// Service decides whether an "enter" transition warrants a direct push.
type Service interface {
	Evaluate(areaID, address string, now time.Time) domain.Advice
}

type service struct{}

// NewService returns the arrival advisor.
func NewService() Service { return &service{} }

// Evaluate is pure: the decision depends only on the arguments. It never
// sends anything itself.
func (s *service) Evaluate(areaID, address string, now time.Time) domain.Advice {
	hour := now.Hour()
	inWindow := hour >= windowStartHour && hour < windowEndHour
	weekday := now.Weekday() >= time.Monday && now.Weekday() <= time.Friday
	if !inWindow || !weekday {
		return domain.Advice{}
	}

	phrase, ok := areaMessages[areaID]
	if !ok {
		log.Printf("undefined area: %q", areaID)
		return domain.Advice{}
	}

	return domain.Advice{
		ShouldNotify: true,
		Message:      phrase + "\n現在地: " + address,
	}
}
