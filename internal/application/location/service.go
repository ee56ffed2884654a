package location

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-notify-relay/internal/application/advisor"
	"github.com/go-notify-relay/internal/domain"
	"github.com/go-notify-relay/internal/infrastructure/discord"
	"github.com/go-notify-relay/internal/infrastructure/geocoder"
	"github.com/go-notify-relay/internal/infrastructure/line"
)

// Embed wording for the location channel.
const (
	titleLocation = "位置情報更新通知"
	descLocation  = "位置情報が更新されました。"
	titleEnter    = "進入通知"
	descEnter     = "指定のエリアに進入しました。"
	titleLeave    = "退出通知"
	descLeave     = "指定のエリアから退出しました。"

	transitionColor = "15128606"
)

// Service runs the location pipeline: resolve, notify, and on geofence
// entry possibly push. Nothing it does may fail past its boundary; the
// ingest route reports success regardless.
type Service interface {
	HandleUpdate(ctx context.Context, upd domain.LocationUpdate)
}

// ServiceDeps wires the pipeline's collaborators.
type ServiceDeps struct {
	Resolver       geocoder.Resolver
	Notifier       discord.Notifier
	Messenger      line.Messenger
	Advisor        advisor.Service
	ChannelURL     string   // Discord location channel; empty disables notifications
	SpecialUserIDs []string // direct-push recipients; empty disables the push
	Now            func() time.Time
}

type service struct {
	deps ServiceDeps
}

// NewService builds the location pipeline service.
func NewService(deps ServiceDeps) Service {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &service{deps: deps}
}

func (s *service) HandleUpdate(ctx context.Context, upd domain.LocationUpdate) {
	addr := s.deps.Resolver.Resolve(ctx, upd.Lat, upd.Lon)
	body := locationBody(upd.Lat, upd.Lon, addr)

	if !upd.IsTransition() {
		s.deps.Notifier.Notify(ctx, titleLocation, descLocation, body, s.deps.ChannelURL, "")
		log.Println(addr)
		return
	}

	transitionBody := fmt.Sprintf("イベント: **%s**\nエリア名: **%s**\n%s", upd.Event, upd.Desc, body)

	switch upd.Event {
	case domain.TransitionEnter:
		log.Printf("geofence enter: area=%s addr=%s", upd.Desc, addr)
		s.deps.Notifier.Notify(ctx, titleEnter, descEnter, transitionBody, s.deps.ChannelURL, transitionColor)

		advice := s.deps.Advisor.Evaluate(upd.Desc, addr.String(), s.deps.Now())
		if advice.ShouldNotify {
			if err := s.deps.Messenger.Push(ctx, s.deps.SpecialUserIDs, advice.Message); err != nil {
				log.Printf("arrival push error: %v", err)
			}
		}
	case domain.TransitionLeave:
		log.Printf("geofence leave: area=%s addr=%s", upd.Desc, addr)
		s.deps.Notifier.Notify(ctx, titleLeave, descLeave, transitionBody, s.deps.ChannelURL, transitionColor)
	}
}

// locationBody renders the shared labeled-fields template.
func locationBody(lat, lon float64, addr domain.Address) string {
	return fmt.Sprintf("**緯度**: %s\n**経度**: %s\n**住所**: %s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
		addr)
}
