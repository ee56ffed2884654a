package linebot

import (
	"context"
	"fmt"

	"github.com/go-notify-relay/internal/domain"
	"github.com/go-notify-relay/internal/infrastructure/discord"
	"github.com/go-notify-relay/internal/infrastructure/line"
	"golang.org/x/sync/errgroup"
)

// Embed wording for the LINE-user channel.
const (
	titleUserID = "ユーザーID"
	descUserID  = "LINEユーザーのIDを通知します。"
	userIDColor = "15128606"
)

// replyText is the fixed reply sent back to every processed message.
const replyText = "開発：北野\n2025年11月 開始"

// Service processes a LINE webhook event batch.
type Service interface {
	// HandleEvents fans out over the batch and returns per-event results
	// index-aligned with the input: nil for skipped events, the reply
	// result for processed ones. Any single failure fails the batch.
	HandleEvents(ctx context.Context, events []domain.LineEvent) ([]*domain.ReplyResult, error)
}

// ServiceDeps wires the messaging pipeline's collaborators.
type ServiceDeps struct {
	Messenger  line.Messenger
	Notifier   discord.Notifier
	ChannelURL string // Discord LINE-user channel; empty disables notifications
}

type service struct {
	deps ServiceDeps
}

// NewService builds the messaging pipeline service.
func NewService(deps ServiceDeps) Service {
	return &service{deps: deps}
}

func (s *service) HandleEvents(ctx context.Context, events []domain.LineEvent) ([]*domain.ReplyResult, error) {
	results := make([]*domain.ReplyResult, len(events))

	g, ctx := errgroup.WithContext(ctx)
	for i, ev := range events {
		i, ev := i, ev
		g.Go(func() error {
			res, err := s.handleEvent(ctx, ev)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *service) handleEvent(ctx context.Context, ev domain.LineEvent) (*domain.ReplyResult, error) {
	if !ev.IsTextMessage() {
		return nil, nil
	}

	profile, err := s.deps.Messenger.GetProfile(ctx, ev.Source.UserID)
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf("**ユーザー:** %s\n**表示名:** %s", ev.Source.UserID, profile.DisplayName)
	s.deps.Notifier.Notify(ctx, titleUserID, descUserID, body, s.deps.ChannelURL, userIDColor)

	return s.deps.Messenger.Reply(ctx, ev.ReplyToken, replyText)
}
