package workers

import (
	"context"
	"log/slog"
	"presence-lab/contract"
	"presence-lab/domain/presence"
	"presence-lab/observability"
)

// Ensure *EventLoop implements the contract.Worker interface at compile time.
var _ contract.Worker = (*EventLoop)(nil)

// EventLoop hands message events to the handler one at a time.
// Presence state is only ever mutated from this goroutine.
type EventLoop struct {
	events  chan presence.MessageEvent
	handler contract.MessageHandler
	metrics *observability.Metrics
	log     *slog.Logger
}

func NewEventLoop(
	events chan presence.MessageEvent,
	handler contract.MessageHandler,
	metrics *observability.Metrics,
	log *slog.Logger) *EventLoop {
	return &EventLoop{events: events, handler: handler, metrics: metrics, log: log}
}

// Submit enqueues an event, giving up when ctx is done first.
func (w *EventLoop) Submit(ctx context.Context, evt presence.MessageEvent) bool {
	select {
	case w.events <- evt:
		return true
	case <-ctx.Done():
		w.log.Warn("Message event dropped", "message_id", evt.ID, "error", ctx.Err())
		return false
	}
}

func (w *EventLoop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			// Failed sends are not retried, the next event is processed anyway
			if err := w.handler.HandleMessage(ctx, evt); err != nil {
				w.metrics.IncHandlerErrors()
				w.log.Error("Message handling failed",
					"message_id", evt.ID, "guild_id", evt.GuildID, "channel_id", evt.ChannelID, "error", err)
			}
		}
	}
}
