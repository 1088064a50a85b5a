// Package handler turns one inbound chat message into one outbound reply.
package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/avaldez/pedidosbot/internal/domain"
	"github.com/avaldez/pedidosbot/internal/intent"
)

//go:generate mockgen -source handler.go -destination=handler_mock_test.go -package=handler

type Resolver interface {
	Resolve(ctx context.Context, code, requesterID string) (*domain.OrderRecord, error)
}

type Sender interface {
	Send(ctx context.Context, to, text string) error
}

type Handler struct {
	resolver Resolver
	sender   Sender
	logger   *zap.Logger
}

func New(resolver Resolver, sender Sender, logger *zap.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		sender:   sender,
		logger:   logger,
	}
}

// Reply computes the reply text for a single message. Only order-code-shaped
// input reaches the resolver; everything else is answered from templates.
func (h *Handler) Reply(ctx context.Context, from, text string) string {
	it := intent.Classify(text)
	h.logger.Info("message classified",
		zap.String("from", from),
		zap.Stringer("intent", it.Kind),
	)

	switch it.Kind {
	case intent.Profanity:
		return ProfanityReply
	case intent.Help:
		return HelpReply
	case intent.Greeting:
		return GreetingReply
	case intent.OrderCode:
		rec, err := h.resolver.Resolve(ctx, it.Code, from)
		if err != nil {
			return NotFoundReply(from, it.Code)
		}
		return StatusReply(rec)
	default:
		return UnknownReply
	}
}

// Handle processes the message end to end: compute the reply and dispatch it.
// Delivery is best effort; a failed send is logged and swallowed.
func (h *Handler) Handle(ctx context.Context, from, text string) string {
	reply := h.Reply(ctx, from, text)
	if err := h.sender.Send(ctx, from, reply); err != nil {
		h.logger.Warn("outbound send failed",
			zap.String("to", from),
			zap.Error(err),
		)
	}
	return reply
}
