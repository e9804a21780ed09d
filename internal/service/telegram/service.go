package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	converter "github.com/you-humble/techrepair/internal/converter/telegram"
	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/platform/logger"
)

type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type service struct {
	client MessageSender

	mu    sync.RWMutex
	chats map[int64]struct{}
}

func NewTgService(client MessageSender, chatIDs ...int64) *service {
	svc := &service{client: client, chats: make(map[int64]struct{}, len(chatIDs))}
	for _, id := range chatIDs {
		svc.chats[id] = struct{}{}
	}
	return svc
}

// NotifyRepairEvent sends the rendered event to every subscribed chat. A
// failing chat does not stop delivery to the others.
func (svc *service) NotifyRepairEvent(ctx context.Context, event model.RepairEvent) error {
	const op = "telegram.service.NotifyRepairEvent"

	text, ok, err := converter.BuildRepairEvent(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		logger.Debug(ctx, "no notification for event type",
			logger.String("event_type", string(event.Type)),
		)
		return nil
	}

	var errs []error
	for _, chatID := range svc.ChatIDs() {
		if err := svc.client.SendMessage(ctx, chatID, text); err != nil {
			logger.Error(ctx, "send telegram message",
				logger.Int64("chat_id", chatID),
				logger.String("repair_id", event.RepairID),
				logger.ErrorF(err),
			)
			errs = append(errs, fmt.Errorf("chat %d: %w", chatID, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", op, errors.Join(errs...))
	}

	return nil
}

func (svc *service) AddChatID(ctx context.Context, chatID int64) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if _, ok := svc.chats[chatID]; !ok {
		logger.Info(ctx, "chat subscribed", logger.Int64("chat_id", chatID))
	}
	svc.chats[chatID] = struct{}{}
}

// ChatIDs returns the subscribers in ascending order.
func (svc *service) ChatIDs() []int64 {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	ids := make([]int64, 0, len(svc.chats))
	for id := range svc.chats {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
