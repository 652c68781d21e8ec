package service

import (
	"berries/internal/domain/repository"
	appErrors "berries/internal/pkg/errors"
	"berries/internal/pkg/logger"
	"context"
	"errors"
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"gorm.io/gorm"
)

// Notifier delivers a reminder message to an owner.
type Notifier interface {
	Notify(ctx context.Context, ownerID, message string) error
}

type logNotifier struct {
	log logger.Logger
}

// NewLogNotifier returns a Notifier that only writes the reminder to the log.
func NewLogNotifier(log logger.Logger) Notifier {
	return &logNotifier{log: log}
}

// Notify logs the reminder and never fails.
func (n *logNotifier) Notify(_ context.Context, ownerID, message string) error {
	n.log.Info(fmt.Sprintf("Reminder for owner %s: %s", ownerID, message))
	return nil
}

// Pusher sends LINE messages to a user. Implemented by line.Client.
type Pusher interface {
	PushMessages(to string, messages ...linebot.SendingMessage) error
}

type pushNotifier struct {
	pusher        Pusher
	recipientRepo repository.PushRecipientRepository
	log           logger.Logger
}

// NewPushNotifier returns a Notifier that pushes the reminder to the LINE user
// registered for the owner.
func NewPushNotifier(pusher Pusher, recipientRepo repository.PushRecipientRepository, log logger.Logger) Notifier {
	return &pushNotifier{
		pusher:        pusher,
		recipientRepo: recipientRepo,
		log:           log,
	}
}

// Notify looks up the owner's recipient and pushes the message to it.
func (n *pushNotifier) Notify(ctx context.Context, ownerID, message string) error {
	recipient, err := n.recipientRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: owner %s has no push recipient", appErrors.ErrNotification, ownerID)
		}
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if err := n.pusher.PushMessages(recipient.RecipientID, linebot.NewTextMessage(message)); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrNotification, err)
	}
	n.log.Debug(fmt.Sprintf("Pushed reminder to owner %s", ownerID))
	return nil
}
