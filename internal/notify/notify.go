// Package notify publishes user notifications to a message broker.
package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Notification types.
const (
	TypeGoalCompleted = "goal.completed"
)

// Channels lists the delivery channels a user has enabled.
type Channels struct {
	Email    bool `json:"email"`
	SMS      bool `json:"sms"`
	WhatsApp bool `json:"whatsapp"`
	InApp    bool `json:"in_app"`
}

// Any reports whether at least one channel is enabled.
func (c Channels) Any() bool {
	return c.Email || c.SMS || c.WhatsApp || c.InApp
}

// Notification is the message body placed on the queue.
type Notification struct {
	Type     string   `json:"type"`
	UserID   string   `json:"user_id"`
	GoalID   string   `json:"goal_id,omitempty"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Amount   int64    `json:"amount"`
	Target   int64    `json:"target"`
	Channels Channels `json:"channels"`
}

// GoalCompleted builds the notification sent when a goal reaches its target.
// Amounts are in cents.
func GoalCompleted(userID, goalID, title string, amount, target int64, channels Channels) Notification {
	return Notification{
		Type:     TypeGoalCompleted,
		UserID:   userID,
		GoalID:   goalID,
		Title:    "Goal reached",
		Message:  fmt.Sprintf("You reached your goal %q. Well done!", title),
		Amount:   amount,
		Target:   target,
		Channels: channels,
	}
}

// Publisher delivers notifications. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
	Close() error
}

// LogPublisher writes notifications to the log. It is used when no broker is configured.
type LogPublisher struct {
	log *zap.SugaredLogger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(log *zap.SugaredLogger) *LogPublisher {
	return &LogPublisher{log: log}
}

// Publish logs the notification.
func (p *LogPublisher) Publish(_ context.Context, n Notification) error {
	p.log.Infow("notification",
		"type", n.Type,
		"user_id", n.UserID,
		"goal_id", n.GoalID,
		"title", n.Title,
		"channels", n.Channels,
	)
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error { return nil }
