package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Level classifies a notification for the editing surface.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a single user-visible message.
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier collects user-visible notifications with instance-scoped IDs.
// It is injected into the features that produce them; there is no package
// level state, so independent notifiers never share an ID sequence.
type Notifier struct {
	mu     sync.Mutex
	items  []Notification
	max    int
	logger *zap.Logger
	newID  func() string
	now    func() time.Time
}

// New creates a notifier keeping at most max recent notifications.
func New(logger *zap.Logger, max int) *Notifier {
	if max <= 0 {
		max = 100
	}
	return &Notifier{
		max:    max,
		logger: logger,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

// Push records a notification and logs it at a matching level.
func (n *Notifier) Push(level Level, message string) Notification {
	item := Notification{
		ID:        n.newID(),
		Level:     level,
		Message:   message,
		CreatedAt: n.now(),
	}

	n.mu.Lock()
	n.items = append(n.items, item)
	if len(n.items) > n.max {
		n.items = n.items[len(n.items)-n.max:]
	}
	n.mu.Unlock()

	switch level {
	case LevelError:
		n.logger.Error(message, zap.String("notification_id", item.ID))
	case LevelWarning:
		n.logger.Warn(message, zap.String("notification_id", item.ID))
	default:
		n.logger.Info(message, zap.String("notification_id", item.ID))
	}
	return item
}

// Recent returns a copy of the retained notifications, oldest first.
func (n *Notifier) Recent() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.items))
	copy(out, n.items)
	return out
}
