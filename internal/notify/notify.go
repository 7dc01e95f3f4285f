// Package notify holds client-side notifications. Notifications are never
// persisted remotely and live only for the lifetime of the process.
package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/retailops/storeadmin/internal/models"
)

// DefaultToastTTL is how long a toast stays up before auto-dismissing.
const DefaultToastTTL = 5 * time.Second

// Center collects notifications and spawns toasts.
type Center struct {
	mu            sync.Mutex
	notifications []models.Notification
	toastTTL      time.Duration
	log           *zap.Logger
}

// NewCenter creates an empty notification center. A nil logger disables
// logging; ttl <= 0 selects DefaultToastTTL.
func NewCenter(ttl time.Duration, log *zap.Logger) *Center {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Center{toastTTL: ttl, log: log}
}

// Push appends a notification.
func (c *Center) Push(n models.Notification) {
	c.mu.Lock()
	c.notifications = append(c.notifications, n)
	c.mu.Unlock()
	c.log.Info("notification", zap.String("type", n.Type), zap.String("message", n.Message))
}

// Count returns the number of held notifications. The shell's badge shows
// this value.
func (c *Center) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.notifications)
}

// Notifications returns a copy of the held notifications.
func (c *Center) Notifications() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Notification(nil), c.notifications...)
}

// Toast displays a notification transiently. It auto-dismisses after the
// center's TTL and may be dismissed manually before that.
func (c *Center) Toast(n models.Notification) *Toast {
	t := &Toast{Notification: n, done: make(chan struct{})}
	t.timer = time.AfterFunc(c.toastTTL, t.Dismiss)
	return t
}

// Toast is a transient notification display.
type Toast struct {
	Notification models.Notification

	mu        sync.Mutex
	timer     *time.Timer
	dismissed bool
	done      chan struct{}
}

// Dismiss removes the toast. Dismissing twice is a no-op.
func (t *Toast) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.dismissed {
		return
	}
	t.dismissed = true
	t.timer.Stop()
	close(t.done)
}

// Active reports whether the toast is still displayed.
func (t *Toast) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.dismissed
}

// Done returns a channel closed when the toast is dismissed.
func (t *Toast) Done() <-chan struct{} {
	return t.done
}
