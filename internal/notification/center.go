package notification

import (
	"sync"

	"github.com/pkg/errors"
)

const TypeInfo = "info"

// Center keeps displayed notifications in memory, in display order.
type Center struct {
	mu    sync.Mutex
	items []*Item
}

var _ Service = (*Center)(nil)

func NewCenter() *Center {
	return &Center{}
}

func (c *Center) AddInfo(message string, opts Options) Notification {
	item := &Item{
		Type:    TypeInfo,
		Message: message,
		Options: opts,
	}

	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()

	return item
}

// Notifications returns every notification added since the last Clear.
func (c *Center) Notifications() []*Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]*Item, len(c.items))
	copy(items, c.items)
	return items
}

// Pending returns the notifications that were not dismissed yet.
func (c *Center) Pending() []*Item {
	var pending []*Item
	for _, item := range c.Notifications() {
		if !item.IsDismissed() {
			pending = append(pending, item)
		}
	}
	return pending
}

func (c *Center) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

type Item struct {
	Type    string
	Message string
	Options Options

	mu        sync.Mutex
	dismissed bool
	onDismiss []func()
}

var _ Notification = (*Item)(nil)

func (i *Item) Dismiss() {
	i.mu.Lock()
	if i.dismissed {
		i.mu.Unlock()
		return
	}
	i.dismissed = true
	callbacks := i.onDismiss
	i.onDismiss = nil
	i.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

func (i *Item) IsDismissed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.dismissed
}

func (i *Item) OnDidDismiss(fn func()) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.dismissed {
		return
	}
	i.onDismiss = append(i.onDismiss, fn)
}

// Click triggers the button at index.
func (i *Item) Click(index int) error {
	if index < 0 || index >= len(i.Options.Buttons) {
		return errors.Errorf("notification has no button #%d", index)
	}
	if fn := i.Options.Buttons[index].OnDidClick; fn != nil {
		fn()
	}
	return nil
}
