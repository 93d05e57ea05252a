package service

import (
	"context"
	"fmt"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/talkincode/selectshop/config"
	"github.com/talkincode/selectshop/internal/store"
)

// Settings exposes the runtime toggles the notifier reads per event.
type Settings interface {
	GetSettingsBoolValue(category, key string) bool
}

// Notifier reacts to price-reached events. It always logs; when an SMTP
// host is configured and the notify.EmailEnabled setting is on it also
// emails the product's owner.
type Notifier struct {
	users    store.UserStore
	smtp     config.SmtpConfig
	settings Settings
}

func NewNotifier(users store.UserStore, smtp config.SmtpConfig, settings Settings) *Notifier {
	return &Notifier{users: users, smtp: smtp, settings: settings}
}

func (n *Notifier) emailEnabled() bool {
	if n.smtp.Host == "" {
		return false
	}
	if n.settings != nil && !n.settings.GetSettingsBoolValue("notify", "EmailEnabled") {
		return false
	}
	return true
}

// Subscribe registers the notifier on the event bus.
func (n *Notifier) Subscribe(bus EventBus.Bus) error {
	return bus.SubscribeAsync(TopicPriceReached, n.onPriceReached, false)
}

func (n *Notifier) onPriceReached(evt PriceReachedEvent) {
	zap.L().Info("target price reached",
		zap.Int64("product_id", evt.ProductID),
		zap.Int64("user_id", evt.UserID),
		zap.String("title", evt.Title),
		zap.Int("lowest_price", evt.LowestPrice),
		zap.Int("my_price", evt.MyPrice))

	if !n.emailEnabled() {
		return
	}

	user, err := n.users.GetByID(context.Background(), evt.UserID)
	if err != nil || user.Email == "" || user.Email == "N/A" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.smtp.From)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", fmt.Sprintf("[selectshop] %s reached your target price", evt.Title))
	m.SetBody("text/plain", fmt.Sprintf(
		"%s is now %d (your target: %d)\n%s\n",
		evt.Title, evt.LowestPrice, evt.MyPrice, evt.Link))

	d := gomail.NewDialer(n.smtp.Host, n.smtp.Port, n.smtp.Username, n.smtp.Password)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error("failed to send price notification",
			zap.Int64("product_id", evt.ProductID),
			zap.String("to", user.Email),
			zap.Error(err))
	}
}
