package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talkincode/selectshop/config"
)

type stubSettings struct{ email bool }

func (s stubSettings) GetSettingsBoolValue(category, key string) bool { return s.email }

func TestNotifierEmailEnabled(t *testing.T) {
	withHost := config.SmtpConfig{Host: "smtp.example.com", Port: 587}

	n := NewNotifier(nil, withHost, stubSettings{email: true})
	assert.True(t, n.emailEnabled())

	// runtime toggle wins over a configured host
	n = NewNotifier(nil, withHost, stubSettings{email: false})
	assert.False(t, n.emailEnabled())

	// no smtp host disables email regardless of the toggle
	n = NewNotifier(nil, config.SmtpConfig{}, stubSettings{email: true})
	assert.False(t, n.emailEnabled())

	// nil settings falls back to the host check alone
	n = NewNotifier(nil, withHost, nil)
	assert.True(t, n.emailEnabled())
}

func TestNotifierSkipsEmailWhenToggledOff(t *testing.T) {
	n := NewNotifier(nil, config.SmtpConfig{Host: "smtp.example.com"}, stubSettings{email: false})

	// the nil user store would panic if the event got past the toggle
	n.onPriceReached(PriceReachedEvent{ProductID: 1, UserID: 2, Title: "kettle", LowestPrice: 900, MyPrice: 1000})
}
