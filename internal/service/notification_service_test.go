package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/events"
)

func TestNotificationServiceHandlesEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{
		EmailFrom:  "noreply@jobs.test",
		WebhookURL: "http://hooks.test/jobs",
	})
	svc.RegisterHandlers()

	ctx := context.Background()
	require.NoError(t, dispatcher.Publish(ctx, events.Event{
		ID:      "e1",
		Type:    events.EventApplicationSubmitted,
		Payload: events.ApplicationSubmittedPayload{EmployerID: "emp", JobID: "job"},
	}))
	require.NoError(t, dispatcher.Publish(ctx, events.Event{ID: "e2", Type: events.EventJobPosted}))

	assert.Equal(t, 1, logs.FilterMessage("ApplicationSubmitted").Len())
	email := logs.FilterMessage("sendEmailNotificationStub").All()
	require.Len(t, email, 1)
	assert.Equal(t, "emp", email[0].ContextMap()["employer_id"])
	assert.Equal(t, 1, logs.FilterMessage("JobPosted").Len())
	assert.Equal(t, 2, logs.FilterMessage("sendWebhookNotificationStub").Len())
}

func TestNotificationServiceSkipsUnconfiguredChannels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{}).RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventApplicationSubmitted}))
	assert.Equal(t, 1, logs.Len())
}
