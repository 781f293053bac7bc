package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-app/internal/domain/gateway/session"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

// SessionScheduler periodically drops idle browser sessions
type SessionScheduler struct {
	cron           *cron.Cron
	sessionGateway session.SessionGateway
	cronExpression string
	idle           time.Duration
}

func NewSessionScheduler(sessionGateway session.SessionGateway, cronExpression string, idle time.Duration) *SessionScheduler {
	return &SessionScheduler{
		cron:           cron.New(),
		sessionGateway: sessionGateway,
		cronExpression: cronExpression,
		idle:           idle,
	}
}

// InitSessionScheduleTasks registers the sweep and starts the scheduler
func (scheduler *SessionScheduler) InitSessionScheduleTasks() error {
	if _, err := scheduler.cron.AddFunc(scheduler.cronExpression, scheduler.SweepIdleSessions); err != nil {
		return err
	}

	scheduler.cron.Start()
	return nil
}

func (scheduler *SessionScheduler) SweepIdleSessions() {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("session.sweep-start"), zap.String("request_id", requestID))

	removed, err := scheduler.sessionGateway.Sweep(context.Background(), scheduler.idle)
	if err != nil {
		log.Error(msg.GetMessage("session.sweep-failed", err), zap.String("request_id", requestID))
		return
	}

	log.Info(msg.GetMessage("session.sweep-end", removed),
		zap.String("request_id", requestID),
		zap.String("store", scheduler.sessionGateway.Name()))
}

// Stop gracefully stops the scheduler
func (scheduler *SessionScheduler) Stop() {
	if scheduler.cron != nil {
		ctx := scheduler.cron.Stop()
		<-ctx.Done()
	}
}
