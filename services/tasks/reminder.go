package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"luxesalon/models"
	"luxesalon/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// reminderLead is how long before the appointment start the reminder fires.
const reminderLead = time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues appointment reminders one hour before the
// reservation's start time.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Now    func() time.Time
}

func NewAsynqReminderScheduler(client *asynq.Client) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Client: client, Now: time.Now}
}

// ScheduleReminder enqueues a reminder task for the reservation. Appointments
// starting within the lead window get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, r models.Reservation) error {
	start, err := time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.Time, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse reservation start: %w", err)
	}

	fireAt := start.Add(-reminderLead)
	if !fireAt.After(s.Now()) {
		utils.GetLogger().Debug("skipping reminder inside lead window",
			zap.String("reservationID", r.ID))
		return nil
	}

	payload := models.ReminderPayload{
		ReservationID: r.ID,
		UserID:        r.UserID,
		Date:          r.Date,
		Time:          r.Time,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	utils.GetLogger().Info("reminder scheduled",
		zap.String("reservationID", r.ID),
		zap.Time("fireAt", fireAt))
	return nil
}
