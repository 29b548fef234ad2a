package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"gatherspace/models"
)

const TypeBookingFollowUp = "booking:follow_up"

// NewBookingFollowUpTask builds the follow-up task scheduled after a booking
// request is submitted.
func NewBookingFollowUpTask(payload models.FollowUpPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingFollowUp, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
