package api

import (
	"context"
	"net/http"

	"studybuddy-web-go/internal/models"
)

type NoteInput struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
	Content string `json:"content"`
}

type ScheduleInput struct {
	Subject         string  `json:"subject"`
	Topic           string  `json:"topic"`
	ScheduledDate   string  `json:"scheduled_date"`
	ScheduledTime   string  `json:"scheduled_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Notes           *string `json:"notes"`
}

type ReminderInput struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	ReminderDate string  `json:"reminder_date"`
	ReminderTime string  `json:"reminder_time"`
}

func (c *Client) Notes(ctx context.Context, auth *Auth) ([]models.Note, error) {
	var resp struct {
		Notes []models.Note `json:"notes"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/chat/notes", auth, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

func (c *Client) CreateNote(ctx context.Context, auth *Auth, input NoteInput) error {
	return c.do(ctx, http.MethodPost, "/api/chat/notes", auth, nil, input, nil)
}

func (c *Client) Schedules(ctx context.Context, auth *Auth) ([]models.Schedule, error) {
	var resp struct {
		Schedules []models.Schedule `json:"schedules"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/chat/schedule", auth, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Schedules, nil
}

func (c *Client) CreateSchedule(ctx context.Context, auth *Auth, input ScheduleInput) error {
	return c.do(ctx, http.MethodPost, "/api/chat/schedule", auth, nil, input, nil)
}

func (c *Client) Reminders(ctx context.Context, auth *Auth) ([]models.Reminder, error) {
	var resp struct {
		Reminders []models.Reminder `json:"reminders"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/chat/reminders", auth, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reminders, nil
}

func (c *Client) CreateReminder(ctx context.Context, auth *Auth, input ReminderInput) error {
	return c.do(ctx, http.MethodPost, "/api/chat/reminders", auth, nil, input, nil)
}
