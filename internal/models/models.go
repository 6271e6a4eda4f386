package models

// User is the session user as returned by the upstream auth endpoints.
type User struct {
	ID         int     `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	GradeLevel *string `json:"grade_level"`
}

// FullName is the display name shown in the app header.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ChatExchange is one history entry: a user message and the assistant's reply.
type ChatExchange struct {
	Message   string `json:"message"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// ChatReply is the upstream response to a sent message. The upstream also
// returns intent/subject/confidence metadata; those fields are ignored here.
type ChatReply struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

type Note struct {
	ID        int    `json:"id"`
	Subject   string `json:"subject"`
	Topic     string `json:"topic"`
	Content   string `json:"note_content"`
	CreatedAt string `json:"created_at"`
}

type Schedule struct {
	ID              int     `json:"id"`
	Subject         string  `json:"subject"`
	Topic           string  `json:"topic"`
	ScheduledDate   string  `json:"scheduled_date"`
	ScheduledTime   string  `json:"scheduled_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`
}

type Reminder struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	ReminderDate string  `json:"reminder_date"`
	ReminderTime string  `json:"reminder_time"`
	IsCompleted  bool    `json:"is_completed"`
}
