package web

import (
	"net/http"
	"strconv"
	"strings"
)

// Form structs carry presence-only validation; anything past that is left to
// the upstream, matching the native-constraints-only contract of the UI.

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type registerForm struct {
	Username   string `validate:"required"`
	Email      string `validate:"required"`
	Password   string `validate:"required"`
	FirstName  string `validate:"required"`
	LastName   string `validate:"required"`
	GradeLevel string
}

type noteForm struct {
	Subject string `validate:"required"`
	Topic   string `validate:"required"`
	Content string `validate:"required"`
}

type scheduleForm struct {
	Subject  string `validate:"required"`
	Topic    string `validate:"required"`
	Date     string `validate:"required"`
	Time     string `validate:"required"`
	Duration int
	Notes    string
}

type reminderForm struct {
	Title       string `validate:"required"`
	Description string
	Date        string `validate:"required"`
	Time        string `validate:"required"`
}

func formValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

func formInt(r *http.Request, name string, fallback int) int {
	parsed, err := strconv.Atoi(formValue(r, name))
	if err != nil {
		return fallback
	}
	return parsed
}

// optional maps a blank form value to null on the wire.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
