package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"studybuddy-web-go/internal/models"
)

// SendMessage posts one chat turn. sessionID is nil for the first message of
// a conversation; the upstream assigns one and returns it on every reply.
func (c *Client) SendMessage(ctx context.Context, auth *Auth, message string, sessionID *string) (models.ChatReply, error) {
	body := struct {
		Message   string  `json:"message"`
		SessionID *string `json:"session_id"`
	}{message, sessionID}
	var reply models.ChatReply
	err := c.do(ctx, http.MethodPost, "/api/chat/message", auth, nil, body, &reply)
	return reply, err
}

func (c *Client) History(ctx context.Context, auth *Auth, limit int) ([]models.ChatExchange, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	var resp struct {
		History []models.ChatExchange `json:"history"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/chat/history", auth, query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}
