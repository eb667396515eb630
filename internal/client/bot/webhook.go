// Package bot talks to the external automation webhook that produces the
// assistant's replies.
package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/cleazy-chat/internal/logging"
	"github.com/dmitrijs2005/cleazy-chat/internal/netx"
)

// ErrBotUnavailable covers every way a reply can fail to materialize:
// transport errors, timeouts, non-2xx statuses and unusable bodies.
var ErrBotUnavailable = errors.New("bot unavailable")

// replyFields are the object keys a webhook may put its answer under, in
// lookup order.
var replyFields = []string{"output", "response", "reply", "text", "message"}

type request struct {
	Message string `json:"message"`
}

type WebhookResponder struct {
	url     string
	timeout time.Duration
	client  *http.Client
	log     logging.Logger
}

func NewWebhookResponder(url string, timeout time.Duration, log logging.Logger) *WebhookResponder {
	return &WebhookResponder{
		url:     url,
		timeout: timeout,
		client:  &http.Client{},
		log:     log.With("module", "bot"),
	}
}

// Reply sends text to the webhook and returns the bot's answer.
func (w *WebhookResponder) Reply(ctx context.Context, text string) (string, error) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	started := time.Now()
	body, err := netx.PostJSON(ctx, w.client, w.url, request{Message: text})
	if err != nil {
		w.log.Error(ctx, "webhook call failed", "error", err, "elapsed", time.Since(started))
		return "", fmt.Errorf("%w: %v", ErrBotUnavailable, err)
	}

	reply, ok := extractReply(body)
	if !ok {
		w.log.Error(ctx, "webhook returned an unusable body", "size", len(body))
		return "", fmt.Errorf("%w: unusable response", ErrBotUnavailable)
	}

	w.log.Debug(ctx, "webhook replied", "size", len(reply), "elapsed", time.Since(started))
	return reply, nil
}

func extractReply(body []byte) (string, bool) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", false
	}

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		// not JSON: the body itself is the answer
		return trimmed, true
	}

	switch t := v.(type) {
	case string:
		return nonEmpty(t)
	case map[string]any:
		return fromObject(t)
	case []any:
		if len(t) == 0 {
			return "", false
		}
		if obj, ok := t[0].(map[string]any); ok {
			return fromObject(obj)
		}
	}
	return "", false
}

func fromObject(obj map[string]any) (string, bool) {
	for _, k := range replyFields {
		if s, ok := obj[k].(string); ok {
			if r, ok := nonEmpty(s); ok {
				return r, true
			}
		}
	}
	return "", false
}

func nonEmpty(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}
