package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var _ Dispatcher = (*WebhookDispatcher)(nil)

// webhookPayload is the JSON body posted to the relay.
type webhookPayload struct {
	To              string `json:"to"`
	ToName          string `json:"toName,omitempty"`
	Subject         string `json:"subject"`
	Body            string `json:"body"`
	Text            string `json:"text"`
	OriginalMessage string `json:"originalMessage,omitempty"`
}

type webhookResponse struct {
	MessageID string `json:"messageId"`
}

// WebhookDispatcher hands replies to an HTTP mail relay.
type WebhookDispatcher struct {
	endpoint   string
	authKey    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewWebhookDispatcher(endpoint, authKey string, timeout time.Duration) *WebhookDispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookDispatcher{
		endpoint: endpoint,
		authKey:  authKey,
		timeout:  timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// withTimeout bounds ctx unless the caller already set a deadline.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func (w *WebhookDispatcher) Send(ctx context.Context, n Notification) error {
	ctx, cancel := withTimeout(ctx, w.timeout)
	defer cancel()

	body, err := json.Marshal(webhookPayload{
		To:              n.To,
		ToName:          n.ToName,
		Subject:         n.Subject,
		Body:            n.Body,
		Text:            n.PlainText(),
		OriginalMessage: n.OriginalMessage,
	})
	if err != nil {
		return dispatchErr("marshal webhook payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return dispatchErr("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	w.authorize(req)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return dispatchErr("webhook request timeout or canceled", err)
		}
		return dispatchErr("webhook request", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return dispatchErr("read webhook response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return dispatchErr("webhook", fmt.Errorf("non-2xx status %d: %s", resp.StatusCode, bytes.TrimSpace(raw)))
	}

	// Relays may answer 204; a body, when present, must carry a message id.
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var parsed webhookResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return dispatchErr("parse webhook response", err)
	}
	if parsed.MessageID == "" {
		return dispatchErr("webhook", errors.New("response missing messageId"))
	}
	return nil
}

// Verify sends a GET to the relay endpoint.
func (w *WebhookDispatcher) Verify(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint, nil)
	if err != nil {
		return dispatchErr("verify: create request", err)
	}
	w.authorize(req)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return dispatchErr("verify", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return dispatchErr("verify", fmt.Errorf("non-2xx status %d", resp.StatusCode))
	}
	return nil
}

func (w *WebhookDispatcher) authorize(req *http.Request) {
	if w.authKey != "" {
		req.Header.Set("X-Auth-Key", w.authKey)
	}
}
