package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"net"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

var _ Dispatcher = (*SMTPDispatcher)(nil)

type SMTPConfig struct {
	Addr     string // host:port, STARTTLS is used when offered
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPDispatcher submits replies through an authenticated SMTP relay.
type SMTPDispatcher struct {
	cfg  SMTPConfig
	host string

	// insecure skips STARTTLS; only tests set it.
	insecure bool
	now      func() time.Time
}

func NewSMTPDispatcher(cfg SMTPConfig) (*SMTPDispatcher, error) {
	host, _, err := net.SplitHostPort(cfg.Addr)
	if err != nil {
		return nil, err
	}
	if cfg.From == "" {
		return nil, errors.New("smtp: sender address is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &SMTPDispatcher{cfg: cfg, host: host, now: time.Now}, nil
}

func (d *SMTPDispatcher) Send(ctx context.Context, n Notification) error {
	msg, err := buildMessage(d.cfg.From, n, d.now())
	if err != nil {
		return dispatchErr("build message", err)
	}

	return d.session(ctx, "send", func(c *smtp.Client) error {
		return c.SendMail(d.cfg.From, []string{n.To}, bytes.NewReader(msg))
	})
}

// Verify dials, negotiates TLS, authenticates and quits.
func (d *SMTPDispatcher) Verify(ctx context.Context) error {
	return d.session(ctx, "verify", func(*smtp.Client) error { return nil })
}

// session runs fn on an authenticated client. Dialing honours ctx; the
// SMTP exchange itself is bounded by the client's command timeouts and by
// closing the connection once ctx is done.
func (d *SMTPDispatcher) session(ctx context.Context, op string, fn func(c *smtp.Client) error) error {
	ctx, cancel := withTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	conn, err := (&net.Dialer{Timeout: d.cfg.Timeout}).DialContext(ctx, "tcp", d.cfg.Addr)
	if err != nil {
		return dispatchErr("smtp "+op, err)
	}

	c := smtp.NewClient(conn)
	c.CommandTimeout = d.cfg.Timeout
	c.SubmissionTimeout = d.cfg.Timeout
	defer c.Close()

	done := make(chan error, 1)
	go func() {
		done <- d.exchange(c, fn)
	}()

	select {
	case err := <-done:
		if err != nil {
			return dispatchErr("smtp "+op, err)
		}
		return nil
	case <-ctx.Done():
		// Unblocks the exchange goroutine.
		_ = conn.Close()
		return dispatchErr("smtp "+op, ctx.Err())
	}
}

func (d *SMTPDispatcher) exchange(c *smtp.Client, fn func(c *smtp.Client) error) error {
	if err := c.Hello("localhost"); err != nil {
		return err
	}

	if ok, _ := c.Extension("STARTTLS"); ok && !d.insecure {
		if err := c.StartTLS(&tls.Config{ServerName: d.host}); err != nil {
			return err
		}
	}

	if d.cfg.Username != "" {
		if err := c.Auth(sasl.NewPlainClient("", d.cfg.Username, d.cfg.Password)); err != nil {
			return err
		}
	}

	if err := fn(c); err != nil {
		return err
	}
	return c.Quit()
}
