package notify

import (
	"bytes"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

const quoteHeader = "--- Original message ---"

// PlainText renders the reply followed by the quoted original message.
func (n Notification) PlainText() string {
	var b strings.Builder

	if n.ToName != "" {
		fmt.Fprintf(&b, "Hi %s,\n\n", n.ToName)
	}
	b.WriteString(strings.TrimSpace(n.Body))
	b.WriteString("\n")

	if orig := strings.TrimSpace(n.OriginalMessage); orig != "" {
		b.WriteString("\n")
		b.WriteString(quoteHeader)
		b.WriteString("\n")
		for _, line := range strings.Split(orig, "\n") {
			b.WriteString("> ")
			b.WriteString(strings.TrimRight(line, "\r"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// buildMessage renders an RFC 5322 message with a quoted-printable body.
func buildMessage(from string, n Notification, now time.Time) ([]byte, error) {
	fromAddr, err := mail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("parse sender: %w", err)
	}
	toAddr, err := mail.ParseAddress(n.To)
	if err != nil {
		return nil, fmt.Errorf("parse recipient: %w", err)
	}
	toAddr.Name = n.ToName

	domain := "localhost"
	if at := strings.LastIndex(fromAddr.Address, "@"); at >= 0 {
		domain = fromAddr.Address[at+1:]
	}

	var buf bytes.Buffer
	header := func(k, v string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", k, v)
	}

	header("From", fromAddr.String())
	header("To", toAddr.String())
	header("Subject", mime.QEncoding.Encode("utf-8", n.Subject))
	header("Date", now.Format(time.RFC1123Z))
	header("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), domain))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/plain; charset="utf-8"`)
	header("Content-Transfer-Encoding", "quoted-printable")
	buf.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&buf)
	body := strings.ReplaceAll(n.PlainText(), "\n", "\r\n")
	if _, err := qp.Write([]byte(body)); err != nil {
		return nil, err
	}
	if err := qp.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
