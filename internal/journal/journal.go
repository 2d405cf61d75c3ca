// Package journal is the fallback record for contact submissions accepted
// while the durable store is unreachable.
//
// Entries are appended as JSON lines to a lumberjack-managed file. Seal
// moves the live file to a uniquely named segment which the reconciler
// replays into the store and then removes. Segments are never deleted by
// lumberjack itself (no MaxBackups/MaxAge).
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	entryMessage = "contact_submission"

	segmentTimeFormat = "2006-01-02T15-04-05.000"
)

// Entry is one journaled submission.
type Entry struct {
	ID         string    `json:"entryId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	IPAddress  string    `json:"ipAddress"`
	UserAgent  string    `json:"userAgent"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// EntryFrom builds a journal entry from a contact that could not be stored.
func EntryFrom(c *contact.Contact) Entry {
	return Entry{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Message:    c.Message,
		IPAddress:  c.IPAddress,
		UserAgent:  c.UserAgent,
		ReceivedAt: c.CreatedAt,
	}
}

// Contact rebuilds the contact the entry was taken from, in status "new".
func (e Entry) Contact() *contact.Contact {
	return &contact.Contact{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Message:   e.Message,
		IPAddress: e.IPAddress,
		UserAgent: e.UserAgent,
		Status:    contact.StatusNew,
		CreatedAt: e.ReceivedAt,
	}
}

type Journal struct {
	mu   sync.Mutex
	path string
	out  *lumberjack.Logger
	core zapcore.Core
	seq  int
}

// Open prepares a journal writing to path. The file is created lazily on
// the first Append.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	out := &lumberjack.Logger{
		Filename: path,
		MaxSize:  100,
	}

	// The submission's own "message" field must not collide with zap's keys.
	enc := logger.EncoderConfig()
	enc.MessageKey = "event"
	enc.TimeKey = "loggedAt"
	enc.LevelKey = zapcore.OmitKey
	enc.CallerKey = zapcore.OmitKey
	enc.StacktraceKey = zapcore.OmitKey

	return &Journal{
		path: path,
		out:  out,
		core: zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(out), zapcore.InfoLevel),
	}, nil
}

// Path is the live journal file.
func (j *Journal) Path() string {
	return j.path
}

// Append writes e and syncs the file. The write error is returned so the
// caller can account for a submission that reached no durable medium.
func (j *Journal) Append(e Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	fields := []zap.Field{
		zap.String("entryId", e.ID),
		zap.String("name", e.Name),
		zap.String("email", e.Email),
		zap.String("message", e.Message),
		zap.String("ipAddress", e.IPAddress),
		zap.String("userAgent", e.UserAgent),
		zap.String("receivedAt", e.ReceivedAt.UTC().Format(time.RFC3339Nano)),
	}

	entry := zapcore.Entry{
		Level:   zapcore.InfoLevel,
		Time:    time.Now(),
		Message: entryMessage,
	}

	if err := j.core.Write(entry, fields); err != nil {
		return fmt.Errorf("write journal entry: %w", err)
	}
	return j.core.Sync()
}

// Seal moves a non-empty live file into a new segment. The next Append
// starts a fresh live file.
func (j *Journal) Seal() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	info, err := os.Stat(j.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}

	if err := j.out.Close(); err != nil {
		return fmt.Errorf("close journal: %w", err)
	}

	segment, err := j.nextSegment(time.Now().UTC())
	if err != nil {
		return err
	}
	if err := os.Rename(j.path, segment); err != nil {
		return fmt.Errorf("seal journal: %w", err)
	}
	return nil
}

// nextSegment returns an unused segment path. The sequence number keeps
// names unique and ordered when seals share a timestamp.
func (j *Journal) nextSegment(now time.Time) (string, error) {
	ext := filepath.Ext(j.path)
	prefix := strings.TrimSuffix(j.path, ext)
	stamp := now.Format(segmentTimeFormat)

	for {
		j.seq++
		name := fmt.Sprintf("%s-%s-%04d%s", prefix, stamp, j.seq, ext)

		_, err := os.Stat(name)
		if os.IsNotExist(err) {
			return name, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// Segments lists sealed segment files, oldest first.
func (j *Journal) Segments() ([]string, error) {
	ext := filepath.Ext(j.path)
	prefix := strings.TrimSuffix(filepath.Base(j.path), ext)

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(j.path), prefix+"-*"+ext))
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}

// Read parses a segment. Lines that are not journal entries are skipped and
// counted.
func (j *Journal) Read(path string) ([]Entry, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var (
		entries []Entry
		skipped int
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil || e.ID == "" {
			skipped++
			continue
		}
		entries = append(entries, e)
	}

	return entries, skipped, scanner.Err()
}

// Remove deletes a fully replayed segment.
func (j *Journal) Remove(path string) error {
	return os.Remove(path)
}

func (j *Journal) Close() error {
	return j.out.Close()
}
