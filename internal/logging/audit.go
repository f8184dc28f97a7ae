package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// AuditEventType names a structured audit event. Events are written as one
// JSON object per line, so the audit log is greppable and jq-queryable.
type AuditEventType string

const (
	// Enhancement runs
	AuditRunComplete AuditEventType = "run_complete"
	AuditRunError    AuditEventType = "run_error"

	// Batch processing
	AuditBatchComplete AuditEventType = "batch_complete"

	// Profile registry
	AuditProfileReload AuditEventType = "profile_reload"
	AuditProfileSkip   AuditEventType = "profile_skip"

	// Directory watching
	AuditWatcherStart AuditEventType = "watcher_start"
	AuditWatcherStop  AuditEventType = "watcher_stop"
)

// AuditEvent is one structured audit log entry.
type AuditEvent struct {
	Timestamp  int64                  `json:"ts"` // Unix milliseconds
	EventType  AuditEventType         `json:"event"`
	RunID      string                 `json:"run,omitempty"`
	Profile    string                 `json:"profile,omitempty"`
	Seed       uint32                 `json:"seed,omitempty"`
	Intensity  string                 `json:"intensity,omitempty"`
	Target     string                 `json:"target,omitempty"`
	Success    bool                   `json:"success"`
	DurationMs int64                  `json:"dur_ms,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Message    string                 `json:"msg,omitempty"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

var (
	auditFile   *os.File
	auditMu     sync.Mutex
	auditLogger *AuditLogger
)

// AuditLogger writes structured events, optionally scoped to a run ID.
type AuditLogger struct {
	runID string
}

// InitAudit opens the audit log. A no-op unless debug mode is on.
func InitAudit() error {
	if !IsDebugMode() {
		return nil
	}

	auditMu.Lock()
	defer auditMu.Unlock()

	if auditFile != nil {
		return nil
	}

	date := time.Now().Format("2006-01-02")
	auditPath := filepath.Join(logsDir, fmt.Sprintf("%s_audit.log", date))

	file, err := os.OpenFile(auditPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	auditFile = file
	return nil
}

// CloseAudit closes the audit log file.
func CloseAudit() {
	auditMu.Lock()
	defer auditMu.Unlock()

	if auditFile != nil {
		auditFile.Close()
		auditFile = nil
	}
}

// Audit returns the global audit logger.
func Audit() *AuditLogger {
	if auditLogger == nil {
		auditLogger = &AuditLogger{}
	}
	return auditLogger
}

// AuditWithRun creates an audit logger scoped to one enhancement run.
func AuditWithRun(runID string) *AuditLogger {
	return &AuditLogger{runID: runID}
}

// Log writes an audit event. Safe for concurrent use.
func (a *AuditLogger) Log(event AuditEvent) {
	if !IsDebugMode() || auditFile == nil {
		return
	}

	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}
	if event.RunID == "" && a.runID != "" {
		event.RunID = a.runID
	}

	auditMu.Lock()
	defer auditMu.Unlock()

	data, err := json.Marshal(event)
	if err == nil {
		auditFile.WriteString(string(data) + "\n")
	}
}

// RunComplete logs a finished enhancement run.
func (a *AuditLogger) RunComplete(profile string, seed uint32, intensity string, words int, durationMs int64) {
	a.Log(AuditEvent{
		EventType:  AuditRunComplete,
		Profile:    profile,
		Seed:       seed,
		Intensity:  intensity,
		Success:    true,
		DurationMs: durationMs,
		Fields:     map[string]interface{}{"words": words},
		Message:    fmt.Sprintf("Run completed: profile=%s seed=%d intensity=%s words=%d (%dms)", profile, seed, intensity, words, durationMs),
	})
}

// RunError logs a failed enhancement run.
func (a *AuditLogger) RunError(profile string, seed uint32, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	a.Log(AuditEvent{
		EventType: AuditRunError,
		Profile:   profile,
		Seed:      seed,
		Success:   false,
		Error:     errMsg,
		Message:   fmt.Sprintf("Run failed: profile=%s seed=%d: %s", profile, seed, errMsg),
	})
}

// BatchComplete logs a finished batch.
func (a *AuditLogger) BatchComplete(profile string, prompts int, durationMs int64) {
	a.Log(AuditEvent{
		EventType:  AuditBatchComplete,
		Profile:    profile,
		Success:    true,
		DurationMs: durationMs,
		Fields:     map[string]interface{}{"prompts": prompts},
		Message:    fmt.Sprintf("Batch completed: profile=%s prompts=%d (%dms)", profile, prompts, durationMs),
	})
}

// ProfileReload logs a registry reload.
func (a *AuditLogger) ProfileReload(dir string, loaded int) {
	a.Log(AuditEvent{
		EventType: AuditProfileReload,
		Target:    dir,
		Success:   true,
		Fields:    map[string]interface{}{"loaded": loaded},
		Message:   fmt.Sprintf("Profiles reloaded: %d from %s", loaded, dir),
	})
}

// ProfileSkip logs a profile file that failed to load.
func (a *AuditLogger) ProfileSkip(file string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	a.Log(AuditEvent{
		EventType: AuditProfileSkip,
		Target:    file,
		Success:   false,
		Error:     errMsg,
		Message:   fmt.Sprintf("Profile skipped: %s: %s", file, errMsg),
	})
}

// WatcherEvent logs watcher lifecycle transitions.
func (a *AuditLogger) WatcherEvent(eventType AuditEventType, dir string) {
	a.Log(AuditEvent{
		EventType: eventType,
		Target:    dir,
		Success:   true,
		Message:   fmt.Sprintf("Watcher %s: %s", eventType, dir),
	})
}
