package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "dayline-debug.log"

// Global debug logger instance. It discards everything until
// InitDebugLogger enables it.
var (
	debugLog  = newDiscardLogger()
	debugFile *os.File
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = newDiscardLogger()
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugFile = f
	debugLog = newDebugLogger(f)

	debugLog.WithField("log_file", DebugLogPath).Debug("DEBUG_START")
	return nil
}

func newDebugLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "15:04:05.000",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "ts",
			logrus.FieldKeyMsg:  "event",
		},
	})
	return l
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugFile == nil {
		return
	}
	debugLog.Debug("DEBUG_END")
	_ = debugFile.Close()
	debugFile = nil
	debugLog = newDiscardLogger()
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.WithFields(logrus.Fields{
		"key":  msg.String(),
		"type": msg.Type.String(),
	}).Debug("KEY_PRESS")
}

// LogDateSelect logs a change of the selected date.
func LogDateSelect(from, to time.Time, reason string) {
	debugLog.WithFields(logrus.Fields{
		"from":   from.Format("2006-01-02"),
		"to":     to.Format("2006-01-02"),
		"reason": reason,
	}).Debug("DATE_SELECT")
}

// LogBlocksLoaded logs the result of a layout pass.
func LogBlocksLoaded(blocks, columns, gaps int) {
	debugLog.WithFields(logrus.Fields{
		"blocks":  blocks,
		"columns": columns,
		"gaps":    gaps,
	}).Debug("BLOCKS_LOADED")
}

// LogTick logs a clock tick and whether the indicator is drawn.
func LogTick(now time.Time, visible bool, offset float64) {
	debugLog.WithFields(logrus.Fields{
		"now":       now.Format(time.RFC3339),
		"visible":   visible,
		"offset_px": offset,
	}).Debug("TICK")
}

// LogClockStart logs the schedule the clock ticker runs on.
func LogClockStart(spec string) {
	debugLog.WithField("spec", spec).Debug("CLOCK_START")
}

// LogError logs an error.
func LogError(context string, err error) {
	debugLog.WithFields(logrus.Fields{
		"context": context,
	}).WithError(err).Error("ERROR")
}
