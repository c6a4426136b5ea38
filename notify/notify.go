// Package notify defines the anomaly reporting contract consumed by the
// conversion layer. Warnings are non-fatal data anomalies; errors mean
// required data was missing and a fallback value was substituted. Neither
// stops a mapping pass.
package notify

import "github.com/sirupsen/logrus"

// Context carries key/value details about where an anomaly was found.
type Context map[string]string

// Notifier receives data anomalies discovered during a mapping pass.
type Notifier interface {
	Warn(msg string, ctx Context)
	Error(msg string, ctx Context)
}

// Log is a Notifier backed by a logrus logger.
type Log struct {
	Logger logrus.FieldLogger
}

// NewLog returns a Notifier logging to the given logger, or to the logrus
// standard logger when nil.
func NewLog(logger logrus.FieldLogger) *Log {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Log{Logger: logger}
}

func (l *Log) Warn(msg string, ctx Context) {
	l.Logger.WithFields(fields(ctx)).Warn(msg)
}

func (l *Log) Error(msg string, ctx Context) {
	l.Logger.WithFields(fields(ctx)).Error(msg)
}

func fields(ctx Context) logrus.Fields {
	f := make(logrus.Fields, len(ctx))
	for k, v := range ctx {
		f[k] = v
	}
	return f
}

// Event is one captured notification.
type Event struct {
	Level string // warn | error
	Msg   string
	Ctx   Context
}

// Capture records notifications in order of discovery, mainly for tests.
type Capture struct {
	Events []Event
}

func (c *Capture) Warn(msg string, ctx Context) {
	c.Events = append(c.Events, Event{Level: "warn", Msg: msg, Ctx: ctx})
}

func (c *Capture) Error(msg string, ctx Context) {
	c.Events = append(c.Events, Event{Level: "error", Msg: msg, Ctx: ctx})
}

// Warnings returns the messages of all captured warnings.
func (c *Capture) Warnings() []string {
	var msgs []string
	for _, e := range c.Events {
		if e.Level == "warn" {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

// Errors returns the messages of all captured errors.
func (c *Capture) Errors() []string {
	var msgs []string
	for _, e := range c.Events {
		if e.Level == "error" {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) Warn(string, Context)  {}
func (Nop) Error(string, Context) {}
