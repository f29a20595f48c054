package telemetry

import (
	"io"

	"github.com/rs/zerolog"
)

// set of tracked event fields
const (
	fieldID          = "id"
	fieldType        = "type"
	fieldUsername    = "username"
	fieldExecutionID = "execution_id"
	fieldCommand     = "command"
	fieldVersion     = "version"
)

type tracker interface {
	track(e event)
	close()
}

type noopTracker struct{}

func (t noopTracker) track(e event) {}

func (t noopTracker) close() {}

// logTracker writes every event as a JSON line
type logTracker struct {
	logger zerolog.Logger
	closer io.Closer
}

func newLogTracker(w io.Writer) *logTracker {
	t := &logTracker{logger: zerolog.New(w)}
	if closer, ok := w.(io.Closer); ok {
		t.closer = closer
	}
	return t
}

func (t *logTracker) track(e event) {
	log := t.logger.Log().
		Str(fieldID, e.id).
		Str(fieldType, string(e.eventType)).
		Str(fieldUsername, e.username).
		Str(fieldExecutionID, e.executionID).
		Str(fieldCommand, e.command).
		Str(fieldVersion, e.version).
		Time(zerolog.TimestampFieldName, e.time)

	for _, data := range e.data {
		log = log.Interface(string(data.Key), data.Value)
	}
	log.Send()
}

func (t *logTracker) close() {
	if t.closer != nil {
		t.closer.Close()
	}
}
