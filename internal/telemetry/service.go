package telemetry

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventsFile is the file events are appended to in ModeOn, relative to the profile directory
const EventsFile = "telemetry.log"

// Service tracks telemetry events
type Service interface {
	TrackEvent(eventType EventType, data ...EventData)
	Close()
}

// Config is the telemetry service configuration
type Config struct {
	Mode     Mode
	Username string
	Command  string
	Version  string

	Fs     afero.Fs
	Dir    string
	Stdout io.Writer
}

type service struct {
	config      Config
	executionID string
	tracker     tracker
	now         func() time.Time
}

// NewService creates a new telemetry service.
// A file which cannot be opened for ModeOn disables tracking.
func NewService(config Config) Service {
	s := &service{
		config:      config,
		executionID: primitive.NewObjectID().Hex(),
		tracker:     noopTracker{},
		now:         time.Now,
	}

	switch config.Mode {
	case ModeOn:
		if err := config.Fs.MkdirAll(config.Dir, 0700); err != nil {
			break
		}
		f, err := config.Fs.OpenFile(filepath.Join(config.Dir, EventsFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			break
		}
		s.tracker = newLogTracker(f)
	case ModeStdout:
		s.tracker = newLogTracker(nopCloser{config.Stdout})
	}

	return s
}

func (s *service) TrackEvent(eventType EventType, data ...EventData) {
	s.tracker.track(event{
		id:          primitive.NewObjectID().Hex(),
		eventType:   eventType,
		username:    s.config.Username,
		time:        s.now(),
		executionID: s.executionID,
		command:     s.config.Command,
		version:     s.config.Version,
		data:        data,
	})
}

func (s *service) Close() {
	s.tracker.close()
}

// nopCloser keeps the tracker from closing the CLI output
type nopCloser struct {
	io.Writer
}
