package session

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/sarpt/tube-cli/pkg/state"
)

const (
	logPrefix = "session.Server#"
)

// Server is used to hold session state and implement commands issued against it.
type Server struct {
	errLog           *log.Logger
	fsWatcher        *fsnotify.Watcher
	outLog           *log.Logger
	picker           Picker
	statesRepository state.Repository
}

// Config controls behaviour of the session server.
type Config struct {
	ErrWriter io.Writer
	OutWriter io.Writer
	Picker    Picker
}

// NewServer prepares and returns a server that can be used to handle session commands.
func NewServer(cfg Config) (*Server, error) {
	if cfg.OutWriter == nil {
		cfg.OutWriter = os.Stdout
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = os.Stderr
	}

	picker := cfg.Picker
	if picker == nil {
		picker = newDefaultPicker()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not initialize filesystem watcher: %w", err)
	}

	server := &Server{
		errLog:           log.New(cfg.ErrWriter, logPrefix, log.LstdFlags),
		fsWatcher:        watcher,
		outLog:           log.New(cfg.OutWriter, logPrefix, log.LstdFlags),
		picker:           picker,
		statesRepository: state.NewRepository(),
	}

	return server, nil
}

// Close stops watching for library file changes.
func (s *Server) Close() error {
	return s.fsWatcher.Close()
}

// StatesRepository returns the repository of state storages owned by the session.
func (s *Server) StatesRepository() state.Repository {
	return s.statesRepository
}
