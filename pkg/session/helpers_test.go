package session_test

import (
	"io"
	"testing"

	"github.com/sarpt/tube-cli/pkg/session"
	"github.com/sarpt/tube-cli/pkg/state/pkg/catalog"
)

func newTestServer(t *testing.T, picker session.Picker) *session.Server {
	t.Helper()

	server, err := session.NewServer(session.Config{
		ErrWriter: io.Discard,
		OutWriter: io.Discard,
		Picker:    picker,
	})
	if err != nil {
		t.Fatalf("could not create session server: %s", err)
	}

	t.Cleanup(func() {
		server.Close()
	})

	return server
}

func addVideo(server *session.Server, id string, title string, tags ...string) {
	server.StatesRepository().Catalog().Add(catalog.NewVideo(catalog.Config{
		ID:    id,
		Title: title,
		Tags:  tags,
		Flag:  catalog.Unflagged(),
	}))
}

func addFlaggedVideo(server *session.Server, id string, title string, reason string) {
	server.StatesRepository().Catalog().Add(catalog.NewVideo(catalog.Config{
		ID:    id,
		Title: title,
		Flag:  catalog.FlaggedWith(reason),
	}))
}

func expectMessages(t *testing.T, result session.Result, expected ...string) {
	t.Helper()

	if len(result.Messages) != len(expected) {
		t.Fatalf("Expected %d messages, got %d: %v", len(expected), len(result.Messages), result.Messages)
	}

	for idx, message := range expected {
		if result.Messages[idx] != message {
			t.Errorf("Expected message %d to equal '%s', got '%s'", idx, message, result.Messages[idx])
		}
	}
}

func expectKind(t *testing.T, result session.Result, kind session.ResultKind) {
	t.Helper()

	if result.Kind != kind {
		t.Errorf("Expected result kind %s, got %s", kind, result.Kind)
	}
}
