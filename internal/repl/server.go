package repl

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sarpt/tube-cli/pkg/session"
	"github.com/sarpt/tube-cli/pkg/state/pkg/catalog"
)

const (
	logPrefix = "repl.Server#"

	prompt = "YT> "
	banner = "Hello and welcome to YouTube, what would you like to do? Enter HELP for list of available commands or EXIT to terminate."

	exitCommand = "EXIT"

	invalidCommandMessage = "Please enter a valid command, type HELP for a list of available commands."
	exitMessage           = "YT has now stopped."
)

// Config controls behaviour of the REPL server.
type Config struct {
	ErrWriter io.Writer
	InReader  io.Reader
	OutWriter io.Writer
	Session   *session.Server
}

// Server is responsible for reading commands line by line, argument parsing and validation.
type Server struct {
	commands map[string]command
	errLog   *log.Logger
	in       *bufio.Scanner
	out      io.Writer
	outLog   *log.Logger
	session  *session.Server
}

// NewServer returns repl.Server instance.
func NewServer(cfg Config) *Server {
	if cfg.InReader == nil {
		cfg.InReader = os.Stdin
	}
	if cfg.OutWriter == nil {
		cfg.OutWriter = os.Stdout
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = os.Stderr
	}

	server := &Server{
		errLog:  log.New(cfg.ErrWriter, logPrefix, log.LstdFlags),
		in:      bufio.NewScanner(cfg.InReader),
		out:     cfg.OutWriter,
		outLog:  log.New(cfg.OutWriter, logPrefix, log.LstdFlags),
		session: cfg.Session,
	}
	server.commands = server.sessionCommands()

	server.session.StatesRepository().Catalog().Subscribe(server.handleCatalogChange, func(err error) {})

	return server
}

// Serve reads and dispatches commands until EXIT or end of input.
func (s *Server) Serve() error {
	fmt.Fprintln(s.out, banner)

	for {
		fmt.Fprint(s.out, prompt)

		if !s.in.Scan() {
			return s.in.Err()
		}

		fields := strings.Fields(s.in.Text())
		if len(fields) == 0 {
			continue
		}

		commandName := strings.ToUpper(fields[0])
		if commandName == exitCommand {
			fmt.Fprintln(s.out, exitMessage)

			return nil
		}

		command, ok := s.commands[commandName]
		if !ok {
			fmt.Fprintln(s.out, invalidCommandMessage)

			continue
		}

		args := fields[1:]
		if len(args) < command.minArgs {
			fmt.Fprintf(s.out, "Incorrect number of arguments, usage: %s\n", command.usage)

			continue
		}

		s.printResult(command.handle(args))
	}
}

func (s *Server) handleCatalogChange(change catalog.Change) {
	if change.ChangeVariant != catalog.UpdatedVideosChange {
		return
	}

	for id := range change.Items {
		s.outLog.Printf("video '%s' updated in the catalog\n", id)
	}
}

func (s *Server) printResult(result session.Result) {
	for _, message := range result.Messages {
		fmt.Fprintln(s.out, message)
	}
}
