package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sarpt/goutils/pkg/listflag"

	"github.com/sarpt/tube-cli/internal/repl"
	"github.com/sarpt/tube-cli/pkg/session"
)

const (
	defaultLibraryPath = "videos.json"

	libraryFlag = "library"
)

var (
	libraries *listflag.StringList
)

func init() {
	libraries = listflag.NewStringList([]string{})

	flag.Var(libraries, libraryFlag, "path to a JSON library file with videos. when left empty, videos.json in the current working directory will be used")

	flag.Parse()
}

func main() {
	server, err := session.NewServer(session.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)

		return
	}
	defer server.Close()

	libraryPaths := libraries.Values()
	if len(libraryPaths) == 0 {
		libraryPaths = []string{defaultLibraryPath}
	}

	err = server.LoadLibraries(libraryPaths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)

		return
	}

	server.WatchForFsChanges()

	fmt.Fprintf(os.Stdout, "library files being watched for changes:\n%s\n", strings.Join(libraryPaths, "\n"))

	replServer := repl.NewServer(repl.Config{
		Session: server,
	})

	err = replServer.Serve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)

		return
	}
}
