package repl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sarpt/tube-cli/pkg/session"
)

const (
	selectionPromptLine1 = "Would you like to play any of the above? If yes, specify the number of the video."
	selectionPromptLine2 = " If your answer is not a valid number, we will assume it's a no."
)

type commandHandler = func(args []string) session.Result

type command struct {
	minArgs int
	usage   string
	handle  commandHandler
}

func (s *Server) sessionCommands() map[string]command {
	return map[string]command{
		"NUMBER_OF_VIDEOS": {
			usage: "NUMBER_OF_VIDEOS",
			handle: func(args []string) session.Result {
				return s.session.NumberOfVideos()
			},
		},
		"SHOW_ALL_VIDEOS": {
			usage: "SHOW_ALL_VIDEOS",
			handle: func(args []string) session.Result {
				return s.session.ShowAllVideos()
			},
		},
		"PLAY": {
			minArgs: 1,
			usage:   "PLAY <video_id>",
			handle: func(args []string) session.Result {
				return s.session.Play(args[0])
			},
		},
		"PLAY_RANDOM": {
			usage: "PLAY_RANDOM",
			handle: func(args []string) session.Result {
				return s.session.PlayRandom()
			},
		},
		"STOP": {
			usage: "STOP",
			handle: func(args []string) session.Result {
				return s.session.Stop()
			},
		},
		"PAUSE": {
			usage: "PAUSE",
			handle: func(args []string) session.Result {
				return s.session.Pause()
			},
		},
		"CONTINUE": {
			usage: "CONTINUE",
			handle: func(args []string) session.Result {
				return s.session.Continue()
			},
		},
		"SHOW_PLAYING": {
			usage: "SHOW_PLAYING",
			handle: func(args []string) session.Result {
				return s.session.ShowPlaying()
			},
		},
		"CREATE_PLAYLIST": {
			minArgs: 1,
			usage:   "CREATE_PLAYLIST <playlist_name>",
			handle: func(args []string) session.Result {
				return s.session.CreatePlaylist(args[0])
			},
		},
		"ADD_TO_PLAYLIST": {
			minArgs: 2,
			usage:   "ADD_TO_PLAYLIST <playlist_name> <video_id>",
			handle: func(args []string) session.Result {
				return s.session.AddToPlaylist(args[0], args[1])
			},
		},
		"REMOVE_FROM_PLAYLIST": {
			minArgs: 2,
			usage:   "REMOVE_FROM_PLAYLIST <playlist_name> <video_id>",
			handle: func(args []string) session.Result {
				return s.session.RemoveFromPlaylist(args[0], args[1])
			},
		},
		"CLEAR_PLAYLIST": {
			minArgs: 1,
			usage:   "CLEAR_PLAYLIST <playlist_name>",
			handle: func(args []string) session.Result {
				return s.session.ClearPlaylist(args[0])
			},
		},
		"DELETE_PLAYLIST": {
			minArgs: 1,
			usage:   "DELETE_PLAYLIST <playlist_name>",
			handle: func(args []string) session.Result {
				return s.session.DeletePlaylist(args[0])
			},
		},
		"SHOW_PLAYLIST": {
			minArgs: 1,
			usage:   "SHOW_PLAYLIST <playlist_name>",
			handle: func(args []string) session.Result {
				return s.session.ShowPlaylist(args[0])
			},
		},
		"SHOW_ALL_PLAYLISTS": {
			usage: "SHOW_ALL_PLAYLISTS",
			handle: func(args []string) session.Result {
				return s.session.ShowAllPlaylists()
			},
		},
		"SEARCH_VIDEOS": {
			minArgs: 1,
			usage:   "SEARCH_VIDEOS <search_term>",
			handle: func(args []string) session.Result {
				results, result := s.session.SearchVideos(args[0])

				return s.handleSearchResults(results, result)
			},
		},
		"SEARCH_VIDEOS_TAG": {
			minArgs: 1,
			usage:   "SEARCH_VIDEOS_TAG <video_tag>",
			handle: func(args []string) session.Result {
				results, result := s.session.SearchVideosTag(args[0])

				return s.handleSearchResults(results, result)
			},
		},
		"FLAG_VIDEO": {
			minArgs: 1,
			usage:   "FLAG_VIDEO <video_id> [flag_reason]",
			handle: func(args []string) session.Result {
				return s.session.FlagVideo(args[0], strings.Join(args[1:], " "))
			},
		},
		"ALLOW_VIDEO": {
			minArgs: 1,
			usage:   "ALLOW_VIDEO <video_id>",
			handle: func(args []string) session.Result {
				return s.session.AllowVideo(args[0])
			},
		},
		"HELP": {
			usage:  "HELP",
			handle: s.helpHandler,
		},
	}
}

// handleSearchResults runs the one-shot selection step after a non-empty search:
// the listing and the prompt are printed, a single line of input is read and
// interpreted as an optional 1-based index into the results.
func (s *Server) handleSearchResults(results session.SearchResultSet, result session.Result) session.Result {
	s.printResult(result)

	if result.Failed() || results.Empty() {
		return session.Result{Kind: session.ResultOK}
	}

	fmt.Fprintln(s.out, selectionPromptLine1)
	fmt.Fprintln(s.out, selectionPromptLine2)

	if !s.in.Scan() {
		return session.Result{Kind: session.ResultOK}
	}

	return s.session.PlaySelection(results, s.in.Text())
}

func (s *Server) helpHandler(args []string) session.Result {
	usages := []string{}
	for _, command := range s.commands {
		usages = append(usages, fmt.Sprintf("  %s", command.usage))
	}
	usages = append(usages, fmt.Sprintf("  %s", exitCommand))
	sort.Strings(usages)

	messages := append([]string{"Available commands:"}, usages...)

	return session.Result{
		Kind:     session.ResultOK,
		Messages: messages,
	}
}
