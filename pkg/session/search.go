package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarpt/tube-cli/pkg/state/pkg/catalog"
)

// SearchResultSet holds an ordered list of videos matching a search query.
// It is numbered 1..N for the immediately following selection step and is not retained by the session.
type SearchResultSet struct {
	Query  string
	Videos []catalog.Video
}

func (r SearchResultSet) Empty() bool {
	return len(r.Videos) == 0
}

// SearchVideos lists non-flagged videos whose titles contain the term, sorted by title.
func (s *Server) SearchVideos(term string) (SearchResultSet, Result) {
	return searchResults(term, s.statesRepository.Catalog().ByTitleMatch(term))
}

// SearchVideosTag lists non-flagged videos carrying the provided tag, sorted by title.
func (s *Server) SearchVideosTag(tag string) (SearchResultSet, Result) {
	return searchResults(tag, s.statesRepository.Catalog().ByTag(tag))
}

// PlaySelection interprets a line of input as a 1-based index into the result set and plays the selected video.
// Input that is not an integer within range is treated as no selection and silently ignored.
func (s *Server) PlaySelection(results SearchResultSet, input string) Result {
	selection, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return resultOk()
	}

	if selection < 1 || selection > len(results.Videos) {
		return resultOk()
	}

	return s.Play(results.Videos[selection-1].ID())
}

func searchResults(query string, matchingVideos []catalog.Video) (SearchResultSet, Result) {
	results := SearchResultSet{
		Query:  query,
		Videos: matchingVideos,
	}

	if results.Empty() {
		return results, resultNotFound(fmt.Sprintf("No search results for %s", query))
	}

	messages := []string{fmt.Sprintf("Here are the results for %s:", query)}
	for number, video := range results.Videos {
		messages = append(messages, fmt.Sprintf("%d) %s", number+1, formattedVideoInfo(video)))
	}

	return results, resultOk(messages...)
}
