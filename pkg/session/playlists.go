package session

import (
	"errors"
	"fmt"

	"github.com/sarpt/tube-cli/pkg/state/pkg/playlists"
)

// CreatePlaylist creates an empty playlist under the provided name.
// Names colliding case-insensitively with an existing playlist are rejected.
func (s *Server) CreatePlaylist(name string) Result {
	playlist := playlists.NewPlaylist(playlists.Config{
		Name: name,
	})

	err := s.statesRepository.Playlists().AddPlaylist(playlist)
	if err != nil {
		return resultAlreadyExists("Cannot create playlist: A playlist with the same name already exists.")
	}

	return resultOk(fmt.Sprintf("Successfully created new playlist: %s", name))
}

// AddToPlaylist appends a video to a playlist with the provided name.
// Flagged videos cannot be added; duplicates are rejected.
func (s *Server) AddToPlaylist(name string, videoID string) Result {
	_, err := s.statesRepository.Playlists().ByName(name)
	if err != nil {
		return resultNotFound(fmt.Sprintf("Cannot add video to %s: Playlist does not exist", name))
	}

	video, err := s.statesRepository.Catalog().ByID(videoID)
	if err != nil {
		return resultNotFound(fmt.Sprintf("Cannot add video to %s: Video does not exist", name))
	}

	if video.Flag().Flagged() {
		return resultFlagged(fmt.Sprintf("Cannot add video to %s: Video is currently flagged (reason: %s)", name, video.Flag().Reason()))
	}

	err = s.statesRepository.Playlists().AddEntry(name, videoID)
	if errors.Is(err, playlists.ErrEntryAlreadyInPlaylist) {
		return resultAlreadyExists(fmt.Sprintf("Cannot add video to %s: Video already added", name))
	} else if err != nil {
		return resultNotFound(fmt.Sprintf("Cannot add video to %s: Playlist does not exist", name))
	}

	return resultOk(fmt.Sprintf("Added video to %s: %s", name, video.Title()))
}

// ShowAllPlaylists lists playlist titles ordered case-insensitively.
func (s *Server) ShowAllPlaylists() Result {
	allPlaylists := s.statesRepository.Playlists().All()
	if len(allPlaylists) == 0 {
		return resultOk("No playlists exist yet")
	}

	messages := []string{"Showing all playlists:"}
	for _, playlist := range allPlaylists {
		messages = append(messages, fmt.Sprintf("  %s", playlist.Name()))
	}

	return resultOk(messages...)
}

// ShowPlaylist lists videos of a playlist in their insertion order, annotating flagged ones.
func (s *Server) ShowPlaylist(name string) Result {
	playlist, err := s.statesRepository.Playlists().ByName(name)
	if err != nil {
		return resultNotFound(fmt.Sprintf("Cannot show playlist %s: Playlist does not exist", name))
	}

	messages := []string{fmt.Sprintf("Showing playlist: %s", playlist.Name())}
	if playlist.Length() == 0 {
		messages = append(messages, "  No videos here yet")

		return resultOk(messages...)
	}

	for _, videoID := range playlist.All() {
		video, err := s.statesRepository.Catalog().ByID(videoID)
		if err != nil {
			s.errLog.Printf("video '%s' from playlist '%s' is missing from the catalog: %s\n", videoID, playlist.Name(), err)

			continue
		}

		messages = append(messages, annotatedVideoInfo(video))
	}

	return resultOk(messages...)
}

// RemoveFromPlaylist removes a video from a playlist with the provided name.
func (s *Server) RemoveFromPlaylist(name string, videoID string) Result {
	_, err := s.statesRepository.Playlists().ByName(name)
	if err != nil {
		return resultNotFound(fmt.Sprintf("Cannot remove video from %s: Playlist does not exist", name))
	}

	video, err := s.statesRepository.Catalog().ByID(videoID)
	if err != nil {
		return resultNotFound(fmt.Sprintf("Cannot remove video from %s: Video does not exist", name))
	}

	err = s.statesRepository.Playlists().TakeEntry(name, videoID)
	if errors.Is(err, playlists.ErrEntryNotInPlaylist) {
		return resultNotFound(fmt.Sprintf("Cannot remove video from %s: Video is not in playlist", name))
	} else if err != nil {
		return resultNotFound(fmt.Sprintf("Cannot remove video from %s: Playlist does not exist", name))
	}

	return resultOk(fmt.Sprintf("Removed video from %s: %s", name, video.Title()))
}

// ClearPlaylist removes all videos from a playlist, preserving the playlist itself.
func (s *Server) ClearPlaylist(name string) Result {
	err := s.statesRepository.Playlists().ClearEntries(name)
	if err != nil {
		return resultNotFound(fmt.Sprintf("Cannot clear playlist %s: Playlist does not exist", name))
	}

	return resultOk(fmt.Sprintf("Successfully removed all videos from %s", name))
}

// DeletePlaylist removes a playlist from the store entirely.
func (s *Server) DeletePlaylist(name string) Result {
	_, err := s.statesRepository.Playlists().Take(name)
	if err != nil {
		return resultNotFound(fmt.Sprintf("Cannot delete playlist %s: Playlist does not exist", name))
	}

	return resultOk(fmt.Sprintf("Deleted playlist: %s", name))
}
