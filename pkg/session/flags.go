package session

import (
	"fmt"

	"github.com/sarpt/tube-cli/pkg/state/pkg/catalog"
)

const defaultFlagReason = "Not supplied"

// FlagVideo marks a video as flagged with the provided reason.
// A currently played video is force-stopped before flagging.
// Flagging does not remove the video from playlists it already belongs to.
func (s *Server) FlagVideo(videoID string, reason string) Result {
	video, err := s.statesRepository.Catalog().ByID(videoID)
	if err != nil {
		return resultNotFound("Cannot flag video: Video does not exist")
	}

	if video.Flag().Flagged() {
		return resultAlreadyExists("Cannot flag video: Video is already flagged")
	}

	messages := []string{}

	playback := s.statesRepository.Playback()
	if playback.Playing() && playback.VideoID() == videoID {
		messages = append(messages, s.stoppingNotice())
		playback.Stop()
	}

	if reason == "" {
		reason = defaultFlagReason
	}

	flaggedVideo, err := s.statesRepository.Catalog().SetFlag(videoID, catalog.FlaggedWith(reason))
	if err != nil {
		return resultAlreadyExists("Cannot flag video: Video is already flagged")
	}

	messages = append(messages, fmt.Sprintf("Successfully flagged video: %s (reason: %s)", flaggedVideo.Title(), flaggedVideo.Flag().Reason()))

	return resultOk(messages...)
}

// AllowVideo removes a flag from a video. Playback is not resumed.
func (s *Server) AllowVideo(videoID string) Result {
	video, err := s.statesRepository.Catalog().ByID(videoID)
	if err != nil {
		return resultNotFound("Cannot remove flag from video: Video does not exist")
	}

	if !video.Flag().Flagged() {
		return resultInvalidState("Cannot remove flag from video: Video is not flagged")
	}

	unflaggedVideo, err := s.statesRepository.Catalog().SetFlag(videoID, catalog.Unflagged())
	if err != nil {
		return resultInvalidState("Cannot remove flag from video: Video is not flagged")
	}

	return resultOk(fmt.Sprintf("Successfully removed flag from video: %s", unflaggedVideo.Title()))
}
