package session

import (
	"fmt"
	"strings"

	"github.com/sarpt/tube-cli/pkg/state/pkg/catalog"
)

// Play starts playback of a video with the provided id.
// A video already being played, paused or not, is stopped first.
func (s *Server) Play(videoID string) Result {
	video, err := s.statesRepository.Catalog().ByID(videoID)
	if err != nil {
		return resultNotFound("Cannot play video: Video does not exist")
	}

	if video.Flag().Flagged() {
		return resultFlagged(fmt.Sprintf("Cannot play video: Video is currently flagged (reason: %s)", video.Flag().Reason()))
	}

	messages := []string{}

	playback := s.statesRepository.Playback()
	if playback.Playing() {
		messages = append(messages, s.stoppingNotice())
	}

	playback.SetVideo(video.ID())
	messages = append(messages, fmt.Sprintf("Playing video: %s", video.Title()))

	return resultOk(messages...)
}

// Stop clears the playback state, reporting which video was stopped.
func (s *Server) Stop() Result {
	playback := s.statesRepository.Playback()
	if !playback.Playing() {
		return resultInvalidState("Cannot stop video: No video is currently playing")
	}

	notice := s.stoppingNotice()
	playback.Stop()

	return resultOk(notice)
}

// PlayRandom plays a uniformly selected video among the non-flagged catalog videos.
func (s *Server) PlayRandom() Result {
	eligibleVideos := []catalog.Video{}
	for _, video := range s.statesRepository.Catalog().All() {
		if !video.Flag().Flagged() {
			eligibleVideos = append(eligibleVideos, video)
		}
	}

	if len(eligibleVideos) == 0 {
		return resultNotFound("No videos available")
	}

	pickedVideo := eligibleVideos[s.picker.Intn(len(eligibleVideos))]

	return s.Play(pickedVideo.ID())
}

// Pause pauses the currently played video. Pausing an already paused video reports a notice, not a state change.
func (s *Server) Pause() Result {
	playback := s.statesRepository.Playback()
	if !playback.Playing() {
		return resultInvalidState("Cannot pause video: No video is currently playing")
	}

	title := s.currentVideoTitle()
	if playback.Paused() {
		return resultInvalidState(fmt.Sprintf("Video already paused: %s", title))
	}

	playback.SetPause(true)

	return resultOk(fmt.Sprintf("Pausing video: %s", title))
}

// Continue resumes a paused video. A video that is not paused cannot be continued.
func (s *Server) Continue() Result {
	playback := s.statesRepository.Playback()
	if !playback.Playing() {
		return resultInvalidState("Cannot continue video: No video is currently playing")
	}

	if !playback.Paused() {
		return resultInvalidState("Cannot continue video: Video is not paused")
	}

	playback.SetPause(false)

	return resultOk(fmt.Sprintf("Continuing video: %s", s.currentVideoTitle()))
}

// ShowPlaying reports the currently played video, with a paused marker when paused.
func (s *Server) ShowPlaying() Result {
	playback := s.statesRepository.Playback()
	if !playback.Playing() {
		return resultOk("No video is currently playing")
	}

	videoInfo := s.currentVideoInfo()
	if playback.Paused() {
		videoInfo = videoInfo + " - PAUSED"
	}

	return resultOk(fmt.Sprintf("Currently playing: %s", videoInfo))
}

// ShowAllVideos lists all catalog videos sorted by title, annotating flagged ones.
func (s *Server) ShowAllVideos() Result {
	messages := []string{"Here's a list of all available videos:"}

	for _, video := range s.statesRepository.Catalog().AllSortedByTitle() {
		messages = append(messages, annotatedVideoInfo(video))
	}

	return resultOk(messages...)
}

// NumberOfVideos reports the catalog size.
func (s *Server) NumberOfVideos() Result {
	return resultOk(fmt.Sprintf("%d videos in the library", s.statesRepository.Catalog().Length()))
}

func (s *Server) currentVideoInfo() string {
	video, err := s.statesRepository.Catalog().ByID(s.statesRepository.Playback().VideoID())
	if err != nil {
		s.errLog.Printf("currently played video is missing from the catalog: %s\n", err)

		return ""
	}

	return formattedVideoInfo(video)
}

func (s *Server) currentVideoTitle() string {
	video, err := s.statesRepository.Catalog().ByID(s.statesRepository.Playback().VideoID())
	if err != nil {
		s.errLog.Printf("currently played video is missing from the catalog: %s\n", err)

		return ""
	}

	return video.Title()
}

func (s *Server) stoppingNotice() string {
	return fmt.Sprintf("Stopping video: %s", s.currentVideoTitle())
}

func formattedVideoInfo(video catalog.Video) string {
	return fmt.Sprintf("%s (%s) [%s]", video.Title(), video.ID(), strings.Join(video.Tags(), " "))
}

func annotatedVideoInfo(video catalog.Video) string {
	videoInfo := formattedVideoInfo(video)
	if video.Flag().Flagged() {
		videoInfo = videoInfo + fmt.Sprintf(" - FLAGGED (reason: %s)", video.Flag().Reason())
	}

	return videoInfo
}
