package session_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/sarpt/tube-cli/internal/mocks"
	"github.com/sarpt/tube-cli/pkg/session"
)

func TestPlay_VideoDoesNotExist(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")

	// when
	result := uut.Play("missing_id")

	// then
	expectKind(t, result, session.ResultNotFound)
	expectMessages(t, result, "Cannot play video: Video does not exist")

	if uut.StatesRepository().Playback().Playing() {
		t.Errorf("Expected playback to stay stopped after playing a missing video")
	}
}

func TestPlay_FlaggedVideoDoesNotChangeState(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addFlaggedVideo(uut, "amazing_cats_video_id", "Amazing Cats", "dont_like_cats")

	// when
	result := uut.Play("amazing_cats_video_id")

	// then
	expectKind(t, result, session.ResultFlagged)
	expectMessages(t, result, "Cannot play video: Video is currently flagged (reason: dont_like_cats)")

	if uut.StatesRepository().Playback().Playing() {
		t.Errorf("Expected playback to stay stopped after playing a flagged video")
	}
}

func TestPlay_StopsPreviousVideo(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")
	addVideo(uut, "funny_dogs_video_id", "Funny Dogs", "#dog", "#animal")

	uut.Play("amazing_cats_video_id")

	// when
	result := uut.Play("funny_dogs_video_id")

	// then
	expectKind(t, result, session.ResultOK)
	expectMessages(t, result, "Stopping video: Amazing Cats", "Playing video: Funny Dogs")

	videoID := uut.StatesRepository().Playback().VideoID()
	if videoID != "funny_dogs_video_id" {
		t.Errorf("Expected playback video id to equal funny_dogs_video_id, got %s", videoID)
	}
}

func TestPlay_SameVideoRestartsPlayback(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")

	uut.Play("amazing_cats_video_id")

	// when
	result := uut.Play("amazing_cats_video_id")

	// then
	expectMessages(t, result, "Stopping video: Amazing Cats", "Playing video: Amazing Cats")
}

func TestPlay_ResetsPausedState(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")
	addVideo(uut, "funny_dogs_video_id", "Funny Dogs", "#dog", "#animal")

	uut.Play("amazing_cats_video_id")
	uut.Pause()

	// when
	uut.Play("funny_dogs_video_id")

	// then
	if uut.StatesRepository().Playback().Paused() {
		t.Errorf("Expected playback to not be paused after playing a new video")
	}
}

func TestStop_NothingPlaying(t *testing.T) {
	// given
	uut := newTestServer(t, nil)

	// when
	result := uut.Stop()

	// then
	expectKind(t, result, session.ResultInvalidState)
	expectMessages(t, result, "Cannot stop video: No video is currently playing")
}

func TestStop_ClearsPlayback(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")

	uut.Play("amazing_cats_video_id")

	// when
	result := uut.Stop()

	// then
	expectKind(t, result, session.ResultOK)
	expectMessages(t, result, "Stopping video: Amazing Cats")

	playback := uut.StatesRepository().Playback()
	if playback.Playing() {
		t.Errorf("Expected playback to be stopped")
	}

	if playback.VideoID() != "" {
		t.Errorf("Expected no dangling video id after stop, got %s", playback.VideoID())
	}
}

func TestPlayRandom_NoVideosAvailable(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addFlaggedVideo(uut, "amazing_cats_video_id", "Amazing Cats", "dont_like_cats")

	// when
	result := uut.PlayRandom()

	// then
	expectKind(t, result, session.ResultNotFound)
	expectMessages(t, result, "No videos available")
}

func TestPlayRandom_PicksAmongNonFlaggedVideos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// given
	picker := mocks.NewMockPicker(ctrl)
	picker.
		EXPECT().
		Intn(2).
		Return(1).
		Times(1)

	uut := newTestServer(t, picker)
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")
	addFlaggedVideo(uut, "another_cat_video_id", "Another Cat Video", "dont_like_cats")
	addVideo(uut, "funny_dogs_video_id", "Funny Dogs", "#dog", "#animal")

	// when
	result := uut.PlayRandom()

	// then
	expectKind(t, result, session.ResultOK)
	expectMessages(t, result, "Playing video: Funny Dogs")
}

func TestPause_NothingPlaying(t *testing.T) {
	// given
	uut := newTestServer(t, nil)

	// when
	result := uut.Pause()

	// then
	expectKind(t, result, session.ResultInvalidState)
	expectMessages(t, result, "Cannot pause video: No video is currently playing")
}

func TestPause_Idempotent(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")

	uut.Play("amazing_cats_video_id")

	// when
	firstResult := uut.Pause()

	// then
	expectKind(t, firstResult, session.ResultOK)
	expectMessages(t, firstResult, "Pausing video: Amazing Cats")

	// repeated pauses report a notice and leave the state untouched
	for i := 0; i < 3; i++ {
		result := uut.Pause()

		expectKind(t, result, session.ResultInvalidState)
		expectMessages(t, result, "Video already paused: Amazing Cats")

		if !uut.StatesRepository().Playback().Paused() {
			t.Fatalf("Expected playback to stay paused after pause call %d", i+2)
		}
	}
}

func TestContinue_NothingPlaying(t *testing.T) {
	// given
	uut := newTestServer(t, nil)

	// when
	result := uut.Continue()

	// then
	expectKind(t, result, session.ResultInvalidState)
	expectMessages(t, result, "Cannot continue video: No video is currently playing")
}

func TestContinue_NotPaused(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")

	uut.Play("amazing_cats_video_id")

	// when
	result := uut.Continue()

	// then
	expectKind(t, result, session.ResultInvalidState)
	expectMessages(t, result, "Cannot continue video: Video is not paused")
}

func TestContinue_ResumesPausedVideo(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")

	uut.Play("amazing_cats_video_id")
	uut.Pause()

	// when
	result := uut.Continue()

	// then
	expectKind(t, result, session.ResultOK)
	expectMessages(t, result, "Continuing video: Amazing Cats")

	if uut.StatesRepository().Playback().Paused() {
		t.Errorf("Expected playback to not be paused after continue")
	}
}

func TestShowPlaying_NothingPlaying(t *testing.T) {
	// given
	uut := newTestServer(t, nil)

	// when
	result := uut.ShowPlaying()

	// then
	expectKind(t, result, session.ResultOK)
	expectMessages(t, result, "No video is currently playing")
}

func TestShowPlaying_WithPausedMarker(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")

	uut.Play("amazing_cats_video_id")

	// when
	playingResult := uut.ShowPlaying()

	uut.Pause()
	pausedResult := uut.ShowPlaying()

	// then
	expectMessages(t, playingResult, "Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #animal]")
	expectMessages(t, pausedResult, "Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #animal] - PAUSED")
}

func TestShowAllVideos_SortedByTitleWithFlagAnnotation(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addVideo(uut, "funny_dogs_video_id", "Funny Dogs", "#dog", "#animal")
	addFlaggedVideo(uut, "amazing_cats_video_id", "Amazing Cats", "dont_like_cats")

	// when
	result := uut.ShowAllVideos()

	// then
	expectMessages(t, result,
		"Here's a list of all available videos:",
		"Amazing Cats (amazing_cats_video_id) [] - FLAGGED (reason: dont_like_cats)",
		"Funny Dogs (funny_dogs_video_id) [#dog #animal]",
	)
}

func TestNumberOfVideos(t *testing.T) {
	// given
	uut := newTestServer(t, nil)
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")
	addVideo(uut, "funny_dogs_video_id", "Funny Dogs", "#dog", "#animal")

	// when
	result := uut.NumberOfVideos()

	// then
	expectMessages(t, result, "2 videos in the library")
}
