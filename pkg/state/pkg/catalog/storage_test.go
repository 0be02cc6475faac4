package catalog_test

import (
	"errors"
	"testing"

	"github.com/sarpt/tube-cli/internal/common"
	"github.com/sarpt/tube-cli/pkg/state/pkg/catalog"
)

func newStorage() *catalog.Storage {
	broadcaster := common.NewChangesBroadcaster[catalog.Change]()
	broadcaster.Broadcast()

	return catalog.NewStorage(broadcaster)
}

func addVideo(storage *catalog.Storage, id string, title string, flag catalog.FlagState, tags ...string) {
	storage.Add(catalog.NewVideo(catalog.Config{
		ID:    id,
		Title: title,
		Tags:  tags,
		Flag:  flag,
	}))
}

func TestByID_MissingVideoReported(t *testing.T) {
	// given
	uut := newStorage()

	// when
	_, err := uut.ByID("missing_id")

	// then
	if !errors.Is(err, catalog.ErrVideoWithIDDoesNotExist) {
		t.Errorf("Expected ErrVideoWithIDDoesNotExist, got %v", err)
	}
}

func TestAll_KeepsInsertionOrder(t *testing.T) {
	// given
	uut := newStorage()
	addVideo(uut, "funny_dogs_video_id", "Funny Dogs", catalog.Unflagged())
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", catalog.Unflagged())

	// when
	allVideos := uut.All()

	// then
	if len(allVideos) != 2 {
		t.Fatalf("Expected 2 videos, got %d", len(allVideos))
	}

	if allVideos[0].ID() != "funny_dogs_video_id" || allVideos[1].ID() != "amazing_cats_video_id" {
		t.Errorf("Expected videos in insertion order, got %s, %s", allVideos[0].ID(), allVideos[1].ID())
	}
}

func TestAdd_ReplacesByIDKeepingPosition(t *testing.T) {
	// given
	uut := newStorage()
	addVideo(uut, "funny_dogs_video_id", "Funny Dogs", catalog.Unflagged())
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", catalog.Unflagged())

	// when
	addVideo(uut, "funny_dogs_video_id", "Funny Dogs Remastered", catalog.Unflagged())

	// then
	allVideos := uut.All()
	if len(allVideos) != 2 {
		t.Fatalf("Expected 2 videos after replacement, got %d", len(allVideos))
	}

	if allVideos[0].Title() != "Funny Dogs Remastered" {
		t.Errorf("Expected replaced video to keep its position, got '%s' first", allVideos[0].Title())
	}
}

func TestByTitleMatch_CaseInsensitiveExcludingFlagged(t *testing.T) {
	// given
	uut := newStorage()
	addVideo(uut, "funny_cats_video_id", "Funny Cats", catalog.Unflagged())
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", catalog.Unflagged())
	addVideo(uut, "another_cat_video_id", "Another Cat Video", catalog.FlaggedWith("dont_like_cats"))
	addVideo(uut, "funny_dogs_video_id", "Funny Dogs", catalog.Unflagged())

	// when
	matches := uut.ByTitleMatch("CAT")

	// then
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}

	// matches are sorted by display title
	if matches[0].ID() != "amazing_cats_video_id" || matches[1].ID() != "funny_cats_video_id" {
		t.Errorf("Expected matches sorted by title, got %s, %s", matches[0].ID(), matches[1].ID())
	}
}

func TestByTag_ExactMatchOnly(t *testing.T) {
	// given
	uut := newStorage()
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", catalog.Unflagged(), "#cat", "#animal")
	addVideo(uut, "funny_dogs_video_id", "Funny Dogs", catalog.Unflagged(), "#dog", "#animal")

	// when
	animalMatches := uut.ByTag("#Animal")
	partialMatches := uut.ByTag("#ani")

	// then
	if len(animalMatches) != 2 {
		t.Errorf("Expected 2 matches for #Animal, got %d", len(animalMatches))
	}

	if len(partialMatches) != 0 {
		t.Errorf("Expected no matches for a partial tag, got %d", len(partialMatches))
	}
}

func TestSetFlag_Transitions(t *testing.T) {
	// given
	uut := newStorage()
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", catalog.Unflagged())

	// when
	flaggedVideo, err := uut.SetFlag("amazing_cats_video_id", catalog.FlaggedWith("dont_like_cats"))

	// then
	if err != nil {
		t.Fatalf("Unexpected error flagging video: %s", err)
	}

	if !flaggedVideo.Flag().Flagged() || flaggedVideo.Flag().Reason() != "dont_like_cats" {
		t.Errorf("Expected video to be flagged with reason dont_like_cats")
	}

	_, err = uut.SetFlag("amazing_cats_video_id", catalog.FlaggedWith("again"))
	if !errors.Is(err, catalog.ErrVideoAlreadyFlagged) {
		t.Errorf("Expected ErrVideoAlreadyFlagged, got %v", err)
	}

	_, err = uut.SetFlag("amazing_cats_video_id", catalog.Unflagged())
	if err != nil {
		t.Fatalf("Unexpected error unflagging video: %s", err)
	}

	_, err = uut.SetFlag("amazing_cats_video_id", catalog.Unflagged())
	if !errors.Is(err, catalog.ErrVideoNotFlagged) {
		t.Errorf("Expected ErrVideoNotFlagged, got %v", err)
	}

	_, err = uut.SetFlag("missing_id", catalog.FlaggedWith("whatever"))
	if !errors.Is(err, catalog.ErrVideoWithIDDoesNotExist) {
		t.Errorf("Expected ErrVideoWithIDDoesNotExist, got %v", err)
	}
}

func TestTake_RemovesVideo(t *testing.T) {
	// given
	uut := newStorage()
	addVideo(uut, "amazing_cats_video_id", "Amazing Cats", catalog.Unflagged())

	// when
	takenVideo, err := uut.Take("amazing_cats_video_id")

	// then
	if err != nil {
		t.Fatalf("Unexpected error taking video: %s", err)
	}

	if takenVideo.ID() != "amazing_cats_video_id" {
		t.Errorf("Expected taken video id to equal amazing_cats_video_id, got %s", takenVideo.ID())
	}

	if uut.Length() != 0 {
		t.Errorf("Expected empty catalog after take, got %d videos", uut.Length())
	}
}
