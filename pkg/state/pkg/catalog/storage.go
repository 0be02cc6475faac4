package catalog

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/sarpt/tube-cli/internal/common"
	"github.com/sarpt/tube-cli/pkg/state/internal/revision"
)

var (
	ErrVideoWithIDDoesNotExist = errors.New("video with provided id does not exist")
	ErrVideoAlreadyFlagged     = errors.New("video is already flagged")
	ErrVideoNotFlagged         = errors.New("video is not flagged")
)

const (
	// AddedVideosChange notifies about addition of videos to the catalog.
	AddedVideosChange common.ChangeVariant = "added"

	// UpdatedVideosChange notifies about videos replaced in the catalog (library file reload).
	UpdatedVideosChange common.ChangeVariant = "updated"

	// RemovedVideosChange notifies about removal of videos from the catalog.
	RemovedVideosChange common.ChangeVariant = "removed"

	// FlagChange notifies about change to the flag state of a video.
	FlagChange common.ChangeVariant = "flagChange"
)

type SubscriberCB = func(change Change)

type catalogChangeSubscriber struct {
	cb SubscriberCB
}

func (s *catalogChangeSubscriber) Receive(change Change) {
	s.cb(change)
}

// Change holds information about changes to the catalog of videos.
type Change struct {
	ChangeVariant common.ChangeVariant
	Items         map[string]Video
}

// MarshalJSON returns change items in JSON format. Satisfies json.Marshaller.
func (c Change) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items)
}

func (c Change) Variant() common.ChangeVariant {
	return c.ChangeVariant
}

// Storage is an aggregate state of the videos known to the session.
// Any modification done on the state should be done by exposed methods which should guarantee goroutine access safety.
type Storage struct {
	broadcaster *common.ChangesBroadcaster[Change]
	items       map[string]Video
	order       []string
	lock        *sync.RWMutex
	revision    *revision.Storage
}

// NewStorage constructs catalog Storage state.
func NewStorage(broadcaster *common.ChangesBroadcaster[Change]) *Storage {
	return &Storage{
		broadcaster: broadcaster,
		items:       map[string]Video{},
		order:       []string{},
		lock:        &sync.RWMutex{},
		revision:    revision.NewStorage(),
	}
}

// Add puts a video into the catalog.
// A video with an id already present replaces the previous entry, keeping its position.
func (c *Storage) Add(video Video) {
	id := video.id

	c.lock.Lock()
	_, replaced := c.items[id]
	if !replaced {
		c.order = append(c.order, id)
	}
	c.items[id] = video
	c.lock.Unlock()

	variant := AddedVideosChange
	if replaced {
		variant = UpdatedVideosChange
	}

	c.revision.Tick()
	c.broadcaster.Send(Change{
		ChangeVariant: variant,
		Items: map[string]Video{
			id: video,
		},
	})
}

// All returns a copy of all videos in the catalog in their insertion order.
func (c *Storage) All() []Video {
	allVideos := []Video{}

	c.lock.RLock()
	defer c.lock.RUnlock()

	for _, id := range c.order {
		allVideos = append(allVideos, c.items[id])
	}

	return allVideos
}

// AllSortedByTitle returns a copy of all videos sorted by their display title.
func (c *Storage) AllSortedByTitle() []Video {
	allVideos := c.All()

	sort.SliceStable(allVideos, func(i, j int) bool {
		return allVideos[i].title < allVideos[j].title
	})

	return allVideos
}

// ByID returns a video with the provided id.
// When the video cannot be found, the error is being reported.
func (c *Storage) ByID(id string) (Video, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	video, ok := c.items[id]
	if !ok {
		return Video{}, ErrVideoWithIDDoesNotExist
	}

	return video, nil
}

// ByTitleMatch returns non-flagged videos whose titles contain the term (case-insensitive), sorted by title.
func (c *Storage) ByTitleMatch(term string) []Video {
	loweredTerm := strings.ToLower(term)

	return c.matching(func(video Video) bool {
		return strings.Contains(strings.ToLower(video.title), loweredTerm)
	})
}

// ByTag returns non-flagged videos carrying the provided tag (case-insensitive exact match), sorted by title.
func (c *Storage) ByTag(tag string) []Video {
	loweredTag := strings.ToLower(tag)

	return c.matching(func(video Video) bool {
		for _, videoTag := range video.tags {
			if strings.ToLower(videoTag) == loweredTag {
				return true
			}
		}

		return false
	})
}

// Length returns the number of videos in the catalog.
func (c *Storage) Length() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return len(c.items)
}

// MarshalJSON satisifes json.Marshaller.
func (c *Storage) MarshalJSON() ([]byte, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return json.Marshal(c.items)
}

func (c *Storage) Revision() revision.Identifier {
	return c.revision.Revision()
}

// SetFlag changes flag state of a video with the provided id.
// Flagging an already flagged video and unflagging a not flagged video are reported as errors.
func (c *Storage) SetFlag(id string, flag FlagState) (Video, error) {
	c.lock.Lock()
	video, ok := c.items[id]
	if !ok {
		c.lock.Unlock()

		return Video{}, ErrVideoWithIDDoesNotExist
	}

	if flag.Flagged() && video.flag.Flagged() {
		c.lock.Unlock()

		return Video{}, ErrVideoAlreadyFlagged
	}

	if !flag.Flagged() && !video.flag.Flagged() {
		c.lock.Unlock()

		return Video{}, ErrVideoNotFlagged
	}

	video.flag = flag
	c.items[id] = video
	c.lock.Unlock()

	c.revision.Tick()
	c.broadcaster.Send(Change{
		ChangeVariant: FlagChange,
		Items: map[string]Video{
			id: video,
		},
	})

	return video, nil
}

// Take removes a video with the provided id from the catalog, returning the removed video.
func (c *Storage) Take(id string) (Video, error) {
	c.lock.Lock()
	video, ok := c.items[id]
	if !ok {
		c.lock.Unlock()

		return Video{}, ErrVideoWithIDDoesNotExist
	}

	delete(c.items, id)
	for idx, orderedID := range c.order {
		if orderedID == id {
			c.order = append(c.order[:idx], c.order[idx+1:]...)

			break
		}
	}
	c.lock.Unlock()

	c.revision.Tick()
	c.broadcaster.Send(Change{
		ChangeVariant: RemovedVideosChange,
		Items: map[string]Video{
			id: video,
		},
	})

	return video, nil
}

func (c *Storage) Subscribe(cb SubscriberCB, onError func(err error)) {
	subscriber := catalogChangeSubscriber{
		cb,
	}

	c.broadcaster.Subscribe(&subscriber)
}

func (c *Storage) matching(predicate func(video Video) bool) []Video {
	matchingVideos := []Video{}

	c.lock.RLock()
	for _, id := range c.order {
		video := c.items[id]
		if video.flag.Flagged() {
			continue
		}

		if predicate(video) {
			matchingVideos = append(matchingVideos, video)
		}
	}
	c.lock.RUnlock()

	sort.SliceStable(matchingVideos, func(i, j int) bool {
		return matchingVideos[i].title < matchingVideos[j].title
	})

	return matchingVideos
}
