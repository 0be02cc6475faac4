package playback

import (
	"encoding/json"

	"github.com/sarpt/tube-cli/internal/common"
	"github.com/sarpt/tube-cli/pkg/state/internal/revision"
)

type SubscriberCB = func(change Change)

type storageChangeSubscriber struct {
	cb SubscriberCB
}

func (s *storageChangeSubscriber) Receive(change Change) {
	s.cb(change)
}

const (
	// VideoChange notifies about change of currently played video.
	VideoChange common.ChangeVariant = "videoChange"

	// PauseChange notifies about change to the playback pause state.
	PauseChange common.ChangeVariant = "pauseChange"

	// PlaybackStoppedChange notifies about playback being stopped completely.
	PlaybackStoppedChange common.ChangeVariant = "playbackStoppedChange"
)

// Change is used to inform about changes to the Playback.
type Change struct {
	ChangeVariant common.ChangeVariant
	Value         interface{}
}

// MarshalJSON returns change items in JSON format. Satisfies json.Marshaller.
func (d Change) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value)
}

func (d Change) Variant() common.ChangeVariant {
	return d.ChangeVariant
}

// Storage contains information about the at most one currently played video.
// The paused flag is meaningful only when playback is not stopped.
type Storage struct {
	broadcaster *common.ChangesBroadcaster[Change]
	paused      bool
	revision    *revision.Storage
	videoID     string
	Stopped     bool
}

type storageJSON struct {
	Paused  bool   `json:"Paused"`
	Stopped bool   `json:"Stopped"`
	VideoID string `json:"VideoId"`
}

// NewStorage constructs Playback state.
func NewStorage(broadcaster *common.ChangesBroadcaster[Change]) *Storage {
	return &Storage{
		broadcaster: broadcaster,
		revision:    revision.NewStorage(),
		Stopped:     true,
	}
}

// MarshalJSON satisifes json.Marshaller.
func (p *Storage) MarshalJSON() ([]byte, error) {
	pJSON := storageJSON{
		Paused:  p.paused,
		Stopped: p.Stopped,
		VideoID: p.videoID,
	}

	return json.Marshal(pJSON)
}

func (p *Storage) Paused() bool {
	return p.paused
}

// Playing informs whether any video is set as the played one, paused or not.
func (p *Storage) Playing() bool {
	return !p.Stopped
}

func (p *Storage) Revision() revision.Identifier {
	return p.revision.Revision()
}

// SetVideo changes currently played video, changing playback to not stopped and not paused.
func (p *Storage) SetVideo(videoID string) {
	p.videoID = videoID
	p.paused = false
	p.Stopped = false

	p.revision.Tick()
	p.broadcaster.Send(Change{
		ChangeVariant: VideoChange,
		Value:         videoID,
	})
}

// SetPause changes whether playback of the current video should be paused.
func (p *Storage) SetPause(paused bool) {
	p.paused = paused

	p.revision.Tick()
	p.broadcaster.Send(Change{
		ChangeVariant: PauseChange,
		Value:         paused,
	})
}

// Stop clears playback information related to the played video and sets playback to stopped.
func (p *Storage) Stop() {
	revision := p.revision
	revision.Tick()

	*p = Storage{
		broadcaster: p.broadcaster,
		revision:    revision,
		Stopped:     true,
	}

	p.broadcaster.Send(Change{
		ChangeVariant: PlaybackStoppedChange,
	})
}

func (p *Storage) Subscribe(cb SubscriberCB, onError func(err error)) {
	subscriber := storageChangeSubscriber{
		cb,
	}

	p.broadcaster.Subscribe(&subscriber)
}

func (p *Storage) VideoID() string {
	return p.videoID
}
