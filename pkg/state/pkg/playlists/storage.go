package playlists

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/sarpt/tube-cli/internal/common"
	"github.com/sarpt/tube-cli/pkg/state/internal/revision"
)

type SubscriberCB = func(change Change)

type playlistChangeSubscriber struct {
	cb SubscriberCB
}

func (s *playlistChangeSubscriber) Receive(change Change) {
	s.cb(change)
}

const (
	// PlaylistsAdded notifies of a new playlist in the store.
	PlaylistsAdded common.ChangeVariant = "added"

	// PlaylistsRemoved notifies of a playlist being deleted from the store.
	PlaylistsRemoved common.ChangeVariant = "removed"

	// PlaylistsEntriesChange notifies about changes to the entries in a playlist.
	PlaylistsEntriesChange common.ChangeVariant = "entriesChange"
)

var (
	ErrPlaylistWithNameAlreadyExists = errors.New("playlist with provided name already exists")
	ErrPlaylistWithNameDoesNotExist  = errors.New("playlist with provided name does not exist")
	ErrEntryAlreadyInPlaylist        = errors.New("video is already in the playlist")
	ErrEntryNotInPlaylist            = errors.New("video is not in the playlist")
)

// Change is used to inform about changes to the playlists store.
type Change struct {
	ChangeVariant common.ChangeVariant
	Playlist      *Playlist
}

// MarshalJSON returns change items in JSON format. Satisfies json.Marshaller.
func (s Change) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Playlist)
}

func (s Change) Variant() common.ChangeVariant {
	return s.ChangeVariant
}

// Storage is an aggregate state of user-defined playlists.
// Playlists are keyed by their lowercased name - lookups and uniqueness
// checks are case-insensitive, display always uses the creation-time name.
type Storage struct {
	broadcaster *common.ChangesBroadcaster[Change]
	items       map[string]*Playlist
	lock        *sync.RWMutex
	revision    *revision.Storage
}

// NewStorage constructs playlists Storage state.
func NewStorage(broadcaster *common.ChangesBroadcaster[Change]) *Storage {
	return &Storage{
		broadcaster: broadcaster,
		items:       map[string]*Playlist{},
		lock:        &sync.RWMutex{},
		revision:    revision.NewStorage(),
	}
}

// AddPlaylist puts a new playlist into the store.
// Reports an error when a playlist with the same lowercased name already exists.
func (p *Storage) AddPlaylist(playlist *Playlist) error {
	key := storageKey(playlist.name)

	p.lock.Lock()
	if _, ok := p.items[key]; ok {
		p.lock.Unlock()

		return ErrPlaylistWithNameAlreadyExists
	}

	p.items[key] = playlist
	p.lock.Unlock()

	p.revision.Tick()
	p.broadcaster.Send(Change{
		ChangeVariant: PlaylistsAdded,
		Playlist:      playlist,
	})

	return nil
}

// AddEntry appends a video id to a playlist with the provided name, preserving insertion order.
func (p *Storage) AddEntry(name string, videoID string) error {
	playlist, err := p.ByName(name)
	if err != nil {
		return err
	}

	if playlist.Has(videoID) {
		return ErrEntryAlreadyInPlaylist
	}

	playlist.addEntry(videoID)

	p.revision.Tick()
	p.broadcaster.Send(Change{
		ChangeVariant: PlaylistsEntriesChange,
		Playlist:      playlist,
	})

	return nil
}

// All returns all playlists ordered by their lowercased display name.
func (p *Storage) All() []*Playlist {
	allPlaylists := []*Playlist{}

	p.lock.RLock()
	for _, playlist := range p.items {
		allPlaylists = append(allPlaylists, playlist)
	}
	p.lock.RUnlock()

	sort.SliceStable(allPlaylists, func(i, j int) bool {
		return storageKey(allPlaylists[i].name) < storageKey(allPlaylists[j].name)
	})

	return allPlaylists
}

// ByName returns a playlist with the provided name, matched case-insensitively.
func (p *Storage) ByName(name string) (*Playlist, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	playlist, ok := p.items[storageKey(name)]
	if !ok {
		return &Playlist{}, ErrPlaylistWithNameDoesNotExist
	}

	return playlist, nil
}

// ClearEntries removes all entries of a playlist with the provided name, preserving the playlist itself.
func (p *Storage) ClearEntries(name string) error {
	playlist, err := p.ByName(name)
	if err != nil {
		return err
	}

	playlist.clearEntries()

	p.revision.Tick()
	p.broadcaster.Send(Change{
		ChangeVariant: PlaylistsEntriesChange,
		Playlist:      playlist,
	})

	return nil
}

// Length returns the number of playlists in the store.
func (p *Storage) Length() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.items)
}

// MarshalJSON satisifes json.Marshaller.
func (p *Storage) MarshalJSON() ([]byte, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return json.Marshal(p.items)
}

func (p *Storage) Revision() revision.Identifier {
	return p.revision.Revision()
}

func (p *Storage) Subscribe(cb SubscriberCB, onError func(err error)) {
	subscriber := playlistChangeSubscriber{
		cb,
	}

	p.broadcaster.Subscribe(&subscriber)
}

// Take removes a playlist with the provided name from the store, returning the removed playlist.
func (p *Storage) Take(name string) (*Playlist, error) {
	key := storageKey(name)

	p.lock.Lock()
	playlist, ok := p.items[key]
	if !ok {
		p.lock.Unlock()

		return &Playlist{}, ErrPlaylistWithNameDoesNotExist
	}

	delete(p.items, key)
	p.lock.Unlock()

	p.revision.Tick()
	p.broadcaster.Send(Change{
		ChangeVariant: PlaylistsRemoved,
		Playlist:      playlist,
	})

	return playlist, nil
}

// TakeEntry removes a video id from a playlist with the provided name.
func (p *Storage) TakeEntry(name string, videoID string) error {
	playlist, err := p.ByName(name)
	if err != nil {
		return err
	}

	if !playlist.Has(videoID) {
		return ErrEntryNotInPlaylist
	}

	playlist.removeEntry(videoID)

	p.revision.Tick()
	p.broadcaster.Send(Change{
		ChangeVariant: PlaylistsEntriesChange,
		Playlist:      playlist,
	})

	return nil
}

func storageKey(name string) string {
	return strings.ToLower(name)
}
