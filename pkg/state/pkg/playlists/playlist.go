package playlists

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Playlist holds a named, insertion-ordered, deduplicated collection of video ids.
// The name keeps the display case it was created with.
type Playlist struct {
	entries []string
	lock    *sync.RWMutex
	name    string
	uuid    string
}

type playlistJSON struct {
	Entries []string `json:"Entries"`
	Name    string   `json:"Name"`
	UUID    string   `json:"UUID"`
}

type Config struct {
	Entries []string
	Name    string
}

// NewPlaylist constructs Playlist state.
func NewPlaylist(cfg Config) *Playlist {
	return &Playlist{
		entries: cfg.Entries,
		lock:    &sync.RWMutex{},
		name:    cfg.Name,
		uuid:    uuid.NewString(),
	}
}

// All returns a copy of video ids in the playlist in their insertion order.
func (p *Playlist) All() []string {
	entries := []string{}

	p.lock.RLock()
	defer p.lock.RUnlock()

	return append(entries, p.entries...)
}

// Has informs whether a video id is already in the playlist.
func (p *Playlist) Has(videoID string) bool {
	p.lock.RLock()
	defer p.lock.RUnlock()

	for _, entry := range p.entries {
		if entry == videoID {
			return true
		}
	}

	return false
}

// Length returns the number of entries in the playlist.
func (p *Playlist) Length() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.entries)
}

// MarshalJSON satisifes json.Marshaller.
func (p *Playlist) MarshalJSON() ([]byte, error) {
	p.lock.RLock()
	pJSON := playlistJSON{
		Entries: p.entries,
		Name:    p.name,
		UUID:    p.uuid,
	}
	p.lock.RUnlock()

	return json.Marshal(pJSON)
}

func (p *Playlist) Name() string {
	return p.name
}

func (p *Playlist) UUID() string {
	return p.uuid
}

func (p *Playlist) addEntry(videoID string) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.entries = append(p.entries, videoID)
}

func (p *Playlist) clearEntries() {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.entries = []string{}
}

func (p *Playlist) removeEntry(videoID string) {
	p.lock.Lock()
	defer p.lock.Unlock()

	for idx, entry := range p.entries {
		if entry == videoID {
			p.entries = append(p.entries[:idx], p.entries[idx+1:]...)

			return
		}
	}
}
