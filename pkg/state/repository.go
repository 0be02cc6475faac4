package state

import (
	"github.com/sarpt/tube-cli/internal/common"
	"github.com/sarpt/tube-cli/pkg/state/pkg/catalog"
	"github.com/sarpt/tube-cli/pkg/state/pkg/playback"
	"github.com/sarpt/tube-cli/pkg/state/pkg/playlists"
)

type Repository interface {
	Catalog() *catalog.Storage
	Playback() *playback.Storage
	Playlists() *playlists.Storage
}

type inMemoryRepository struct {
	catalog   *catalog.Storage
	playback  *playback.Storage
	playlists *playlists.Storage
}

func (r *inMemoryRepository) Catalog() *catalog.Storage {
	return r.catalog
}

func (r *inMemoryRepository) Playback() *playback.Storage {
	return r.playback
}

func (r *inMemoryRepository) Playlists() *playlists.Storage {
	return r.playlists
}

func NewRepository() Repository {
	catalogBroadcaster := createAndInitChangesBroadcaster[catalog.Change]()
	playbackBroadcaster := createAndInitChangesBroadcaster[playback.Change]()
	playlistsBroadcaster := createAndInitChangesBroadcaster[playlists.Change]()

	return &inMemoryRepository{
		catalog:   catalog.NewStorage(catalogBroadcaster),
		playback:  playback.NewStorage(playbackBroadcaster),
		playlists: playlists.NewStorage(playlistsBroadcaster),
	}
}

func createAndInitChangesBroadcaster[Change common.Change]() *common.ChangesBroadcaster[Change] {
	broadcaster := common.NewChangesBroadcaster[Change]()
	broadcaster.Broadcast()

	return broadcaster
}
