package catalog

import (
	"encoding/json"
)

// Video specifies information about a single entry of the video catalog.
// The id is assumed to be stable and unique within the catalog.
type Video struct {
	id    string
	title string
	tags  []string
	flag  FlagState
}

type videoJSON struct {
	ID    string    `json:"Id"`
	Title string    `json:"Title"`
	Tags  []string  `json:"Tags"`
	Flag  FlagState `json:"Flag"`
}

type Config struct {
	ID    string
	Title string
	Tags  []string
	Flag  FlagState
}

// NewVideo constructs catalog Video state.
func NewVideo(cfg Config) Video {
	return Video{
		id:    cfg.ID,
		title: cfg.Title,
		tags:  cfg.Tags,
		flag:  cfg.Flag,
	}
}

func (v Video) ID() string {
	return v.id
}

func (v Video) Title() string {
	return v.title
}

// Tags returns tags of the video in their display order.
func (v Video) Tags() []string {
	tags := []string{}

	return append(tags, v.tags...)
}

func (v Video) Flag() FlagState {
	return v.flag
}

// MarshalJSON satisifes json.Marshaller.
func (v Video) MarshalJSON() ([]byte, error) {
	vJSON := videoJSON{
		ID:    v.id,
		Title: v.title,
		Tags:  v.tags,
		Flag:  v.flag,
	}

	return json.Marshal(vJSON)
}
