package catalog

import "encoding/json"

// FlagState describes a moderation mark on a video.
// A flagged video cannot be played nor added to playlists until allowed again.
type FlagState struct {
	flagged bool
	reason  string
}

type flagStateJSON struct {
	Flagged bool   `json:"Flagged"`
	Reason  string `json:"Reason"`
}

// Unflagged constructs FlagState for a video without a moderation mark.
func Unflagged() FlagState {
	return FlagState{}
}

// FlaggedWith constructs FlagState carrying a human-readable reason.
func FlaggedWith(reason string) FlagState {
	return FlagState{
		flagged: true,
		reason:  reason,
	}
}

func (f FlagState) Flagged() bool {
	return f.flagged
}

func (f FlagState) Reason() string {
	return f.reason
}

// MarshalJSON satisifes json.Marshaller.
func (f FlagState) MarshalJSON() ([]byte, error) {
	fJSON := flagStateJSON{
		Flagged: f.flagged,
		Reason:  f.reason,
	}

	return json.Marshal(fJSON)
}
