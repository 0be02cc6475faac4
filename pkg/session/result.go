package session

// ResultKind specifies the category of a command outcome.
// Callers should branch on the kind instead of matching message text.
type ResultKind string

const (
	// ResultOK informs about a successful command.
	ResultOK ResultKind = "ok"

	// ResultNotFound informs about a missing video or playlist.
	ResultNotFound ResultKind = "notFound"

	// ResultAlreadyExists informs about a duplicate playlist name, duplicate flag or duplicate playlist membership.
	ResultAlreadyExists ResultKind = "alreadyExists"

	// ResultInvalidState informs about a playback operation issued in a wrong playback state.
	ResultInvalidState ResultKind = "invalidState"

	// ResultFlagged informs about an operation denied due to the video being flagged.
	ResultFlagged ResultKind = "flagged"
)

// Result is the outcome of a single session command.
// Messages hold human-readable lines in their display order.
type Result struct {
	Kind     ResultKind
	Messages []string
}

func (r Result) Failed() bool {
	return r.Kind != ResultOK
}

func resultOk(messages ...string) Result {
	return Result{
		Kind:     ResultOK,
		Messages: messages,
	}
}

func resultNotFound(messages ...string) Result {
	return Result{
		Kind:     ResultNotFound,
		Messages: messages,
	}
}

func resultAlreadyExists(messages ...string) Result {
	return Result{
		Kind:     ResultAlreadyExists,
		Messages: messages,
	}
}

func resultInvalidState(messages ...string) Result {
	return Result{
		Kind:     ResultInvalidState,
		Messages: messages,
	}
}

func resultFlagged(messages ...string) Result {
	return Result{
		Kind:     ResultFlagged,
		Messages: messages,
	}
}
