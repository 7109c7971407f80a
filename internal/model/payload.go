package model

type Class string

const (
	ClassInSync    Class = "in-sync"
	ClassOutOfSync Class = "out-of-sync"
	ClassError     Class = "error"
)

// Payload is the status-bar widget object. Tooltip is omitted when empty.
type Payload struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip,omitempty"`
	Class   Class  `json:"class"`
}

func ErrorPayload(text, tooltip string) Payload {
	return Payload{
		Text:    text,
		Tooltip: tooltip,
		Class:   ClassError,
	}
}
