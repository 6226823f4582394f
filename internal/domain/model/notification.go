package model

// Channel identifies the delivery channel a notification went out on.
type Channel string

const (
	ChannelRich  Channel = "rich"
	ChannelPlain Channel = "plain"
	ChannelNone  Channel = "none"
)

// NotificationOutcome records which channel was used for a recipient and
// whether delivery succeeded. Consumed by logging and tests only.
type NotificationOutcome struct {
	Channel   Channel
	Delivered bool
}
