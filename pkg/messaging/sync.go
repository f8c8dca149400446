package messaging

type ChangeTopic string

const (
	// SearchEvents carries tracking events for evaluated listings.
	SearchEvents ChangeTopic = "search_events"
	// DataChanged announces rewritten data files.
	DataChanged ChangeTopic = "data_changed"
)

// DataChangedMessage names the data files that were replaced.
type DataChangedMessage struct {
	Files []string `json:"files"`
}
