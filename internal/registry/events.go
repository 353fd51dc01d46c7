package registry

import (
	"github.com/joseph-ayodele/research-agent/constants"
)

// EventType tags one job-lifecycle event on the subscriber stream.
type EventType string

const (
	EventStatusUpdate   EventType = "status_update"
	EventNodeComplete   EventType = "node_complete"
	EventHITLCheckpoint EventType = "hitl_checkpoint"
	EventError          EventType = "error"
	// EventConnected is sent once per new subscriber, replaying the job's
	// current status and stage so late joiners don't start blind.
	EventConnected EventType = "connected"
)

// Event is the broadcast payload. Only the fields relevant to the event type
// are populated.
type Event struct {
	Type   EventType           `json:"type"`
	JobID  string              `json:"job_id"`
	Status constants.JobStatus `json:"status,omitempty"`
	Stage  constants.StageID   `json:"stage,omitempty"`
	// Message carries human-readable detail for status_update and error.
	Message string `json:"message,omitempty"`
	// Fields names the state fields a completed node touched.
	Fields []string `json:"fields,omitempty"`
	// Review checkpoint payload.
	Draft   string   `json:"draft,omitempty"`
	Score   float64  `json:"score,omitempty"`
	Sources []string `json:"sources,omitempty"`
}
