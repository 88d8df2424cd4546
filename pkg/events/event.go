package events

import "time"

// Topic is the single gochannel topic every domain event is published on;
// the activity consumer fans them into the audit table.
const Topic = "educonnect.activity"

const (
	UserRegistered = "user.registered"
	PostCreated    = "post.created"
	ChatSaved      = "chat.saved"
)

// Envelope is the wire shape of a domain event on the bus.
type Envelope struct {
	Event      string                 `json:"event"`
	ActorId    string                 `json:"actor_id,omitempty"`
	SubjectId  string                 `json:"subject_id,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}
