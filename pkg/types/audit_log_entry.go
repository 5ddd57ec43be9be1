package types

// AuditLogEntry records one server-side event. Context is schemaless; the
// server decides what lands in it per event type.
type AuditLogEntry struct {
	ID         uint64         `json:"id"`
	ExternalID string         `json:"externalID"`
	EventType  string         `json:"eventType"`
	Context    map[string]any `json:"context"`
	CreatedOn  uint64         `json:"createdOn"`
}

// AuditLogEntryList represents a page of audit log entries.
type AuditLogEntryList struct {
	Pagination
	Entries []*AuditLogEntry `json:"entries"`
}
