package types

import "strings"

// Item represents one "thing" record. ArchivedOn being set means the record is
// soft-deleted; archived records only appear in listings that ask for them.
type Item struct {
	ID               uint64  `json:"id"`
	ExternalID       string  `json:"externalID"`
	Name             string  `json:"name"`
	Details          string  `json:"details"`
	CreatedOn        uint64  `json:"createdOn"`
	LastUpdatedOn    *uint64 `json:"lastUpdatedOn"`
	ArchivedOn       *uint64 `json:"archivedOn"`
	BelongsToAccount uint64  `json:"belongsToAccount"`
}

// ItemList represents a page of items.
type ItemList struct {
	Pagination
	Items []*Item `json:"items"`
}

// ItemCreationInput is what a user provides to create an item.
type ItemCreationInput struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// ItemUpdateInput is what a user provides to update an item.
type ItemUpdateInput struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// Validate checks the input before it is sent anywhere.
// Returns field->reason, or nil when the input is acceptable.
func (i ItemCreationInput) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(i.Name) == "" {
		errs["name"] = requiredReason
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
