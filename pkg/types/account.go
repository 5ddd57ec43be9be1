package types

import "strings"

// Account represents a tenant: the grouping that items, webhooks, and
// memberships hang off of. Each account is owned by exactly one user.
type Account struct {
	ID                          uint64  `json:"id"`
	ExternalID                  string  `json:"externalID"`
	Name                        string  `json:"name"`
	PlanID                      *uint64 `json:"planID"`
	DefaultNewMemberPermissions uint32  `json:"defaultNewMemberPermissions"`
	CreatedOn                   uint64  `json:"createdOn"`
	LastUpdatedOn               *uint64 `json:"lastUpdatedOn"`
	ArchivedOn                  *uint64 `json:"archivedOn"`
	BelongsToUser               uint64  `json:"belongsToUser"`
}

// AccountList represents a page of accounts.
type AccountList struct {
	Pagination
	Accounts []*Account `json:"accounts"`
}

// AccountCreationInput is what a user provides to create an account.
type AccountCreationInput struct {
	Name string `json:"name"`
}

// AccountUpdateInput is what a user provides to update an account.
type AccountUpdateInput struct {
	Name string `json:"name"`
}

// Validate checks the input before it is sent.
func (i AccountCreationInput) Validate() map[string]string {
	if strings.TrimSpace(i.Name) == "" {
		return map[string]string{"name": requiredReason}
	}
	return nil
}
