package types

// Service-admin capability bits. The low bits mirror the server's bitmask;
// everything above canTerminateAccounts is reserved.
const (
	cycleCookieSecretPermission ServiceAdminPermissions = 1 << iota
	banUserPermission
	canTerminateAccountsPermission
)

// ServiceAdminPermissions is the bitmask tracking which administrative actions
// a user may perform. The client renders it; the server enforces it.
type ServiceAdminPermissions uint32

// CanCycleCookieSecrets reports whether the cookie-secret-cycling bit is set.
func (p ServiceAdminPermissions) CanCycleCookieSecrets() bool {
	return p&cycleCookieSecretPermission != 0
}

// CanBanUsers reports whether the user-banning bit is set.
func (p ServiceAdminPermissions) CanBanUsers() bool {
	return p&banUserPermission != 0
}

// CanTerminateAccounts reports whether the account-termination bit is set.
func (p ServiceAdminPermissions) CanTerminateAccounts() bool {
	return p&canTerminateAccountsPermission != 0
}

// IsServiceAdmin reports whether any administrative bit is set at all.
func (p ServiceAdminPermissions) IsServiceAdmin() bool {
	return p != 0
}

// ServiceAdminPermissionsSummary is the capability-flag view of the bitmask
// that the auth-status endpoint returns.
type ServiceAdminPermissionsSummary struct {
	CanCycleCookieSecrets bool `json:"canCycleCookieSecret"`
	CanBanUsers           bool `json:"canBanUsers"`
	CanTerminateAccounts  bool `json:"canTerminateAccounts"`
}

// Summary produces the capability-flag view, or nil for a non-admin.
func (p ServiceAdminPermissions) Summary() *ServiceAdminPermissionsSummary {
	if p == 0 {
		return nil
	}

	return &ServiceAdminPermissionsSummary{
		CanCycleCookieSecrets: p.CanCycleCookieSecrets(),
		CanBanUsers:           p.CanBanUsers(),
		CanTerminateAccounts:  p.CanTerminateAccounts(),
	}
}
