package models

// AccountStatus describes the remote account's availability for syncing.
// It is always returned as a value, never as an error: ambiguity about the
// account must not crash a caller.
type AccountStatus int

const (
	// AccountIndeterminate means the status could not be established
	// (network fault, malformed response, and so on). Treated as
	// "don't know yet".
	AccountIndeterminate AccountStatus = iota
	// AccountAvailable means the remote account accepts sync operations.
	AccountAvailable
	// AccountNoAccount means no usable account exists (missing or expired
	// credentials).
	AccountNoAccount
	// AccountRestricted means the account exists but syncing is not allowed.
	AccountRestricted
)

func (a AccountStatus) String() string {
	switch a {
	case AccountAvailable:
		return "available"
	case AccountNoAccount:
		return "no_account"
	case AccountRestricted:
		return "restricted"
	default:
		return "indeterminate"
	}
}
