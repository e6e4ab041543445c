package repository

// List limits shared by every backend
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

const LogMsgRollbackFailed = "Failed to rollback transaction"

// NormalizeLimit maps an unset or negative limit to def and caps it at max
func NormalizeLimit(limit, def, max int) int {
	switch {
	case limit <= 0:
		return def
	case limit > max:
		return max
	default:
		return limit
	}
}
