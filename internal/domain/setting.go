package domain

import "time"

// SettingAutoApprove is the fixed key for the auto-approval shortcut flag.
// When enabled, new leave requests skip both review stages.
const SettingAutoApprove = "auto_approve_requests"

// Setting is a named boolean flag. Settings are readable by everyone and
// writable only by workforce managers.
type Setting struct {
	Key       string
	Value     bool
	UpdatedAt time.Time
}
