package storage

// Key names one persisted collection. Values are stable across releases; renaming one
// orphans existing data, so a new key needs an explicit migration.
type Key string

const (
	KeyTasks     Key = "pr_tasks_v3"
	KeySchedules Key = "pr_schedules_v1"
	KeyNotes     Key = "pr_notes_v1"
	KeySettings  Key = "pr_settings_v1"
)

// AllKeys lists every collection key.
var AllKeys = []Key{KeyTasks, KeySchedules, KeyNotes, KeySettings}
