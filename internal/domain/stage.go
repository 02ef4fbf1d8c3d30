package domain

import "fmt"

// Stage is the position of a user's session in the quest.
// Positive values are task numbers, the rest are meta-states.
type Stage int

const (
	StageNone      Stage = 0
	StageLanguage  Stage = -1
	StageGated     Stage = -2
	StageCompleted Stage = -3
)

// TaskStage returns the stage for task n (1-based)
func TaskStage(n int) Stage {
	return Stage(n)
}

// IsTask reports whether the stage points at a task
func (s Stage) IsTask() bool {
	return s > 0
}

// Task returns the task number, or 0 for meta-states
func (s Stage) Task() int {
	if !s.IsTask() {
		return 0
	}
	return int(s)
}

func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageLanguage:
		return "awaiting_language"
	case StageGated:
		return "gated"
	case StageCompleted:
		return "completed"
	}
	if s.IsTask() {
		return fmt.Sprintf("task_%d", int(s))
	}
	return fmt.Sprintf("stage(%d)", int(s))
}
