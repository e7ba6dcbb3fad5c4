package lesson

import (
	"context"

	tea "charm.land/bubbletea/v2"

	sess "github.com/abhisek/ailearn/internal/session"
)

// pausedMsg is sent when the pause before a step is over. apply runs the
// step against the flow; it is nil when the pause was canceled.
type pausedMsg struct {
	apply func(ctx context.Context) tea.Msg
	Err   error
}

// diagnosedMsg is sent when content generation finishes.
type diagnosedMsg struct {
	Err error
}

// practiceCheckedMsg carries the verdict on a practice answer.
type practiceCheckedMsg struct {
	Outcome sess.PracticeOutcome
	Err     error
}

// answerCheckedMsg carries tutor feedback for comprehension or reflection.
type answerCheckedMsg struct {
	Feedback string
	Err      error
}

// completedMsg carries the final result.
type completedMsg struct {
	Result *sess.Result
	Err    error
}
