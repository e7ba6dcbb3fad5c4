package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Snapshot is a point-in-time copy of the progress blob.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      []byte
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. A zero Sequence is assigned the next
	// global sequence number and a zero Timestamp the current time.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// List returns up to limit snapshots, newest first.
	List(ctx context.Context, limit int) ([]Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// Lesson actions recorded in the event log.
const (
	ActionContentGenerated       = "content_generated"
	ActionAlternativeExplanation = "alternative_explanation"
	ActionPracticeSubmitted      = "practice_submitted"
	ActionComprehensionSubmitted = "comprehension_submitted"
	ActionReflectionSubmitted    = "reflection_submitted"
	ActionCompleted              = "completed"
)

// LessonEventData describes one step of a lesson run.
type LessonEventData struct {
	RunID    string
	LessonID string
	Topic    string
	Action   string
	Score    int
	Detail   string
}

// AdaptationEventData records why content was adapted.
type AdaptationEventData struct {
	Type   string
	Reason string
}

// EvaluationEventData records a graded written answer.
type EvaluationEventData struct {
	Topic        string
	Score        int
	Concepts     int
	AnswerLength int
}

// Event kinds returned by Recent.
const (
	KindLesson     = "lesson"
	KindAdaptation = "adaptation"
	KindEvaluation = "evaluation"
)

// Event is one row of the merged event log.
type Event struct {
	Sequence  int64
	Timestamp time.Time
	Kind      string
	Summary   string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	AppendLesson(ctx context.Context, data LessonEventData) error
	AppendAdaptation(ctx context.Context, data AdaptationEventData) error
	AppendEvaluation(ctx context.Context, data EvaluationEventData) error

	// LessonEvents returns the events of one lesson, oldest first.
	LessonEvents(ctx context.Context, lessonID string) ([]LessonEventData, error)

	// Completions returns every completed lesson run, oldest first. A
	// lesson completed twice appears twice.
	Completions(ctx context.Context) ([]LessonEventData, error)

	// Recent merges every event table, newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]Event, error)
}
