// Package progress owns the learner's persisted record: onboarding answers,
// adaptive counters, mastery, points and history. A Service is passed
// explicitly to every surface that reads or changes it.
package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/ailearn/internal/profile"
)

var (
	// ErrNoState is returned by a Backend that has nothing saved yet.
	ErrNoState = errors.New("no saved state")

	ErrInvalidMastery  = errors.New("mastery must be between 0 and 100")
	ErrInvalidDuration = errors.New("preferred duration must be positive")
	ErrInvalidPoints   = errors.New("points must not be negative")
	ErrEmptyLessonID   = errors.New("lesson id is empty")
)

// Backend stores the encoded state blob.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Options configures a Service.
type Options struct {
	Logger *zap.Logger
	Now    func() time.Time
}

// Service guards the state and writes it through to the backend after
// every change. A failed write leaves the service dirty; the next change
// or an explicit Flush retries it.
type Service struct {
	mu      sync.Mutex
	state   State
	dirty   bool
	backend Backend
	logger  *zap.Logger
	now     func() time.Time
}

// Open loads the saved state, or starts from Initial when there is none.
func Open(ctx context.Context, backend Backend, opts Options) (*Service, error) {
	s := &Service{
		state:   Initial(),
		backend: backend,
		logger:  opts.Logger,
		now:     opts.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}

	data, err := backend.Load(ctx)
	switch {
	case errors.Is(err, ErrNoState):
		s.logger.Debug("no saved state, starting fresh")
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("load state: %w", err)
	}

	st, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	s.state = st
	return s, nil
}

// Snapshot returns a copy of the current state.
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Profile returns the adaptive profile of the current state.
func (s *Service) Profile() profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Profile()
}

// Dirty reports whether the latest state has not reached the backend.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Flush writes the state if an earlier write failed.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}
	return s.persistLocked(ctx, "flush")
}

// update applies fn and persists the result. fn must validate before it
// mutates, so a rejected change leaves the state untouched.
func (s *Service) update(ctx context.Context, op string, fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.state); err != nil {
		return err
	}
	s.dirty = true
	return s.persistLocked(ctx, op)
}

func (s *Service) persistLocked(ctx context.Context, op string) error {
	data, err := Encode(s.state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.backend.Save(ctx, data); err != nil {
		s.logger.Warn("state save failed", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("save state: %w", err)
	}
	s.dirty = false
	return nil
}

// --- Onboarding ---

func (s *Service) SetLearningStyle(ctx context.Context, style profile.LearningStyle) error {
	return s.update(ctx, "set_learning_style", func(st *State) error {
		st.LearningStyle = style
		return nil
	})
}

func (s *Service) SetTechnicalLevel(ctx context.Context, level profile.TechnicalLevel) error {
	return s.update(ctx, "set_technical_level", func(st *State) error {
		st.TechnicalLevel = level
		return nil
	})
}

func (s *Service) SetMentalState(ctx context.Context, state profile.MentalState) error {
	return s.update(ctx, "set_mental_state", func(st *State) error {
		st.MentalState = state
		return nil
	})
}

func (s *Service) SetGoal(ctx context.Context, goal string) error {
	return s.update(ctx, "set_goal", func(st *State) error {
		st.Goal = strings.TrimSpace(goal)
		return nil
	})
}

func (s *Service) SetSelectedTopic(ctx context.Context, topic string) error {
	return s.update(ctx, "set_selected_topic", func(st *State) error {
		st.SelectedTopic = topic
		return nil
	})
}

func (s *Service) SetTopicLevel(ctx context.Context, topic string, level profile.TechnicalLevel) error {
	return s.update(ctx, "set_topic_level", func(st *State) error {
		st.TopicLevels[topic] = level
		return nil
	})
}

// CompleteOnboarding marks the wizard as finished.
func (s *Service) CompleteOnboarding(ctx context.Context) error {
	return s.update(ctx, "complete_onboarding", func(st *State) error {
		st.HasCompletedOnboarding = true
		return nil
	})
}

// --- Progress ---

// CompleteLesson records a completion and awards LessonPoints. The id is
// listed once however many times the lesson is completed; points are
// awarded every time.
func (s *Service) CompleteLesson(ctx context.Context, lessonID string) error {
	if lessonID == "" {
		return ErrEmptyLessonID
	}
	return s.update(ctx, "complete_lesson", func(st *State) error {
		if !st.HasCompleted(lessonID) {
			st.CompletedLessons = append(st.CompletedLessons, lessonID)
		}
		st.TotalPoints += LessonPoints
		return nil
	})
}

func (s *Service) AddPoints(ctx context.Context, points int) error {
	if points < 0 {
		return ErrInvalidPoints
	}
	return s.update(ctx, "add_points", func(st *State) error {
		st.TotalPoints += points
		return nil
	})
}

func (s *Service) IncrementStreak(ctx context.Context) error {
	return s.update(ctx, "increment_streak", func(st *State) error {
		st.CurrentStreak++
		return nil
	})
}

// UpdateMastery raises a lesson's mastery. Lower values never replace a
// higher stored one.
func (s *Service) UpdateMastery(ctx context.Context, lessonID string, pct int) error {
	if lessonID == "" {
		return ErrEmptyLessonID
	}
	if pct < 0 || pct > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidMastery, pct)
	}
	return s.update(ctx, "update_mastery", func(st *State) error {
		st.LessonMastery[lessonID] = max(st.LessonMastery[lessonID], pct)
		return nil
	})
}

// --- Analytics ---

func (s *Service) AddReflection(ctx context.Context, lessonID, text string) error {
	return s.update(ctx, "add_reflection", func(st *State) error {
		st.Reflections = append(st.Reflections, Reflection{Date: s.now().UTC(), LessonID: lessonID, Text: text})
		return nil
	})
}

// AddLessonHistory records accuracy (0-100) and time spent in minutes.
func (s *Service) AddLessonHistory(ctx context.Context, accuracy, timeSpent float64) error {
	return s.update(ctx, "add_lesson_history", func(st *State) error {
		st.LessonHistory = append(st.LessonHistory, LessonRecord{Date: s.now().UTC(), Accuracy: accuracy, TimeSpent: timeSpent})
		return nil
	})
}

func (s *Service) AddHours(ctx context.Context, hours float64) error {
	return s.update(ctx, "add_hours", func(st *State) error {
		st.TotalHours += hours
		return nil
	})
}

// --- Adaptive ---

func (s *Service) SetCognitiveLoad(ctx context.Context, load profile.CognitiveLoad) error {
	return s.update(ctx, "set_cognitive_load", func(st *State) error {
		st.CognitiveLoad = load
		return nil
	})
}

// ProfileChanges are profile edits applied together. Nil fields are left
// as they are.
type ProfileChanges struct {
	LearningStyle     *profile.LearningStyle
	TechnicalLevel    *profile.TechnicalLevel
	MentalState       *profile.MentalState
	Goal              *string
	PreferredDuration *int
}

// UpdateProfile applies every set field of c with a single save. An invalid
// duration rejects the whole change.
func (s *Service) UpdateProfile(ctx context.Context, c ProfileChanges) error {
	if c.PreferredDuration != nil && *c.PreferredDuration <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, *c.PreferredDuration)
	}
	return s.update(ctx, "update_profile", func(st *State) error {
		if c.LearningStyle != nil {
			st.LearningStyle = *c.LearningStyle
		}
		if c.TechnicalLevel != nil {
			st.TechnicalLevel = *c.TechnicalLevel
		}
		if c.MentalState != nil {
			st.MentalState = *c.MentalState
		}
		if c.Goal != nil {
			st.Goal = strings.TrimSpace(*c.Goal)
		}
		if c.PreferredDuration != nil {
			st.PreferredDuration = *c.PreferredDuration
		}
		return nil
	})
}

func (s *Service) SetLastLessonDifficulty(ctx context.Context, difficulty string) error {
	return s.update(ctx, "set_last_lesson_difficulty", func(st *State) error {
		st.LastLessonDifficulty = difficulty
		return nil
	})
}

// IncrementErrors counts a failed answer and ends the success run.
func (s *Service) IncrementErrors(ctx context.Context) error {
	return s.update(ctx, "increment_errors", func(st *State) error {
		st.RecentErrors++
		st.RecentSuccesses = 0
		return nil
	})
}

// IncrementSuccesses counts a good answer and ends the error run.
func (s *Service) IncrementSuccesses(ctx context.Context) error {
	return s.update(ctx, "increment_successes", func(st *State) error {
		st.RecentSuccesses++
		st.RecentErrors = 0
		return nil
	})
}

func (s *Service) ResetCounters(ctx context.Context) error {
	return s.update(ctx, "reset_counters", func(st *State) error {
		st.RecentErrors = 0
		st.RecentSuccesses = 0
		return nil
	})
}

// TrackAdaptation appends to the bounded adaptation history.
func (s *Service) TrackAdaptation(ctx context.Context, adaptationType, reason string) error {
	return s.update(ctx, "track_adaptation", func(st *State) error {
		st.AdaptationHistory.Push(Adaptation{Timestamp: s.now().UTC(), Type: adaptationType, Reason: reason})
		return nil
	})
}

// --- Reset ---

// Reset returns every field to its initial value.
func (s *Service) Reset(ctx context.Context) error {
	return s.update(ctx, "reset", func(st *State) error {
		*st = Initial()
		return nil
	})
}

// ResetOnboarding clears the onboarding answers and topic levels so the
// wizard runs again. Progress, analytics and adaptive counters are kept.
func (s *Service) ResetOnboarding(ctx context.Context) error {
	return s.update(ctx, "reset_onboarding", func(st *State) error {
		st.LearningStyle = profile.StyleUnset
		st.TechnicalLevel = profile.LevelUnset
		st.MentalState = profile.StateNeutral
		st.Goal = ""
		st.SelectedTopic = DefaultTopic
		st.TopicLevels = map[string]profile.TechnicalLevel{}
		st.HasCompletedOnboarding = false
		return nil
	})
}

// --- Transfer ---

// Export returns the state as indented JSON.
func (s *Service) Export() ([]byte, error) {
	return EncodeIndent(s.Snapshot())
}

// Import replaces the state with a blob of any known version.
func (s *Service) Import(ctx context.Context, data []byte) error {
	st, err := Decode(data)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return s.update(ctx, "import", func(cur *State) error {
		*cur = st
		return nil
	})
}

// MemoryBackend keeps the blob in memory.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
}

func (m *MemoryBackend) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNoState
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryBackend) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}
