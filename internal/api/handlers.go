package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/ailearn/internal/adaptive"
	"github.com/abhisek/ailearn/internal/evaluation"
	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/profile"
	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/store"
	"github.com/abhisek/ailearn/internal/tutor"
)

func handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func handleGetProfile(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, deps.Progress.Profile())
	}
}

// ProfileUpdate changes profile fields. Omitted fields are left alone.
type ProfileUpdate struct {
	LearningStyle     *string `json:"learningStyle"`
	TechnicalLevel    *string `json:"technicalLevel"`
	MentalState       *string `json:"mentalState"`
	Goal              *string `json:"goal"`
	PreferredDuration *int    `json:"preferredDuration"`
}

func handleUpdateProfile(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProfileUpdate
		if !decodeBody(w, r, &req) {
			return
		}

		// Parse everything first so a bad field changes nothing.
		var changes progress.ProfileChanges
		if req.LearningStyle != nil {
			style, err := profile.ParseLearningStyle(*req.LearningStyle)
			if err != nil {
				httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
				return
			}
			changes.LearningStyle = &style
		}
		if req.TechnicalLevel != nil {
			level, err := profile.ParseTechnicalLevel(*req.TechnicalLevel)
			if err != nil {
				httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
				return
			}
			changes.TechnicalLevel = &level
		}
		if req.MentalState != nil {
			state, err := profile.ParseMentalState(*req.MentalState)
			if err != nil {
				httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
				return
			}
			changes.MentalState = &state
		}
		if req.PreferredDuration != nil && *req.PreferredDuration <= 0 {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "preferredDuration must be positive")
			return
		}
		changes.PreferredDuration = req.PreferredDuration
		changes.Goal = req.Goal

		if err := deps.Progress.UpdateProfile(r.Context(), changes); err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "update profile: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, deps.Progress.Profile())
	}
}

func handleGetState(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, deps.Progress.Snapshot())
	}
}

func handleListLessons(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := r.URL.Query().Get("topic")
		if topic == "" {
			writeJSON(w, http.StatusOK, deps.Catalog.All())
			return
		}
		if _, ok := deps.Catalog.Topic(topic); !ok {
			httpError(w, http.StatusNotFound, "not_found", "topic %q not found", topic)
			return
		}
		writeJSON(w, http.StatusOK, deps.Catalog.ForTopic(topic))
	}
}

func handleRecommended(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := deps.Progress.Snapshot()
		topic := r.URL.Query().Get("topic")
		if topic == "" {
			topic = st.SelectedTopic
		}
		writeJSON(w, http.StatusOK, deps.Catalog.Recommend(topic, st.CompletedLessons, st.MentalState))
	}
}

// GenerateRequest asks for lesson content. Profile fields left empty are
// taken from the stored profile.
type GenerateRequest struct {
	Topic         string `json:"topic"`
	Concept       string `json:"concept"`
	LearningStyle string `json:"learningStyle"`
	MentalState   string `json:"mentalState"`
}

// GenerateResponse is the generated lesson plus the selector's plan.
type GenerateResponse struct {
	Lesson  lessons.Lesson `json:"lesson"`
	Content string         `json:"content"`
	Plan    adaptive.Plan  `json:"plan"`
}

func handleGenerate(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.Concept) == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "concept is required")
			return
		}

		p := deps.Progress.Profile()
		if req.LearningStyle != "" {
			style, err := profile.ParseLearningStyle(req.LearningStyle)
			if err != nil {
				httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
				return
			}
			p.LearningStyle = style
		}
		if req.MentalState != "" {
			state, err := profile.ParseMentalState(req.MentalState)
			if err != nil {
				httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
				return
			}
			p.MentalState = state
		}

		topic := req.Topic
		if topic == "" {
			topic = deps.Progress.Snapshot().SelectedTopic
		}
		if err := deps.Pacer.Generation(r.Context()); err != nil {
			httpError(w, http.StatusServiceUnavailable, "api_error", "generation canceled: %v", err)
			return
		}

		lesson := lessons.Generate(deps.Catalog.TopicName(topic), req.Concept, p)
		writeJSON(w, http.StatusOK, GenerateResponse{
			Lesson:  lesson,
			Content: lessons.Format(lesson),
			Plan:    adaptive.BuildPlan(p),
		})
	}
}

// EvaluateRequest is a written answer to grade.
type EvaluateRequest struct {
	Topic  string `json:"topic"`
	Answer string `json:"answer"`
}

func handleEvaluate(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EvaluateRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := deps.Pacer.Evaluation(r.Context()); err != nil {
			httpError(w, http.StatusServiceUnavailable, "api_error", "evaluation canceled: %v", err)
			return
		}
		res, err := deps.Evaluator.Evaluate(req.Topic, req.Answer)
		if errors.Is(err, evaluation.ErrEmptyAnswer) {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "answer is required")
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "evaluate: %v", err)
			return
		}

		if deps.Events != nil {
			ev := store.EvaluationEventData{
				Topic:        res.Topic,
				Score:        res.Score,
				Concepts:     len(res.Evaluations),
				AnswerLength: len([]rune(req.Answer)),
			}
			if err := deps.Events.AppendEvaluation(r.Context(), ev); err != nil {
				deps.Logger.Warn("record evaluation", zap.Error(err))
			}
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// FeedbackRequest asks the tutor about an answer at a lesson step.
type FeedbackRequest struct {
	Step        string `json:"step"`
	Answer      string `json:"answer"`
	Performance string `json:"performance"`
}

func handleFeedback(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FeedbackRequest
		if !decodeBody(w, r, &req) {
			return
		}
		step := tutor.Step(req.Step)
		switch step {
		case tutor.StepPractice, tutor.StepComprehension, tutor.StepReflection, tutor.StepFinal:
		default:
			httpError(w, http.StatusBadRequest, "invalid_request_error", "unknown step %q", req.Step)
			return
		}
		if err := deps.Pacer.Feedback(r.Context()); err != nil {
			httpError(w, http.StatusServiceUnavailable, "api_error", "feedback canceled: %v", err)
			return
		}
		text := deps.Tutor.Feedback(tutor.Request{
			Step:        step,
			Answer:      req.Answer,
			Profile:     deps.Progress.Profile(),
			Performance: tutor.Performance(req.Performance),
		})
		writeJSON(w, http.StatusOK, map[string]string{"feedback": text})
	}
}

// MasteryRequest merges a mastery percentage for a lesson.
type MasteryRequest struct {
	LessonID string `json:"lessonId"`
	Mastery  int    `json:"mastery"`
}

func handleMastery(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MasteryRequest
		if !decodeBody(w, r, &req) {
			return
		}
		err := deps.Progress.UpdateMastery(r.Context(), req.LessonID, req.Mastery)
		switch {
		case errors.Is(err, progress.ErrInvalidMastery), errors.Is(err, progress.ErrEmptyLessonID):
			httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
			return
		case err != nil:
			httpError(w, http.StatusInternalServerError, "api_error", "update mastery: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{
			"mastery": deps.Progress.Snapshot().Mastery(req.LessonID),
		})
	}
}

func handleCounter(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		switch kind := chi.URLParam(r, "kind"); kind {
		case "errors":
			err = deps.Progress.IncrementErrors(r.Context())
		case "successes":
			err = deps.Progress.IncrementSuccesses(r.Context())
		case "reset":
			err = deps.Progress.ResetCounters(r.Context())
		default:
			httpError(w, http.StatusNotFound, "not_found", "unknown counter %q", kind)
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "update counters: %v", err)
			return
		}
		p := deps.Progress.Profile()
		writeJSON(w, http.StatusOK, map[string]int{
			"recentErrors":    p.RecentErrors,
			"recentSuccesses": p.RecentSuccesses,
		})
	}
}

func handleReset(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		switch scope := r.URL.Query().Get("scope"); scope {
		case "onboarding":
			err = deps.Progress.ResetOnboarding(r.Context())
		case "counters":
			err = deps.Progress.ResetCounters(r.Context())
		case "", "all":
			err = deps.Progress.Reset(r.Context())
		default:
			httpError(w, http.StatusBadRequest, "invalid_request_error", "unknown reset scope %q", scope)
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "reset: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
	}
}
