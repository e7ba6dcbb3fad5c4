package store

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo over the *_events tables.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) insert(ctx context.Context, table string, columns []string, values ...any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := sqlite.
		Insert(table).
		Columns(append([]string{"sequence", "timestamp"}, columns...)...).
		Values(append([]any{seqNum, time.Now().UTC()}, values...)...).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s: %w", table, err)
	}
	return nil
}

func (r *eventRepo) AppendLesson(ctx context.Context, data LessonEventData) error {
	return r.insert(ctx, tableLesson,
		[]string{"run_id", "lesson_id", "topic", "action", "score", "detail"},
		data.RunID, data.LessonID, data.Topic, data.Action, data.Score, data.Detail,
	)
}

func (r *eventRepo) AppendAdaptation(ctx context.Context, data AdaptationEventData) error {
	return r.insert(ctx, tableAdaptation,
		[]string{"adaptation_type", "reason"},
		data.Type, data.Reason,
	)
}

func (r *eventRepo) AppendEvaluation(ctx context.Context, data EvaluationEventData) error {
	return r.insert(ctx, tableEvaluation,
		[]string{"topic", "score", "concepts", "answer_length"},
		data.Topic, data.Score, data.Concepts, data.AnswerLength,
	)
}

func (r *eventRepo) LessonEvents(ctx context.Context, lessonID string) ([]LessonEventData, error) {
	return r.lessonEvents(ctx, entsql.EQ("lesson_id", lessonID))
}

func (r *eventRepo) Completions(ctx context.Context) ([]LessonEventData, error) {
	return r.lessonEvents(ctx, entsql.EQ("action", ActionCompleted))
}

func (r *eventRepo) lessonEvents(ctx context.Context, where *entsql.Predicate) ([]LessonEventData, error) {
	query, args := sqlite.
		Select("run_id", "lesson_id", "topic", "action", "score", "detail").
		From(sqlite.Table(tableLesson)).
		Where(where).
		OrderBy("sequence").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lesson events: %w", err)
	}
	defer rows.Close()

	var out []LessonEventData
	for rows.Next() {
		var d LessonEventData
		if err := rows.Scan(&d.RunID, &d.LessonID, &d.Topic, &d.Action, &d.Score, &d.Detail); err != nil {
			return nil, fmt.Errorf("scan lesson event: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// eventSource reads one table into merged events.
type eventSource struct {
	table   string
	kind    string
	columns []string

	// summarize scans the extra columns and describes the row.
	summarize func(scan func(dest ...any) error) (string, error)
}

var eventSources = []eventSource{
	{
		table:   tableLesson,
		kind:    KindLesson,
		columns: []string{"lesson_id", "topic", "action", "score"},
		summarize: func(scan func(dest ...any) error) (string, error) {
			var lessonID, topic, action string
			var score int
			if err := scan(&lessonID, &topic, &action, &score); err != nil {
				return "", err
			}
			if action == ActionCompleted {
				return fmt.Sprintf("%s %s (%s) %d%%", lessonID, action, topic, score), nil
			}
			return fmt.Sprintf("%s %s (%s)", lessonID, action, topic), nil
		},
	},
	{
		table:   tableAdaptation,
		kind:    KindAdaptation,
		columns: []string{"adaptation_type", "reason"},
		summarize: func(scan func(dest ...any) error) (string, error) {
			var typ, reason string
			if err := scan(&typ, &reason); err != nil {
				return "", err
			}
			return typ + ": " + reason, nil
		},
	},
	{
		table:   tableEvaluation,
		kind:    KindEvaluation,
		columns: []string{"topic", "score"},
		summarize: func(scan func(dest ...any) error) (string, error) {
			var topic string
			var score int
			if err := scan(&topic, &score); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s %d%%", topic, score), nil
		},
	},
}

func (r *eventRepo) Recent(ctx context.Context, opts QueryOpts) ([]Event, error) {
	var out []Event
	for _, src := range eventSources {
		events, err := r.query(ctx, src, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, events...)
	}

	slices.SortFunc(out, func(a, b Event) int { return cmp.Compare(b.Sequence, a.Sequence) })
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *eventRepo) query(ctx context.Context, src eventSource, opts QueryOpts) ([]Event, error) {
	sel := sqlite.
		Select(append([]string{"sequence", "timestamp"}, src.columns...)...).
		From(sqlite.Table(src.table)).
		OrderBy(entsql.Desc("sequence"))
	if p := filter(opts); p != nil {
		sel.Where(p)
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", src.table, err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		ev := Event{Kind: src.kind}
		summary, err := src.summarize(func(dest ...any) error {
			return rows.Scan(append([]any{&ev.Sequence, &ev.Timestamp}, dest...)...)
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", src.table, err)
		}
		ev.Summary = summary
		out = append(out, ev)
	}
	return out, rows.Err()
}

func filter(opts QueryOpts) *entsql.Predicate {
	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To.UTC()))
	}
	if len(preds) == 0 {
		return nil
	}
	return entsql.And(preds...)
}
