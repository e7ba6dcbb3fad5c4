package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names.
const (
	tableAppState    = "app_state"
	tableSnapshots   = "snapshots"
	tableLesson      = "lesson_events"
	tableAdaptation  = "adaptation_events"
	tableEvaluation  = "evaluation_events"
	tableSequence    = "global_sequence"
	maxTextColumnLen = 2147483647
)

var (
	appStateColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Size: 64},
		{Name: "data", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	appStateTable = &schema.Table{
		Name:       tableAppState,
		Columns:    appStateColumns,
		PrimaryKey: []*schema.Column{appStateColumns[0]},
	}

	snapshotColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeBytes},
	}
	snapshotTable = &schema.Table{
		Name:       tableSnapshots,
		Columns:    snapshotColumns,
		PrimaryKey: []*schema.Column{snapshotColumns[0]},
		Indexes: []*schema.Index{
			{Name: "snapshot_sequence", Columns: []*schema.Column{snapshotColumns[1]}},
		},
	}

	lessonColumns = eventColumns(
		&schema.Column{Name: "run_id", Type: field.TypeString, Size: 64},
		&schema.Column{Name: "lesson_id", Type: field.TypeString, Size: 128},
		&schema.Column{Name: "topic", Type: field.TypeString, Size: 64},
		&schema.Column{Name: "action", Type: field.TypeString, Size: 64},
		&schema.Column{Name: "score", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "detail", Type: field.TypeString, Size: maxTextColumnLen, Default: ""},
	)
	lessonTable = eventTable(tableLesson, lessonColumns,
		&schema.Index{Name: "lessonevent_lesson_id", Columns: []*schema.Column{lessonColumns[4]}},
	)

	adaptationColumns = eventColumns(
		&schema.Column{Name: "adaptation_type", Type: field.TypeString, Size: 64},
		&schema.Column{Name: "reason", Type: field.TypeString, Size: maxTextColumnLen},
	)
	adaptationTable = eventTable(tableAdaptation, adaptationColumns)

	evaluationColumns = eventColumns(
		&schema.Column{Name: "topic", Type: field.TypeString, Size: 64},
		&schema.Column{Name: "score", Type: field.TypeInt},
		&schema.Column{Name: "concepts", Type: field.TypeInt},
		&schema.Column{Name: "answer_length", Type: field.TypeInt},
	)
	evaluationTable = eventTable(tableEvaluation, evaluationColumns)

	// Tables are created in this order by Open.
	Tables = []*schema.Table{
		appStateTable,
		snapshotTable,
		lessonTable,
		adaptationTable,
		evaluationTable,
	}
)

// eventColumns prefixes the columns every event table shares:
// id, sequence and timestamp.
func eventColumns(cols ...*schema.Column) []*schema.Column {
	base := []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	return append(base, cols...)
}

func eventTable(name string, cols []*schema.Column, extra ...*schema.Index) *schema.Table {
	indexes := []*schema.Index{
		{Name: name + "_timestamp", Columns: []*schema.Column{cols[2]}},
	}
	return &schema.Table{
		Name:       name,
		Columns:    cols,
		PrimaryKey: []*schema.Column{cols[0]},
		Indexes:    append(indexes, extra...),
	}
}
