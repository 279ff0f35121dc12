package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	tableEvents  = "quiz_events"
	tableResults = "quiz_results"
)

var (
	// eventsColumns holds the columns of the quiz_events table.
	eventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt, Default: -1},
		{Name: "option_index", Type: field.TypeInt, Default: -1},
	}
	eventsTable = &schema.Table{
		Name:       tableEvents,
		Columns:    eventsColumns,
		PrimaryKey: []*schema.Column{eventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "quizevent_attempt_id", Columns: []*schema.Column{eventsColumns[3]}},
			{Name: "quizevent_action", Columns: []*schema.Column{eventsColumns[4]}},
		},
	}

	// resultsColumns holds the columns of the quiz_results table.
	resultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "rank", Type: field.TypeInt},
		{Name: "tag", Type: field.TypeString},
		{Name: "area_name", Type: field.TypeString},
		{Name: "icon", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "timestamp", Type: field.TypeTime},
	}
	resultsTable = &schema.Table{
		Name:       tableResults,
		Columns:    resultsColumns,
		PrimaryKey: []*schema.Column{resultsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "quizresult_attempt_id_rank", Unique: true, Columns: []*schema.Column{resultsColumns[1], resultsColumns[2]}},
		},
	}

	tables = []*schema.Table{eventsTable, resultsTable}
)

// migrate creates or updates the tables with ent's schema migrator.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	return m.Create(ctx, tables...)
}
