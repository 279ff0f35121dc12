package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo with ent's SQL builder and the global
// sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(tableEvents).
		Columns("sequence", "timestamp", "attempt_id", "action", "question_index", "option_index").
		Values(seqNum, time.Now().UTC(), data.AttemptID, data.Action, data.QuestionIndex, data.OptionIndex).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) AttemptEvents(ctx context.Context, attemptID string) ([]QuizEventRecord, error) {
	b := builder()
	query, args := b.Select("sequence", "timestamp", "attempt_id", "action", "question_index", "option_index").
		From(b.Table(tableEvents)).
		Where(entsql.EQ("attempt_id", attemptID)).
		OrderBy("sequence").
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}
	defer rows.Close()

	var events []QuizEventRecord
	for rows.Next() {
		var e QuizEventRecord
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.AttemptID, &e.Action, &e.QuestionIndex, &e.OptionIndex); err != nil {
			return nil, fmt.Errorf("scan quiz event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) Clear(ctx context.Context) error {
	for _, table := range []string{tableResults, tableEvents} {
		query, args := builder().Delete(table).Query()
		if err := r.drv.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
