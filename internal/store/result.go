package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendResults(ctx context.Context, attemptID string, totalQuestions int, results []ResultData) error {
	if len(results) == 0 {
		return nil
	}

	now := time.Now().UTC()
	ins := builder().Insert(tableResults).
		Columns("attempt_id", "rank", "tag", "area_name", "icon", "score", "total_questions", "timestamp")
	for _, res := range results {
		ins = ins.Values(attemptID, res.Rank, res.Tag, res.AreaName, res.Icon, res.Score, totalQuestions, now)
	}

	query, args := ins.Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save quiz results: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	attempts, err := r.completedAttempts(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return nil, nil
	}

	ids := make([]any, len(attempts))
	index := make(map[string]int, len(attempts))
	for i, a := range attempts {
		ids[i] = a.AttemptID
		index[a.AttemptID] = i
	}

	b := builder()
	query, args := b.Select("attempt_id", "rank", "tag", "area_name", "icon", "score", "total_questions").
		From(b.Table(tableResults)).
		Where(entsql.In("attempt_id", ids...)).
		OrderBy("attempt_id", "rank").
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			attemptID string
			total     int
			res       ResultData
		)
		if err := rows.Scan(&attemptID, &res.Rank, &res.Tag, &res.AreaName, &res.Icon, &res.Score, &total); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		i, ok := index[attemptID]
		if !ok {
			continue
		}
		attempts[i].TotalQuestions = total
		attempts[i].Results = append(attempts[i].Results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz results: %w", err)
	}
	return attempts, nil
}

// completedAttempts lists attempts with a complete event, newest first.
func (r *eventRepo) completedAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	b := builder()
	sel := b.Select("attempt_id", "timestamp").
		From(b.Table(tableEvents)).
		Where(entsql.EQ("action", ActionComplete)).
		OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query completed attempts: %w", err)
	}
	defer rows.Close()

	var attempts []AttemptRecord
	for rows.Next() {
		var a AttemptRecord
		if err := rows.Scan(&a.AttemptID, &a.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan completed attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completed attempts: %w", err)
	}
	return attempts, nil
}
