package quiz

import (
	"errors"
	"testing"
)

func TestResults_AllFirstOptions(t *testing.T) {
	e := NewEngine(testCatalog(t))
	answerAll(t, e, 0, 0, 0, 0, 0)

	results, err := e.Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2: %+v", len(results), results)
	}

	want := []struct {
		name  string
		score int
	}{
		{"Ingeniería y Tecnología", 5},
		{"Ciencias Básicas", 4},
	}
	for i, w := range want {
		if results[i].Area.Name != w.name || results[i].Score != w.score {
			t.Errorf("results[%d] = %s/%d, want %s/%d",
				i, results[i].Area.Name, results[i].Score, w.name, w.score)
		}
	}
}

func TestResults_TieKeepsFirstOccurrence(t *testing.T) {
	tests := []struct {
		name  string
		picks []int
		want  []string
	}{
		{
			// artes 5, diseño 4; salud/educacion never touched.
			name:  "creative",
			picks: []int{1, 1, 1, 1, 1},
			want:  []string{"artes", "diseño"},
		},
		{
			// salud 5, educacion 4, ciencias 1.
			name:  "care",
			picks: []int{2, 2, 2, 2, 2},
			want:  []string{"salud", "educacion", "ciencias"},
		},
		{
			// derecho 5, administracion 3, ciencias 1, educacion 1:
			// ciencias appeared before educacion so it takes third place.
			name:  "law",
			picks: []int{3, 3, 3, 3, 3},
			want:  []string{"derecho", "administracion", "ciencias"},
		},
		{
			// educacion 2 and derecho 2 lead; every other tag has 1 and
			// ingenieria was seen first.
			name:  "ties",
			picks: []int{0, 1, 2, 3, 3},
			want:  []string{"educacion", "derecho", "ingenieria"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(testCatalog(t))
			answerAll(t, e, tt.picks...)

			results, err := e.Results()
			if err != nil {
				t.Fatalf("Results: %v", err)
			}
			if len(results) != len(tt.want) {
				t.Fatalf("got %d results %+v, want %v", len(results), results, tt.want)
			}
			for i, tag := range tt.want {
				if results[i].Area.Tag != tag {
					t.Errorf("results[%d] = %q (%d), want %q", i, results[i].Area.Tag, results[i].Score, tag)
				}
			}
		})
	}
}

func TestResults_Invariants(t *testing.T) {
	// Every combination of the first two options across five questions.
	for mask := 0; mask < 1<<5; mask++ {
		e := NewEngine(testCatalog(t))
		distinct := make(map[string]bool)
		for q := 0; q < 5; q++ {
			pick := (mask >> q) & 1
			for _, tag := range e.Catalog().questions[q].Options[pick].Tags {
				distinct[tag] = true
			}
			answerAll(t, e, pick)
		}

		results, err := e.Results()
		if err != nil {
			t.Fatalf("Results: %v", err)
		}
		if want := min(MaxResults, len(distinct)); len(results) != want {
			t.Errorf("mask %05b: len = %d, want %d", mask, len(results), want)
		}
		for i := 1; i < len(results); i++ {
			if results[i].Score > results[i-1].Score {
				t.Errorf("mask %05b: scores not non-increasing: %+v", mask, results)
			}
		}
		for _, r := range results {
			if r.Score > e.TotalQuestions() {
				t.Errorf("mask %05b: score %d exceeds question count", mask, r.Score)
			}
		}
	}
}

func TestResults_NotComplete(t *testing.T) {
	e := NewEngine(testCatalog(t))
	answerAll(t, e, 0, 0)

	if _, err := e.Results(); !errors.Is(err, ErrNotComplete) {
		t.Errorf("err = %v, want ErrNotComplete", err)
	}
}

func TestResults_UnknownTag(t *testing.T) {
	c := testCatalog(t)
	delete(c.areas, "ciencias")
	e := NewEngine(c)
	answerAll(t, e, 0, 0, 0, 0, 0)

	if _, err := e.Results(); !errors.Is(err, ErrUnknownTag) {
		t.Errorf("err = %v, want ErrUnknownTag", err)
	}
}

func TestScoreFraction(t *testing.T) {
	tests := []struct {
		score, total int
		want         float64
	}{
		{5, 5, 1},
		{4, 5, 0.8},
		{0, 5, 0},
		{7, 5, 1},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := ScoreFraction(tt.score, tt.total); got != tt.want {
			t.Errorf("ScoreFraction(%d, %d) = %f, want %f", tt.score, tt.total, got, tt.want)
		}
	}
}
