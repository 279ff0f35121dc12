package quiz

import (
	"errors"
	"slices"
	"testing"
)

func TestNewEngine_InitialState(t *testing.T) {
	e := NewEngine(testCatalog(t))

	if e.Position() != 0 {
		t.Errorf("Position = %d, want 0", e.Position())
	}
	if len(e.Trail()) != 0 {
		t.Errorf("Trail = %v, want empty", e.Trail())
	}
	if e.IsComplete() {
		t.Error("expected new engine not to be complete")
	}
	if e.TotalQuestions() != 5 {
		t.Errorf("TotalQuestions = %d, want 5", e.TotalQuestions())
	}
}

func TestAnswer_AdvancesPosition(t *testing.T) {
	for opt := 0; opt < 4; opt++ {
		e := NewEngine(testCatalog(t))
		for p := 0; p < e.TotalQuestions()-1; p++ {
			if err := e.Answer(opt); err != nil {
				t.Fatalf("Answer(%d): %v", opt, err)
			}
			if e.Position() != p+1 {
				t.Errorf("Position = %d, want %d", e.Position(), p+1)
			}
			if e.IsComplete() {
				t.Errorf("complete after %d answers", p+1)
			}
		}
	}
}

func TestAnswer_LastQuestionCompletes(t *testing.T) {
	for opt := 0; opt < 4; opt++ {
		e := NewEngine(testCatalog(t))
		answerAll(t, e, 0, 0, 0, 0)

		if err := e.Answer(opt); err != nil {
			t.Fatalf("Answer(%d): %v", opt, err)
		}
		if !e.IsComplete() {
			t.Fatal("expected engine to be complete")
		}
		if e.Position() != 4 {
			t.Errorf("Position = %d, want 4 (unchanged on completion)", e.Position())
		}
		if got := e.Trail(); !slices.Equal(got, []int{0, 0, 0, 0, opt}) {
			t.Errorf("Trail = %v", got)
		}
	}
}

func TestAnswer_OutOfRange(t *testing.T) {
	e := NewEngine(testCatalog(t))

	for _, idx := range []int{99, 4, -1} {
		err := e.Answer(idx)
		if !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("Answer(%d) err = %v, want ErrInvalidSelection", idx, err)
		}
	}
	if e.Position() != 0 {
		t.Errorf("Position = %d, want 0", e.Position())
	}
	if len(e.Trail()) != 0 {
		t.Errorf("Trail = %v, want empty", e.Trail())
	}
}

func TestAnswer_AfterComplete(t *testing.T) {
	e := NewEngine(testCatalog(t))
	answerAll(t, e, 0, 1, 2, 3, 0)

	if err := e.Answer(0); !errors.Is(err, ErrQuizComplete) {
		t.Errorf("err = %v, want ErrQuizComplete", err)
	}
	if len(e.Trail()) != 5 {
		t.Errorf("trail length = %d, want 5", len(e.Trail()))
	}
}

func TestGoBack_AtStart(t *testing.T) {
	e := NewEngine(testCatalog(t))

	if err := e.GoBack(); !errors.Is(err, ErrNoPreviousQuestion) {
		t.Errorf("err = %v, want ErrNoPreviousQuestion", err)
	}
	if e.Position() != 0 || len(e.Trail()) != 0 || e.IsComplete() {
		t.Errorf("state changed: position=%d trail=%v complete=%v", e.Position(), e.Trail(), e.IsComplete())
	}
}

func TestGoBack_RemovesLastAnswer(t *testing.T) {
	e := NewEngine(testCatalog(t))
	answerAll(t, e, 2, 3)

	if err := e.GoBack(); err != nil {
		t.Fatalf("GoBack: %v", err)
	}
	if e.Position() != 1 {
		t.Errorf("Position = %d, want 1", e.Position())
	}
	if got := e.Trail(); !slices.Equal(got, []int{2}) {
		t.Errorf("Trail = %v, want [2]", got)
	}
}

func TestGoBack_RoundTrip(t *testing.T) {
	e := NewEngine(testCatalog(t))
	answerAll(t, e, 1, 3, 2)
	before := e.Trail()

	if err := e.GoBack(); err != nil {
		t.Fatalf("GoBack: %v", err)
	}
	answerAll(t, e, before[len(before)-1])

	if got := e.Trail(); !slices.Equal(got, before) {
		t.Errorf("Trail = %v, want %v", got, before)
	}
	if e.Position() != 3 {
		t.Errorf("Position = %d, want 3", e.Position())
	}
}

func TestGoBack_AfterComplete(t *testing.T) {
	e := NewEngine(testCatalog(t))
	answerAll(t, e, 0, 0, 0, 0, 0)

	if err := e.GoBack(); !errors.Is(err, ErrQuizComplete) {
		t.Errorf("err = %v, want ErrQuizComplete", err)
	}
	if !e.IsComplete() || len(e.Trail()) != 5 {
		t.Error("state changed after rejected GoBack")
	}
}

func TestReset_MatchesFreshEngine(t *testing.T) {
	sequences := [][]int{
		{},
		{1, 2},
		{0, 0, 0, 0, 0},
	}
	for _, seq := range sequences {
		e := NewEngine(testCatalog(t))
		answerAll(t, e, seq...)
		_ = e.GoBack()
		e.Reset()

		fresh := NewEngine(e.Catalog())
		if e.Position() != fresh.Position() ||
			e.IsComplete() != fresh.IsComplete() ||
			!slices.Equal(e.Trail(), fresh.Trail()) ||
			e.ProgressFraction() != fresh.ProgressFraction() {
			t.Errorf("after %v and Reset: position=%d trail=%v complete=%v",
				seq, e.Position(), e.Trail(), e.IsComplete())
		}
	}
}

func TestCurrentQuestion(t *testing.T) {
	e := NewEngine(testCatalog(t))
	answerAll(t, e, 0)

	q, err := e.CurrentQuestion()
	if err != nil {
		t.Fatalf("CurrentQuestion: %v", err)
	}
	if q.Index != 1 || q.Prompt != "Entorno" {
		t.Errorf("question = %d %q, want 1 %q", q.Index, q.Prompt, "Entorno")
	}

	// Mutating the returned copy must not leak into the engine.
	q.Options[0].Tags[0] = "hacked"
	again, _ := e.CurrentQuestion()
	if again.Options[0].Tags[0] != "ingenieria" {
		t.Errorf("catalog mutated through returned question: %v", again.Options[0].Tags)
	}
}

func TestCurrentQuestion_Completed(t *testing.T) {
	e := NewEngine(testCatalog(t))
	answerAll(t, e, 0, 0, 0, 0, 0)

	if _, err := e.CurrentQuestion(); !errors.Is(err, ErrNoCurrentQuestion) {
		t.Errorf("err = %v, want ErrNoCurrentQuestion", err)
	}
}

func TestProgressFraction(t *testing.T) {
	e := NewEngine(testCatalog(t))

	if got := e.ProgressFraction(); got != 0 {
		t.Errorf("start progress = %f, want 0", got)
	}
	answerAll(t, e, 0, 0)
	if got := e.ProgressFraction(); got != 0.4 {
		t.Errorf("progress after 2 = %f, want 0.4", got)
	}
	answerAll(t, e, 0, 0)
	if got := e.ProgressFraction(); got != 0.8 {
		t.Errorf("progress before final answer = %f, want 0.8", got)
	}
	answerAll(t, e, 0)
	if got := e.ProgressFraction(); got != 1.0 {
		t.Errorf("completed progress = %f, want 1.0", got)
	}
}

func TestTrail_ReturnsCopy(t *testing.T) {
	e := NewEngine(testCatalog(t))
	answerAll(t, e, 3)

	tr := e.Trail()
	tr[0] = 0
	if e.Trail()[0] != 3 {
		t.Error("engine trail mutated through Trail()")
	}
}
