package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/orienta/internal/quiz"
	"github.com/abhisek/orienta/internal/session"
	"github.com/spf13/cobra"
)

const barWidth = 20

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the quiz in plain line mode (no TUI)",
	Long: `Answer the quiz on stdin, one line per answer.

Type the option number to answer, "b" to go back and "q" to quit.
Completed attempts are recorded in the history database unless --no-history is set.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().Bool("no-history", false, "Do not record this attempt")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	c, err := loadContent(cmd)
	if err != nil {
		return err
	}

	var rec session.Recorder
	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		rec = st.EventRepo()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if c.Title != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", c.Title, c.Version)
	}
	sess := session.New(ctx, quiz.NewEngine(c.Catalog), rec)
	return playLines(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), sess)
}

// playLines drives sess from line input until the user quits, declines a
// retry or input ends.
func playLines(ctx context.Context, in io.Reader, out io.Writer, sess *session.Session) error {
	scanner := bufio.NewScanner(in)
	e := sess.Engine()

	for {
		if e.IsComplete() {
			if err := printResults(out, sess); err != nil {
				return err
			}
			fmt.Fprint(out, "\n¿Intentar de nuevo? [s/N]: ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			if ans := strings.ToLower(strings.TrimSpace(scanner.Text())); ans != "s" && ans != "si" && ans != "sí" {
				return nil
			}
			sess.Reset(ctx)
			continue
		}

		q, err := e.CurrentQuestion()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nPregunta %d de %d  %s\n", e.Position()+1, e.TotalQuestions(),
			textBar(e.ProgressFraction(), barWidth))
		fmt.Fprintf(out, "%s\n", q.Prompt)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt.Label)
		}
		fmt.Fprintf(out, "Elige 1-%d", len(q.Options))
		if e.Position() > 0 {
			fmt.Fprint(out, ", b = anterior")
		}
		fmt.Fprint(out, ", q = salir: ")

		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch line {
		case "q":
			return nil
		case "b":
			if err := sess.GoBack(ctx); err != nil {
				fmt.Fprintln(out, lineError(err))
			}
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(out, "Respuesta no válida: %q\n", line)
			continue
		}
		if err := sess.Answer(ctx, n-1); err != nil {
			fmt.Fprintln(out, lineError(err))
		}
	}
}

func printResults(out io.Writer, sess *session.Session) error {
	sum, err := sess.BuildSummary()
	if err != nil {
		return fmt.Errorf("build results: %w", err)
	}
	fmt.Fprintln(out, "\nTus áreas afines:")
	for i, r := range sum.Results {
		fmt.Fprintf(out, "  #%d %s %-32s %s %d/%d\n",
			i+1, r.Area.Icon, r.Area.Name, textBar(sum.Fraction(i), barWidth), r.Score, sum.TotalQuestions)
	}
	return nil
}

func lineError(err error) string {
	switch {
	case errors.Is(err, quiz.ErrInvalidSelection):
		return "Esa opción no existe."
	case errors.Is(err, quiz.ErrNoPreviousQuestion):
		return "Ya estás en la primera pregunta."
	default:
		return err.Error()
	}
}

// textBar renders fraction (0..1) as a fixed-width block bar.
func textBar(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
