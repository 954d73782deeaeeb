package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adilsezer/lithuaningo-sub000/internal/session"
	"github.com/adilsezer/lithuaningo-sub000/internal/ui/components"
	"github.com/adilsezer/lithuaningo-sub000/internal/ui/theme"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play today's quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		user := userFlag(cmd)
		s, err := a.Engine.Load(cmd.Context(), session.UserData{ID: user})
		if errors.Is(err, session.ErrNoLearnedSentences) {
			fmt.Fprintln(cmd.OutOrStdout(), theme.Hint.Render(
				"No learned sentences yet. Mark some with: lithuaningo learn <sentence-id>..."))
			return nil
		}
		if err != nil {
			return err
		}
		return playSession(cmd.Context(), s, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// playSession drives s from line input until it completes, the input ends
// or the learner types "q".
func playSession(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	lines := bufio.NewScanner(in)
	read := func() (string, bool) {
		if !lines.Scan() {
			return "", false
		}
		text := strings.TrimSpace(lines.Text())
		return text, text != "q"
	}

	for {
		st := s.State()
		switch st.Phase {
		case session.PhaseCompleted:
			fmt.Fprintln(out, components.SummaryView(s.Summary(), components.CardWidth))
			return nil

		case session.PhaseActive, session.PhaseReviewActive:
			card := components.QuestionCard{
				Question: s.Current(),
				Done:     st.QuestionIndex,
				Total:    len(s.Questions()),
				Review:   st.Phase == session.PhaseReviewActive,
				Pass:     st.ReviewPass,
			}
			if card.Review {
				card.Done, card.Total = st.ReviewIndex, len(s.Incorrect())
			}
			fmt.Fprintln(out, card.View())
			fmt.Fprint(out, "> ")

			answer, ok := read()
			if !ok {
				return nil
			}
			if answer == "" {
				continue
			}
			res, err := s.Answer(ctx, answer)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, components.Feedback(res))

		case session.PhaseContinuePrompt:
			fmt.Fprint(out, theme.Hint.Render("Press Enter to continue"))
			if _, ok := read(); !ok {
				return nil
			}
			if exp, ok := s.Explanation(); ok {
				fmt.Fprintln(out, theme.Subtitle.Render(exp.Summary))
				if exp.GrammarNote != "" {
					fmt.Fprintln(out, theme.Hint.Render(exp.GrammarNote))
				}
			}
			if err := s.Continue(ctx); err != nil {
				return err
			}

		case session.PhaseReviewPrompt:
			fmt.Fprintf(out, "%s %s",
				theme.Incorrect.Render(fmt.Sprintf("%d to review.", len(s.Incorrect()))),
				theme.Hint.Render("Press Enter to go over them again"))
			if _, ok := read(); !ok {
				return nil
			}
			if err := s.Continue(ctx); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unexpected quiz phase %s", st.Phase)
		}
	}
}
