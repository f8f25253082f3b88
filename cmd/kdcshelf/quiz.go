package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/kdc-shelver/internal/quiz"
)

// QuizCmd shows a shuffled quiz and grades the learner's order.
type QuizCmd struct {
	Answer string `name:"answer" help:"Your order as positions, e.g. '2 3 1'; read from stdin when omitted"`
	Seed   uint64 `name:"seed" help:"Seed for a reproducible quiz (overrides the config)"`
}

func (c *QuizCmd) Run(rt *runtime) error {
	templates := rt.cfg.Quiz.Templates
	if len(templates) == 0 {
		templates = quiz.DefaultTemplates()
	}
	seed := rt.cfg.Quiz.Seed
	if c.Seed != 0 {
		seed = c.Seed
	}

	gen, err := quiz.NewGenerator(templates, quiz.NewRand(seed), rt.logger)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	items := gen.Next()

	if _, err := fmt.Fprintln(rt.out, "아래 청구기호를 서가 순서대로 배열하세요:"); err != nil {
		return err
	}
	for i, it := range items {
		if _, err := fmt.Fprintf(rt.out, "%3d. %s\n", i+1, display(it.CallNumber)); err != nil {
			return err
		}
	}

	answer := c.Answer
	if answer == "" {
		if _, err := fmt.Fprintf(rt.out, "\n순서 입력 (예: %s): ", examplePositions(len(items))); err != nil {
			return err
		}
		line, err := bufio.NewReader(rt.in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		answer = strings.TrimSpace(line)
		if _, err := fmt.Fprintln(rt.out); err != nil {
			return err
		}
	}

	positions, err := quiz.ParsePositions(answer)
	if err != nil {
		return err
	}
	ordered, err := quiz.Reorder(items, positions)
	if err != nil {
		return err
	}

	res := quiz.Check(ordered)
	rt.logger.Info("quiz answered", "correct", res.Correct, "items", len(items))

	if _, err := fmt.Fprintf(rt.out, "%s\n\n정답 순서:\n", res.Message); err != nil {
		return err
	}
	for i, it := range res.CorrectOrder {
		if i > 0 {
			if _, err := fmt.Fprintf(rt.out, "     %s\n", rt.shelving.Explain(res.CorrectOrder[i-1].CallNumber, it.CallNumber)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(rt.out, "%3d. %s\n", i+1, display(it.CallNumber)); err != nil {
			return err
		}
	}
	return nil
}

// examplePositions renders "2 3 1"-style sample input for n items.
func examplePositions(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprint((i+1)%n + 1)
	}
	return strings.Join(parts, " ")
}
