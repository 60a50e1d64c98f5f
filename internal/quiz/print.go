// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package quiz

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	boldColor      = color.New(color.Bold)
	correctColor   = color.New(color.Bold, color.FgGreen)
	incorrectColor = color.New(color.Bold, color.FgRed)
	luckColor      = color.New(color.Bold, color.FgCyan)
	dimColor       = color.New(color.Faint)
)

// PrintBanner describes the chosen mode and how to leave the session.
func PrintBanner(w io.Writer, mode Mode) {
	fmt.Fprintf(w, "You have chosen %s interrogation mode!\n", boldColor.Sprint(mode.String()))

	fmt.Fprintf(w, "Given a verb in the %s form, you need to enter the %s",
		boldColor.Sprint(mode.From), boldColor.Sprint(mode.To[0]))
	if len(mode.To) > 1 {
		fmt.Fprintf(w, " and the %s", boldColor.Sprint(mode.To[1]))
	}
	fmt.Fprintln(w, " form of a verb.")

	fmt.Fprintf(w, "If you want to %s the program type %s and press enter.\n",
		boldColor.Sprint("exit"), boldColor.Sprint("0 (zero)"))
	luckColor.Fprint(w, "Good luck!\n\n")
}

// printQuestion shows the verb in its source form.
func printQuestion(w io.Writer, q Question) {
	fmt.Fprintf(w, "%s (%s form):\n", q.Prompt(), q.From)
}

// printPrompt asks for the target form.
func printPrompt(w io.Writer, q Question) {
	fmt.Fprintf(w, "%s >> ", q.Target)
}

// printFeedback reports the outcome of one answer.
func printFeedback(w io.Writer, fb Feedback) {
	if fb.Correct {
		correctColor.Fprint(w, "\nCorrect!\n\n")
		return
	}
	incorrectColor.Fprint(w, "\nIncorrect!\n")
	fmt.Fprintf(w, "%s of %s is %s!\n\n",
		boldColor.Sprint(fb.Target), boldColor.Sprint(fb.Verb.Form(fb.From)), boldColor.Sprint(fb.Expected))
}

// PrintStatus prints the final totals and the verbs answered wrongly.
func PrintStatus(w io.Writer, r Result) {
	boldColor.Fprint(w, "\nInterrogation status:\n")
	boldColor.Fprintf(w, "\tTotal questions:   %3d\n", r.Questions)
	correctColor.Fprintf(w, "\tCorrect answers:   %3d\n", r.Correct)
	incorrectColor.Fprintf(w, "\tIncorrect answers: %3d\n", r.Incorrect())

	if len(r.Mistakes) == 0 {
		return
	}
	boldColor.Fprint(w, "\nWorth another look:\n")
	for _, m := range r.Mistakes {
		answer := m.Answer
		if answer == "" {
			answer = "(nothing)"
		}
		fmt.Fprintf(w, "\t%s of %s is %s %s\n",
			m.Target, boldColor.Sprint(m.Verb.Form(m.From)), boldColor.Sprint(m.Expected),
			dimColor.Sprintf("(you typed %s)", answer))
	}
}
