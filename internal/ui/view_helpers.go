// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"ir-verbs/internal/quiz"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// --- View Helpers ---

// layout stacks the header, the bordered body and the footer.
func (m *model) layout(body, footer string) string {
	header := titleStyle.Render("Irregular verbs") + "  " + dimStyle.Render(m.opts.Mode.String())

	content := mainContentBorderStyle
	if m.width > 2 {
		content = content.Width(m.width - 2)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content.Render(body), footer)
}

// renderFooter formats key bindings as "key desc | key desc".
func renderFooter(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, footerSeparatorStyle.Render(" | "))
}

// renderFeedback describes the outcome of one answer.
func renderFeedback(fb quiz.Feedback) string {
	if fb.Correct {
		return successStyle.Render("Correct!")
	}
	return incorrectStyle.Render("Incorrect!") + " " +
		fmt.Sprintf("%s of %s is %s!", fb.Target, verbStyle.Render(fb.Verb.Form(fb.From)), verbStyle.Render(fb.Expected))
}

// --- State-Specific View Renderers ---
// These functions generate the body and footer content for specific UI states.

func (m *model) renderLoadingView() (string, string) {
	body := m.spinner.View() + statusStyle.Render(" Loading verbs...")
	return body, renderFooter(m.keymap.Abort)
}

func (m *model) renderAskingView() (string, string) {
	var b strings.Builder
	q := m.engine.Question()
	r := m.engine.Result()

	fmt.Fprintf(&b, "%s\n\n", dimStyle.Render(fmt.Sprintf("Question %d of %d · %d correct so far", q.Number, q.Total, r.Correct)))

	if m.last != nil {
		b.WriteString(renderFeedback(*m.last) + "\n\n")
	}

	fmt.Fprintf(&b, "%s %s\n", verbStyle.Render(q.Prompt()), formStyle.Render("("+q.From.String()+" form)"))
	b.WriteString(m.input.View())

	footer := renderFooter(m.keymap.Submit, m.keymap.Abort) +
		dimStyle.Render(fmt.Sprintf("  (or type %d)", m.engine.ExitCode()))
	return b.String(), footer
}

func (m *model) renderSummaryView() (string, string) {
	var b strings.Builder

	if m.last != nil && !m.result.Aborted {
		b.WriteString(renderFeedback(*m.last) + "\n\n")
	}

	if m.result.Aborted {
		b.WriteString(statusStyle.Render("Session ended early.") + "\n\n")
	} else {
		b.WriteString(luckStyle.Render("You went through every verb!") + "\n\n")
	}

	b.WriteString(verbStyle.Render("Interrogation status:") + "\n")
	fmt.Fprintf(&b, "  Total questions:   %3d\n", m.result.Questions)
	b.WriteString(successStyle.Render(fmt.Sprintf("  Correct answers:   %3d", m.result.Correct)) + "\n")
	b.WriteString(incorrectStyle.Render(fmt.Sprintf("  Incorrect answers: %3d", m.result.Incorrect())) + "\n")

	if len(m.result.Mistakes) > 0 {
		b.WriteString("\n" + verbStyle.Render("Worth another look:") + "\n")
		for i, mk := range m.result.Mistakes {
			if i == maxMistakesShown {
				fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("...and %d more", len(m.result.Mistakes)-i)))
				break
			}
			fmt.Fprintf(&b, "  %s of %s is %s\n", mk.Target, verbStyle.Render(mk.Verb.Form(mk.From)), verbStyle.Render(mk.Expected))
		}
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}

	return strings.TrimRight(b.String(), "\n"), renderFooter(m.keymap.Quit)
}

func (m *model) renderLoadErrorView() (string, string) {
	body := errorStyle.Render(fmt.Sprintf("Could not load verbs: %v", m.err))
	return body, renderFooter(m.keymap.Quit)
}
