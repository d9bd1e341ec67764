package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/aegraph/pkg/graph"
	"github.com/aretw0/aegraph/pkg/proof"
	"github.com/aretw0/aegraph/pkg/rules"
)

// MovesMarkdown renders the legal moves on g as a markdown table. The
// Target column shows the member each move removes.
func MovesMarkdown(g *graph.Graph, moves []rules.Move) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Graph** `%s`\n\n", g)
	if len(moves) == 0 {
		b.WriteString("_No legal moves._\n")
		return b.String()
	}

	b.WriteString("| # | Rule | Path | Target |\n")
	b.WriteString("|---|------|------|--------|\n")
	for i, m := range moves {
		target := ""
		if member, err := g.Resolve(m.Path); err == nil {
			target = "`" + member.String() + "`"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, m.Rule, m.Path, target)
	}
	return b.String()
}

// ReportMarkdown renders a proof report as a numbered derivation.
func ReportMarkdown(r *proof.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Premise** `%s`\n\n", r.Premise)
	for _, s := range r.Steps {
		mark := ""
		if !s.Sound {
			mark = " (unsound)"
		}
		fmt.Fprintf(&b, "%d. %s: `%s`%s\n", s.Index, s.Move, s.Result, mark)
	}
	if len(r.Steps) > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "**Goal** `%s`\n\n", r.Goal)

	switch {
	case r.Proven():
		b.WriteString("Goal reached.\n")
	case !r.Complete:
		fmt.Fprintf(&b, "Stopped at `%s`.\n", r.Final)
	default:
		fmt.Fprintf(&b, "Goal not reached, ended at `%s`.\n", r.Final)
	}
	return b.String()
}
