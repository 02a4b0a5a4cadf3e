package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"ridgeline.build/ridgeline-web/internal/audit"
)

type palette struct {
	title   lipgloss.Style
	route   lipgloss.Style
	check   lipgloss.Style
	errorS  lipgloss.Style
	warning lipgloss.Style
	ok      lipgloss.Style
	muted   lipgloss.Style
}

// styles binds the palette to w so colors are dropped when w is not a terminal.
func styles(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("170")),
		route:   r.NewStyle().Foreground(lipgloss.Color("75")),
		check:   r.NewStyle().Foreground(lipgloss.Color("241")),
		errorS:  r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Width(8),
		warning: r.NewStyle().Foreground(lipgloss.Color("214")).Width(8),
		ok:      r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func printReport(w io.Writer, report audit.Report) {
	st := styles(w)
	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("Audited %d pages", report.Pages)))
	var errs, warns int
	for _, is := range report.Issues {
		label := st.warning.Render("warning")
		if is.Severity == audit.SeverityError {
			label = st.errorS.Render("error")
			errs++
		} else {
			warns++
		}
		fmt.Fprintf(w, "%s %s %s %s\n", label, st.route.Render(is.Route), st.check.Render("["+string(is.Check)+"]"), is.Message)
	}
	summary := fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)
	if errs == 0 {
		fmt.Fprintln(w, st.ok.Render("ok")+" "+summary)
		return
	}
	fmt.Fprintln(w, st.errorS.UnsetWidth().Render("failed")+" "+summary)
}
