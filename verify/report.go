package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sarchlab/aoc2019/core"
	"github.com/sarchlab/aoc2019/program"
)

// VerificationReport represents a complete verification report
type VerificationReport struct {
	Words         int
	LintIssues    []Issue
	StructIssues  []Issue
	FlowIssues    []Issue
	Status        core.Status
	Steps         int
	Final         *program.Program
	SimulationErr error
	SimulationOK  bool
}

// GenerateReport runs both lint and functional simulation, returns a report.
// Both stages work on copies, so p is left untouched.
func GenerateReport(p *program.Program, stepLimit int) *VerificationReport {
	report := &VerificationReport{
		Words: p.Len(),
	}

	report.LintIssues = RunLint(p.Clone())

	for _, issue := range report.LintIssues {
		if issue.Type == IssueStruct {
			report.StructIssues = append(report.StructIssues, issue)
		} else {
			report.FlowIssues = append(report.FlowIssues, issue)
		}
	}

	report.Final = p.Clone()
	m := core.NewMachine(report.Final).WithStepLimit(stepLimit)
	status, err := m.Run()
	report.Status = status
	report.Steps = m.Result().Steps
	report.SimulationErr = err
	report.SimulationOK = status == core.Success

	return report
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "PROGRAM VERIFICATION REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\nLoaded program of %d words\n", r.Words)

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: STATIC LINT CHECKS")
	fmt.Fprintln(w, separator)

	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "No lint issues found")
	} else {
		fmt.Fprintf(w, "Found %d lint issues:\n", len(r.LintIssues))
		writeIssues(w, dash, "STRUCT", r.StructIssues)
		writeIssues(w, dash, "FLOW", r.FlowIssues)
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: FUNCTIONAL SIMULATION")
	fmt.Fprintln(w, separator)

	switch {
	case r.SimulationOK:
		fmt.Fprintf(w, "Simulation completed successfully after %d steps\n", r.Steps)
		fmt.Fprintf(w, "Value at address 0: %d\n", r.Final.Get(0))
	case r.SimulationErr != nil:
		fmt.Fprintf(w, "Simulation error after %d steps: %v\n", r.Steps, r.SimulationErr)
	default:
		fmt.Fprintf(w, "Simulation stopped with status %s after %d steps\n",
			r.Status, r.Steps)
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "VERIFICATION SUMMARY")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "Lint Result: %d issues detected (%d STRUCT, %d FLOW)\n",
		len(r.LintIssues), len(r.StructIssues), len(r.FlowIssues))
	fmt.Fprintf(w, "Simulation Result: %s\n", r.Status)

	fmt.Fprintln(w)
}

func writeIssues(w io.Writer, dash, title string, issues []Issue) {
	if len(issues) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s ISSUES (%d):\n", title, len(issues))
	fmt.Fprintln(w, dash)

	for _, issue := range issues {
		if issue.IP < 0 {
			fmt.Fprintf(w, "  [program] %s\n", issue.Message)
			continue
		}

		fmt.Fprintf(w, "  [ip=%d +%d] %s\n", issue.IP, issue.Offset, issue.Message)
	}
}

// SaveReportToFile saves the report to a file.
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create report file")
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
