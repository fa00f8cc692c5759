// Package report renders the outcome of a lint run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/paramlint/paramlint/internal/rule"
)

// Report is the result of one lint run.
type Report struct {
	ID          uuid.UUID   `json:"id"`
	GeneratedAt string      `json:"generated_at"`
	Commit      string      `json:"commit,omitempty"`
	Passed      bool        `json:"passed"`
	ExitCode    int         `json:"exit_code"`
	Violations  []Violation `json:"violations"`
	Summary     Summary     `json:"summary"`
}

// Violation is the serialized form of a rule violation.
type Violation struct {
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"end_line"`
	EndColumn int    `json:"end_column"`
	Rule      string `json:"rule"`
	MessageID string `json:"message_id"`
	Message   string `json:"message"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
	Max       int    `json:"max"`
}

// Summary provides aggregate statistics.
type Summary struct {
	FilesAnalyzed   int `json:"files_analyzed"`
	FilesSkipped    int `json:"files_skipped"`
	TotalViolations int `json:"total_violations"`
}

// New assembles a report from the collected violations.
func New(violations []rule.Violation, filesAnalyzed, filesSkipped int, commit string) *Report {
	r := &Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Commit:      commit,
		Passed:      len(violations) == 0,
		Violations:  make([]Violation, 0, len(violations)),
		Summary: Summary{
			FilesAnalyzed:   filesAnalyzed,
			FilesSkipped:    filesSkipped,
			TotalViolations: len(violations),
		},
	}
	if !r.Passed {
		r.ExitCode = 1
	}

	for _, v := range violations {
		r.Violations = append(r.Violations, Violation{
			Path:      v.Path,
			Line:      v.Loc.Start.Line,
			Column:    v.Loc.Start.Column,
			EndLine:   v.Loc.End.Line,
			EndColumn: v.Loc.End.Column,
			Rule:      rule.RuleName,
			MessageID: v.MessageID,
			Message:   v.Message(),
			Name:      v.Name,
			Count:     v.Count,
			Max:       v.Max,
		})
	}

	return r
}

// RenderText writes the human-readable report.
func (r *Report) RenderText(w io.Writer) error {
	for _, v := range r.Violations {
		if _, err := fmt.Fprintf(w, "%s:%d:%d  %s  [%s]\n", v.Path, v.Line, v.Column, v.Message, v.Rule); err != nil {
			return err
		}
	}
	var err error
	if r.Passed {
		_, err = fmt.Fprintf(w, "✓ %d files checked, no problems\n", r.Summary.FilesAnalyzed)
	} else {
		_, err = fmt.Fprintf(w, "\n✗ %d problems in %d files\n", r.Summary.TotalViolations, r.Summary.FilesAnalyzed)
	}
	return err
}

// RenderJSON writes the machine-readable report.
func (r *Report) RenderJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
