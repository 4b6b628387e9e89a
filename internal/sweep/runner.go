package sweep

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/deploysweep-dev/deploysweep/internal/client"
	"github.com/deploysweep-dev/deploysweep/internal/models"
	"github.com/deploysweep-dev/deploysweep/pkg/printer"
)

// ConfirmToken is the literal string an operator must type before deletions
// proceed. Matching is case-sensitive.
const ConfirmToken = "DELETE"

// ErrAborted is returned when the operator fails the confirmation prompt.
// No deletions are attempted in that case.
var ErrAborted = errors.New("aborted: confirmation mismatch")

// API is the collaborator contract the runner drives. *client.Client
// satisfies it.
type API interface {
	ListDeployments(ctx context.Context, team, project string, opts client.FetchOptions) ([]map[string]any, error)
	DeleteDeployment(ctx context.Context, name string) error
}

// Options configures a single run.
type Options struct {
	Team     string
	Project  string
	Criteria Criteria
	// Apply performs deletions; otherwise the run is a dry-run.
	Apply bool
	// Yes bypasses the interactive confirmation prompt.
	Yes bool
	// Progress shows a spinner during the listing call.
	Progress bool
}

// Failure records one deployment the API refused to delete.
type Failure struct {
	Name string
	Err  error
}

// Result summarizes a completed (or aborted) run.
type Result struct {
	Apply      bool
	Total      int
	Candidates []models.Deployment
	Deleted    []string
	Failures   []Failure
}

// Runner orchestrates one fetch -> filter -> report -> confirm -> delete
// pass. It owns no state between runs; every network call is a blocking
// round-trip and deletions are strictly sequential so each failure stays
// attributable to one name.
type Runner struct {
	API    API
	Out    io.Writer
	ErrOut io.Writer
	In     io.Reader
}

// Run executes the workflow. It returns a non-nil error on listing failure,
// confirmation mismatch, or if any deletion failed; the Result is populated
// in all of those cases except listing failure.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	records, err := r.API.ListDeployments(ctx, opts.Team, opts.Project, client.FetchOptions{ShowProgress: opts.Progress})
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}

	deployments := models.ParseRecords(records)

	res := &Result{Apply: opts.Apply, Total: len(deployments)}
	for _, d := range deployments {
		if IsCandidate(d, opts.Criteria) {
			res.Candidates = append(res.Candidates, d)
		}
	}

	r.report(res, opts)

	if !opts.Apply {
		fmt.Fprintln(r.Out, "\nDry-run: nothing was deleted. Re-run with --apply to delete.")
		return res, nil
	}
	if len(res.Candidates) == 0 {
		fmt.Fprintln(r.Out, "\nNothing to delete.")
		return res, nil
	}

	if !opts.Yes {
		if !r.confirm(len(res.Candidates)) {
			fmt.Fprintln(r.ErrOut, "Aborted: no deployments were deleted.")
			return res, ErrAborted
		}
	}

	fmt.Fprintln(r.Out)
	for _, d := range res.Candidates {
		if err := r.API.DeleteDeployment(ctx, d.Name); err != nil {
			res.Failures = append(res.Failures, Failure{Name: d.Name, Err: err})
			printer.Failuref(r.Out, "Failed to delete %s: %v", d.Name, err)
			continue
		}
		res.Deleted = append(res.Deleted, d.Name)
		printer.Successf(r.Out, "Deleted %s", d.Name)
	}

	if len(res.Failures) > 0 {
		fmt.Fprintf(r.ErrOut, "\n%d of %d deletions failed:\n", len(res.Failures), len(res.Candidates))
		for _, f := range res.Failures {
			fmt.Fprintf(r.ErrOut, "  %s: %v\n", f.Name, f.Err)
		}
		return res, fmt.Errorf("%d of %d deletions failed", len(res.Failures), len(res.Candidates))
	}

	fmt.Fprintf(r.Out, "\nDeleted %d deployment(s).\n", len(res.Deleted))
	return res, nil
}

// report always prints, regardless of mode, so a dry-run shows exactly what
// an apply would do.
func (r *Runner) report(res *Result, opts Options) {
	fmt.Fprintln(r.Out, printer.ModeBanner(opts.Apply))
	fmt.Fprintf(r.Out, "Team: %s  Project: %s\n", opts.Team, opts.Project)
	fmt.Fprintf(r.Out, "Deployments: %d total, %d selected for deletion\n", res.Total, len(res.Candidates))

	if len(res.Candidates) == 0 {
		return
	}

	fmt.Fprintln(r.Out)
	table := printer.NewTablePrinter(r.Out)
	table.SetHeaders("name", "type", "region", "default")
	for _, d := range res.Candidates {
		table.AddRow(d.Name, string(d.Type), printer.EmptyValueOrDefault(d.Region, "-"), printer.FormatDefault(d.IsDefault))
	}
	_ = table.Render()
}

func (r *Runner) confirm(count int) bool {
	fmt.Fprintf(r.Out, "\nType %s to confirm deletion of %d deployment(s): ", ConfirmToken, count)
	reader := bufio.NewReader(r.In)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	return strings.TrimSpace(line) == ConfirmToken
}
