package sweep

import "github.com/deploysweep-dev/deploysweep/internal/models"

// IsCandidate reports whether a deployment is selected for deletion. Failing
// any single condition keeps the deployment. Deleting dev or prod deployments
// requires the matching include flag on top of the type being targeted, so a
// stray --type prod alone can never destroy a production environment.
//
// A deployment's default flag is not consulted here; it is surfaced in the
// report for operator visibility only.
func IsCandidate(d models.Deployment, c Criteria) bool {
	if !c.Types[d.Type] {
		return false
	}
	if len(c.Names) > 0 && !c.Names[d.Name] {
		return false
	}
	if c.Exclude[d.Name] {
		return false
	}
	if c.Match != nil && !c.Match(d.Name) {
		return false
	}
	if d.Type == models.TypeProd && !c.IncludeProd {
		return false
	}
	if d.Type == models.TypeDev && !c.IncludeDev {
		return false
	}
	return true
}
