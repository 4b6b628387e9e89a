package sweep

import (
	"fmt"
	"regexp"

	"github.com/deploysweep-dev/deploysweep/internal/config"
	"github.com/deploysweep-dev/deploysweep/internal/models"
)

// Criteria decides which deployments are deletion candidates. All filters are
// conjunctive: a deployment must pass every one to be selected.
type Criteria struct {
	// Types is the non-empty set of deployment types under consideration.
	Types map[models.DeploymentType]bool
	// Names restricts selection to exact names when non-empty.
	Names map[string]bool
	// Exclude names are always kept.
	Exclude map[string]bool
	// Match is an optional name predicate. Nil means no pattern filter.
	Match func(string) bool
	// IncludeDev and IncludeProd independently unlock deletion of dev and
	// prod deployments beyond their presence in Types.
	IncludeDev  bool
	IncludeProd bool
}

// NewCriteria validates raw filter inputs and builds a Criteria. An empty
// types list defaults to preview only. The pattern, when given, is compiled
// as an unanchored regular expression.
func NewCriteria(types, names, exclude []string, pattern string, includeDev, includeProd bool) (Criteria, error) {
	c := Criteria{
		Types:       make(map[models.DeploymentType]bool),
		Names:       make(map[string]bool),
		Exclude:     make(map[string]bool),
		IncludeDev:  includeDev,
		IncludeProd: includeProd,
	}

	if len(types) == 0 {
		c.Types[models.TypePreview] = true
	}
	for _, raw := range types {
		t, err := models.ParseType(raw)
		if err != nil {
			return Criteria{}, &config.ConfigError{Msg: err.Error()}
		}
		c.Types[t] = true
	}

	for _, name := range names {
		c.Names[name] = true
	}
	for _, name := range exclude {
		c.Exclude[name] = true
	}

	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Criteria{}, &config.ConfigError{Msg: fmt.Sprintf("invalid --match pattern %q", pattern), Err: err}
		}
		c.Match = re.MatchString
	}

	return c, nil
}
