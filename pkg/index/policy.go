package index

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

// ExclusionPolicy removes records from the catalog before any user filter.
// It is a content rule, not a filter the user can change.
type ExclusionPolicy struct {
	ExcludedParents  []string `yaml:"excludedParents"`
	ParentMarkers    []string `yaml:"parentMarkers"`
	ExcludedStatuses []string `yaml:"excludedStatuses"`
}

var legacyExcludedParents = []string{
	"End User Computing",
	"Corporate services",
	"Shared IT core services",
	"zBusiness Operations (do not use)",
	"Voice and Data Network",
}

// LegacyPolicy is the exclusion set of the first catalog variant.
func LegacyPolicy() ExclusionPolicy {
	return ExclusionPolicy{
		ExcludedParents:  slices.Clone(legacyExcludedParents),
		ParentMarkers:    []string{"(PP)"},
		ExcludedStatuses: []string{"New"},
	}
}

// DefaultPolicy extends LegacyPolicy with the IT department group.
func DefaultPolicy() ExclusionPolicy {
	p := LegacyPolicy()
	p.ExcludedParents = append(p.ExcludedParents, "IT for the IT department")
	return p
}

// Excludes reports whether the record is hidden. Parent and status
// comparisons are exact, markers are substrings of Parent.
func (p *ExclusionPolicy) Excludes(record *types.CatalogRecord) bool {
	if record.Parent != "" {
		if slices.Contains(p.ExcludedParents, record.Parent) {
			return true
		}
		for _, marker := range p.ParentMarkers {
			if marker != "" && strings.Contains(record.Parent, marker) {
				return true
			}
		}
	}
	return record.OperationalStatus != "" && slices.Contains(p.ExcludedStatuses, record.OperationalStatus)
}

// LoadPolicy reads a yaml policy file. Keys left out of the file keep the
// value from base.
func LoadPolicy(fileName string, base ExclusionPolicy) (ExclusionPolicy, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return base, fmt.Errorf("read policy: %w", err)
	}
	p := base
	if err = yaml.Unmarshal(data, &p); err != nil {
		return base, fmt.Errorf("parse policy %s: %w", fileName, err)
	}
	return p, nil
}
