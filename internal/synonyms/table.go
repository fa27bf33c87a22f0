// Package synonyms loads the curated, domain-partitioned synonym table the
// synonym matcher consults. The table ships as a versioned YAML asset
// embedded in the binary; it is read-only at runtime.
package synonyms

import (
	_ "embed"
	"fmt"
	"sync"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/quizbee/adjudicator/internal/normalize"
)

//go:embed synonyms.yaml
var embeddedTableYAML []byte

// minTableVersion is the oldest synonym-table format this code understands.
// Bump when the YAML layout changes incompatibly.
const minTableVersion = "v1.0.0"

// tableFile is the on-disk YAML layout.
type tableFile struct {
	Version string                `yaml:"version"`
	Domains map[string][][]string `yaml:"domains"`
}

// entry locates one synonym set within the table.
type entry struct {
	domain string
	set    int
}

// Table is an immutable synonym lookup structure. Safe for concurrent use
// after construction.
type Table struct {
	version string
	// sets[domain][i] is the i-th synonym set in that domain, with every
	// member already normalized.
	sets map[string][][]string
	// index maps a normalized term to every set containing it.
	index map[string][]entry
}

var (
	cachedTable *Table
	tableOnce   sync.Once
	tableErr    error
)

// Load parses and caches the embedded synonym table. Subsequent calls
// return the cached table.
func Load() (*Table, error) {
	tableOnce.Do(func() {
		cachedTable, tableErr = Parse(embeddedTableYAML)
	})
	return cachedTable, tableErr
}

// Parse builds a Table from YAML bytes. It rejects tables older than
// minTableVersion or with a malformed version string.
func Parse(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse synonym table: %w", err)
	}
	if !semver.IsValid(f.Version) {
		return nil, fmt.Errorf("synonym table has invalid version %q", f.Version)
	}
	if semver.Compare(f.Version, minTableVersion) < 0 {
		return nil, fmt.Errorf("synonym table version %s is older than minimum supported %s", f.Version, minTableVersion)
	}

	t := &Table{
		version: f.Version,
		sets:    make(map[string][][]string, len(f.Domains)),
		index:   make(map[string][]entry),
	}
	for domain, sets := range f.Domains {
		for _, set := range sets {
			if len(set) < 2 {
				return nil, fmt.Errorf("synonym set in domain %q has fewer than two members", domain)
			}
			normalized := make([]string, 0, len(set))
			for _, term := range set {
				n := normalize.Normalize(term)
				if n == "" {
					continue
				}
				normalized = append(normalized, n)
			}
			if len(normalized) < 2 {
				continue
			}
			i := len(t.sets[domain])
			t.sets[domain] = append(t.sets[domain], normalized)
			for _, n := range normalized {
				t.index[n] = append(t.index[n], entry{domain: domain, set: i})
			}
		}
	}
	return t, nil
}

// Version reports the loaded table's semantic version.
func (t *Table) Version() string { return t.version }

// Size returns the total number of synonym sets across all domains.
func (t *Table) Size() int {
	n := 0
	for _, sets := range t.sets {
		n += len(sets)
	}
	return n
}

// Domains lists the partition names present in the table.
func (t *Table) Domains() []string {
	out := make([]string, 0, len(t.sets))
	for d := range t.sets {
		out = append(out, d)
	}
	return out
}

// SameSet reports whether two normalized terms belong to a common synonym
// set. When domains is non-empty, only sets in those partitions count.
// Returns the domain of the set that matched.
func (t *Table) SameSet(a, b string, domains []string) (bool, string) {
	if a == b {
		return false, ""
	}
	allowed := map[string]bool{}
	for _, d := range domains {
		allowed[d] = true
	}
	for _, ea := range t.index[a] {
		if len(allowed) > 0 && !allowed[ea.domain] {
			continue
		}
		for _, eb := range t.index[b] {
			if ea.domain == eb.domain && ea.set == eb.set {
				return true, ea.domain
			}
		}
	}
	return false, ""
}

// Lookup returns every synonym of the given term, across all domains the
// term appears in. The term itself is excluded.
func (t *Table) Lookup(term string) []string {
	n := normalize.Normalize(term)
	seen := map[string]bool{n: true}
	var out []string
	for _, e := range t.index[n] {
		for _, member := range t.sets[e.domain][e.set] {
			if !seen[member] {
				seen[member] = true
				out = append(out, member)
			}
		}
	}
	return out
}
