// Package filter implements the client-side record filter: a stable,
// order-preserving subsequence selection over an already-fetched record
// list. Every supplied non-empty criterion must match case-insensitively
// as a substring; empty criteria impose no constraint.
//
// The "no criteria" default differs by call site and both behaviors are
// deliberate: the dedicated search view shows nothing until a criterion is
// entered (to avoid dumping the entire history), while the per-bean detail
// view shows the full set. Callers express that choice via Criteria.Empty.
package filter

import (
	"strings"

	"github.com/Ivaneres/coffee/internal/api"
)

// Criteria is a set of free-text filters. Machine and Grinder match record
// fields directly; BeanVariety and BeanRoaster match the record's bean,
// resolved through a lookup by bean id.
type Criteria struct {
	Machine     string
	Grinder     string
	BeanVariety string
	BeanRoaster string
}

// Empty reports whether no criterion is supplied (whitespace-only counts
// as empty).
func (c Criteria) Empty() bool {
	return strings.TrimSpace(c.Machine) == "" &&
		strings.TrimSpace(c.Grinder) == "" &&
		strings.TrimSpace(c.BeanVariety) == "" &&
		strings.TrimSpace(c.BeanRoaster) == ""
}

// Query converts the criteria to server-side list filters, trimming each
// field and omitting empty ones. Returns nil when no criterion is set.
func (c Criteria) Query() *api.RecordQuery {
	if c.Empty() {
		return nil
	}
	return &api.RecordQuery{
		Machine:     strings.TrimSpace(c.Machine),
		Grinder:     strings.TrimSpace(c.Grinder),
		BeanVariety: strings.TrimSpace(c.BeanVariety),
		BeanRoaster: strings.TrimSpace(c.BeanRoaster),
	}
}

// Records returns the subsequence of records matching every non-empty
// criterion, preserving input order. Bean-derived criteria consult the
// beans lookup; a record whose bean is missing from the lookup never
// matches a bean criterion but passes through when none is set.
func Records(records []api.EspressoRecord, beans map[int]api.Bean, c Criteria) []api.EspressoRecord {
	machine := strings.TrimSpace(c.Machine)
	grinder := strings.TrimSpace(c.Grinder)
	variety := strings.TrimSpace(c.BeanVariety)
	roaster := strings.TrimSpace(c.BeanRoaster)

	out := make([]api.EspressoRecord, 0, len(records))
	for _, rec := range records {
		if machine != "" && !containsFold(rec.Machine, machine) {
			continue
		}
		if grinder != "" && !containsFold(rec.Grinder, grinder) {
			continue
		}
		if variety != "" || roaster != "" {
			bean, ok := beans[rec.BeanID]
			if !ok {
				continue
			}
			if variety != "" && !containsFold(bean.Variety, variety) {
				continue
			}
			if roaster != "" && !matchOptional(bean.Roaster, roaster) {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

// BeanLookup builds the bean-id index used to resolve bean-derived
// criteria and to annotate search results.
func BeanLookup(beans []api.Bean) map[int]api.Bean {
	lookup := make(map[int]api.Bean, len(beans))
	for _, bean := range beans {
		lookup[bean.ID] = bean
	}
	return lookup
}

// containsFold reports whether needle occurs in hay, ignoring case.
func containsFold(hay, needle string) bool {
	return strings.Contains(strings.ToLower(hay), strings.ToLower(needle))
}

// matchOptional matches an optional field; an absent field never matches.
func matchOptional(field *string, needle string) bool {
	return field != nil && containsFold(*field, needle)
}
