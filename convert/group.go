package convert

import (
	"reflect"

	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

// Cross-field correlation. Group ids (altRepGroup, nameTitleGroup, MARC $6
// occurrence numbers) exist only during a mapping pass: the side tables built
// here are consumed to rewrite values and then discarded, and the canonical
// model carries no group-id field.

// grouped pairs a mapped value with its transient correlation state.
type grouped struct {
	group   string // altRepGroup id, "" when ungrouped
	ntg     string // nameTitleGroup id, titles only
	primary bool   // usage="primary" on the source field
	value   cocina.DescriptiveValue
}

// collapseAltRep merges values sharing an altRepGroup id into a single value
// whose parallelValue holds each variant in source order. A group id with no
// counterpart degrades to an ungrouped value with a warning. The member that
// was flagged primary sets status "primary" on the collapsed entry. The
// returned map carries the nameTitleGroup id per output index for the title
// mapper; other categories ignore it.
func collapseAltRep(values []grouped, kind string, n notify.Notifier) ([]cocina.DescriptiveValue, map[int]string) {
	counts := make(map[string]int)
	for _, v := range values {
		if v.group != "" {
			counts[v.group]++
		}
	}
	var (
		out  []cocina.DescriptiveValue
		ntgs = make(map[int]string)
		done = make(map[string]bool)
	)
	add := func(v cocina.DescriptiveValue, ntg string) {
		if ntg != "" {
			ntgs[len(out)] = ntg
		}
		out = append(out, v)
	}
	for _, v := range values {
		switch {
		case v.group == "":
			add(withPrimary(v.value, v.primary), v.ntg)
		case counts[v.group] < 2:
			n.Warn("No matching altRepGroup", notify.Context{
				"type":        kind,
				"altRepGroup": v.group,
			})
			add(withPrimary(v.value, v.primary), v.ntg)
		case done[v.group]:
			// already emitted with the first member of the group
		default:
			done[v.group] = true
			merged := cocina.DescriptiveValue{}
			ntg := v.ntg
			for _, m := range values {
				if m.group != v.group {
					continue
				}
				merged.ParallelValue = append(merged.ParallelValue, m.value)
				if m.primary {
					merged.Status = "primary"
				}
				if ntg == "" {
					ntg = m.ntg
				}
			}
			add(merged, ntg)
		}
	}
	return out, ntgs
}

func withPrimary(v cocina.DescriptiveValue, primary bool) cocina.DescriptiveValue {
	if primary {
		v.Status = "primary"
	}
	return v
}

// groupedContributor pairs a contributor with its transient correlation ids.
type groupedContributor struct {
	altRepGroup    string
	nameTitleGroup string
	contributor    cocina.Contributor
}

// collapseContributorAltRep merges contributors sharing an altRepGroup into
// one contributor whose name is a parallelValue of the variants. Type comes
// from the first member. Roles associate positionally across variants: the
// i-th role of a later variant becomes a parallel rendering of the i-th role
// of the first, and excess roles are dropped. Orphaned group ids degrade with
// a warning, as for plain values.
func collapseContributorAltRep(contributors []groupedContributor, n notify.Notifier) []groupedContributor {
	counts := make(map[string]int)
	for _, c := range contributors {
		if c.altRepGroup != "" {
			counts[c.altRepGroup]++
		}
	}
	var (
		out  []groupedContributor
		done = make(map[string]bool)
	)
	for _, c := range contributors {
		switch {
		case c.altRepGroup == "":
			out = append(out, c)
		case counts[c.altRepGroup] < 2:
			n.Warn("No matching altRepGroup", notify.Context{
				"type":        "name",
				"altRepGroup": c.altRepGroup,
			})
			c.altRepGroup = ""
			out = append(out, c)
		case done[c.altRepGroup]:
		default:
			done[c.altRepGroup] = true
			merged := c.contributor
			var parallel []cocina.DescriptiveValue
			for _, m := range contributors {
				if m.altRepGroup != c.altRepGroup {
					continue
				}
				if len(m.contributor.Name) > 0 {
					parallel = append(parallel, m.contributor.Name[0])
				}
				if m.contributor.Status == "primary" {
					merged.Status = "primary"
				}
				if len(parallel) > 1 {
					merged.Role = mergeRoles(merged.Role, m.contributor.Role)
				}
			}
			merged.Name = []cocina.DescriptiveValue{{ParallelValue: parallel}}
			out = append(out, groupedContributor{
				nameTitleGroup: c.nameTitleGroup,
				contributor:    merged,
			})
		}
	}
	return out
}

// mergeRoles folds a variant's roles into the merged contributor's roles by
// position. A variant role identical to its counterpart is absorbed; a
// differing one turns the counterpart into a parallel value. Roles past the
// end of the merged list are dropped.
func mergeRoles(merged, variant []cocina.DescriptiveValue) []cocina.DescriptiveValue {
	for i, role := range variant {
		if i >= len(merged) {
			break
		}
		if reflect.DeepEqual(merged[i], role) {
			continue
		}
		if len(merged[i].ParallelValue) > 0 {
			merged[i].ParallelValue = append(merged[i].ParallelValue, role)
			continue
		}
		merged[i] = cocina.DescriptiveValue{
			ParallelValue: []cocina.DescriptiveValue{merged[i], role},
		}
	}
	return merged
}

// linkNameTitles attaches an "associated name" note to every uniform title
// that shares a nameTitleGroup id with a contributor. The contributor stays
// in the top-level contributor list. A title referencing a group with no
// matching name keeps its shape and produces a warning.
func linkNameTitles(titles []cocina.DescriptiveValue, titleGroups map[int]string, contributors []groupedContributor, n notify.Notifier) []cocina.DescriptiveValue {
	byGroup := make(map[string]cocina.Contributor)
	for _, c := range contributors {
		if c.nameTitleGroup != "" {
			if _, ok := byGroup[c.nameTitleGroup]; !ok {
				byGroup[c.nameTitleGroup] = c.contributor
			}
		}
	}
	for i := range titles {
		group, ok := titleGroups[i]
		if !ok || group == "" {
			continue
		}
		contrib, ok := byGroup[group]
		if !ok {
			n.Warn("Name not found for title group", notify.Context{
				"nameTitleGroup": group,
				"title":          cocina.FlatTitle(titles[i]),
			})
			continue
		}
		if len(contrib.Name) == 0 {
			continue
		}
		note := contrib.Name[0]
		note.Type = "associated name"
		titles[i].Note = append(titles[i].Note, note)
	}
	return titles
}

// matchNameTitle re-derives name-title association for the reverse
// direction: the canonical model has no group ids, so a title's "associated
// name" note is matched against contributor names by exact structural
// equality on value or structuredValue, ignoring usage and position.
func matchNameTitle(note cocina.DescriptiveValue, contributors []cocina.Contributor) int {
	for i, c := range contributors {
		for _, name := range c.Name {
			if sameNameValue(name, note) {
				return i
			}
		}
	}
	return -1
}

func sameNameValue(a, b cocina.DescriptiveValue) bool {
	if a.Value != "" || b.Value != "" {
		return a.Value == b.Value
	}
	return len(a.StructuredValue) > 0 &&
		reflect.DeepEqual(stripStatus(a.StructuredValue), stripStatus(b.StructuredValue))
}

func stripStatus(values []cocina.DescriptiveValue) []cocina.DescriptiveValue {
	out := make([]cocina.DescriptiveValue, len(values))
	for i, v := range values {
		v.Status = ""
		out[i] = v
	}
	return out
}
