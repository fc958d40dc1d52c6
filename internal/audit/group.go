package audit

import "sort"

// ProfileGroup is one report bucket: every deduplicated event observed under
// a single profile.
type ProfileGroup struct {
	Profile string
	Events  []Counted
}

// GroupByProfile buckets deduplicated events by profile name. Buckets come
// back in ascending lexicographic profile order; within a bucket events keep
// the order they came in, so reports are reproducible for identical input.
func GroupByProfile(events []Counted) []ProfileGroup {
	byProfile := make(map[string]int)
	out := make([]ProfileGroup, 0)
	for _, c := range events {
		p := c.Event.profile()
		i, ok := byProfile[p]
		if !ok {
			i = len(out)
			byProfile[p] = i
			out = append(out, ProfileGroup{Profile: p})
		}
		out[i].Events = append(out[i].Events, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Profile < out[j].Profile })
	return out
}
