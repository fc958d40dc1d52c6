package audit

// Dedupe collapses events sharing an identity key into one representative
// carrying the total occurrence count. Representatives keep first-seen input
// order, so identical input always yields identical output.
func Dedupe(events []Event) []Counted {
	idx := make(map[Key]int, len(events))
	out := make([]Counted, 0, len(events))
	for _, ev := range events {
		k := KeyOf(ev)
		if i, ok := idx[k]; ok {
			out[i].Count++
			continue
		}
		idx[k] = len(out)
		out = append(out, Counted{Event: ev, Count: 1})
	}
	return out
}

// DedupeUnparsed collapses unparsed lines with identical raw text, keeping
// first-seen order. Unlike known events these carry no count annotation;
// they are kept once each for display.
func DedupeUnparsed(lines []*UnparsedLine) []*UnparsedLine {
	seen := make(map[string]struct{}, len(lines))
	out := make([]*UnparsedLine, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.Raw]; ok {
			continue
		}
		seen[l.Raw] = struct{}{}
		out = append(out, l)
	}
	return out
}
