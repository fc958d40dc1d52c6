package audit

import "regexp"

// AttrMap holds the key=value attributes tokenized from one raw audit line.
// It is transient: built per line and consumed immediately by classification.
type AttrMap map[string]string

var (
	ctrlRe = regexp.MustCompile(`[\x00-\x1f]+`)
	attrRe = regexp.MustCompile(`(\S+)=(?:"([^"]+)"|(\S+))`)
)

// Tokenize extracts key=value and key="value" pairs from one raw line.
// Control characters are squashed to single spaces first, quoted values are
// taken verbatim with the quotes stripped, and a repeated key keeps its last
// value. No keys are required here; that is the classifier's job.
func Tokenize(line string) AttrMap {
	line = ctrlRe.ReplaceAllString(line, " ")
	out := make(AttrMap)
	for _, m := range attrRe.FindAllStringSubmatch(line, -1) {
		val := m[2]
		if val == "" {
			val = m[3]
		}
		out[m[1]] = val
	}
	return out
}
