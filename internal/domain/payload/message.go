package payload

import "strings"

// ParseQuery tokenizes a raw k=v&k=v message into Params.
// Values are kept verbatim (no URL decoding) so that re-joining reproduces
// the signed bytes. Empty segments are skipped and a segment without '='
// becomes a key with an empty value.
func ParseQuery(msg string) *Params {
	p := NewParams()
	for _, seg := range strings.Split(strings.TrimPrefix(msg, "?"), "&") {
		if seg == "" {
			continue
		}
		key, value, _ := strings.Cut(seg, "=")
		p.Set(key, value)
	}
	return p
}
