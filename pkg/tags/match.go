package tags

// BestMatch returns the highest-priority tag from the ordered sequence seq
// that is present in the artifact's tag set. The returned rank is the index
// into seq (0 is the best possible match). ok is false when the two sides do
// not intersect.
func BestMatch(seq []Tag, artifact Set) (rank int, tag Tag, ok bool) {
	for i, t := range seq {
		if artifact.Contains(t) {
			return i, t, true
		}
	}
	return 0, Tag{}, false
}

// Supported reports whether any tag in the ordered sequence appears in the
// artifact's tag set.
func Supported(seq []Tag, artifact Set) bool {
	_, _, ok := BestMatch(seq, artifact)
	return ok
}
