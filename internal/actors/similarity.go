package actors

// Ratio calculates a sequence-similarity score between two strings.
// Returns a value between 0.0 (completely different) and 1.0 (identical).
// The formula is: 2 * matched / (len(a) + len(b)), where matched is the
// total length of the longest matching blocks found recursively on either
// side of each block (Ratcliff/Obershelp gestalt matching).
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0 // Two empty strings are identical
	}
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}

	m := newSequenceMatcher(a, b)
	matched := m.matchedLength(0, len(a), 0, len(b))
	return 2.0 * float64(matched) / float64(total)
}

// sequenceMatcher indexes b so that longest-block searches over substrings
// of a run in O(len(a) * occurrences) rather than O(len(a) * len(b)).
type sequenceMatcher struct {
	a, b string
	b2j  map[byte][]int // byte -> ascending positions in b
}

func newSequenceMatcher(a, b string) *sequenceMatcher {
	b2j := make(map[byte][]int, len(b))
	for j := 0; j < len(b); j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}
	return &sequenceMatcher{a: a, b: b, b2j: b2j}
}

// matchedLength returns the total length of matching blocks between
// a[alo:ahi] and b[blo:bhi].
func (m *sequenceMatcher) matchedLength(alo, ahi, blo, bhi int) int {
	i, j, size := m.findLongestMatch(alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	// Recurse on the unmatched regions to the left and right of the block
	return size +
		m.matchedLength(alo, i, blo, j) +
		m.matchedLength(i+size, ahi, j+size, bhi)
}

// findLongestMatch finds the longest matching block in a[alo:ahi] and b[blo:bhi].
// Of all maximal blocks it returns the one starting earliest in a, and of those
// the one starting earliest in b.
func (m *sequenceMatcher) findLongestMatch(alo, ahi, blo, bhi int) (int, int, int) {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] is the length of the longest match ending at a[i-1], b[j]
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestsize
}
