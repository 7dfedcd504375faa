// ABOUTME: Sequence alignment for landmark tag sequences
// ABOUTME: Longest-contiguous-matching-block ratio, applied recursively

package diff

// LandmarkSimilarity computes the contiguous-match ratio between two
// landmark sequences: 2*matched/(len(a)+len(b)), where matched is the total
// length of common contiguous blocks found by repeatedly taking the longest
// common run and recursing into the unmatched prefixes and suffixes.
//
// The ratio rewards preserved ordering: reordering the same tags lowers it
// even though the multiset of tags is unchanged. Two empty sequences are
// identical, similarity 1.0.
func LandmarkSimilarity(a, b []string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchedLength(a, b)) / float64(total)
}

// LandmarkDifference is 1 - LandmarkSimilarity, in [0, 1].
func LandmarkDifference(a, b []string) float64 {
	return 1.0 - LandmarkSimilarity(a, b)
}

// matchedLength sums the lengths of common contiguous blocks between a and b.
func matchedLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchedLength(a[:ai], b[:bi]) +
		matchedLength(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the longest run of equal elements appearing
// contiguously in both sequences, preferring the earliest occurrence on
// ties. Single rolling row keeps it O(len(a)*len(b)) time, O(len(b)) space.
func longestCommonBlock(a, b []string) (aStart, bStart, size int) {
	runs := make([]int, len(b))
	for i := range a {
		prev := 0 // runs[j-1] from the previous row
		for j := range b {
			cur := runs[j]
			if a[i] == b[j] {
				runs[j] = prev + 1
				if runs[j] > size {
					size = runs[j]
					aStart = i - size + 1
					bStart = j - size + 1
				}
			} else {
				runs[j] = 0
			}
			prev = cur
		}
	}
	return aStart, bStart, size
}
