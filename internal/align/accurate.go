// internal/align/accurate.go
package align

// semiGlobal is the accurate algorithm: dynamic-programming alignment with a
// linear gap penalty, free ends on the reference only. The whole query is
// always consumed, so the reported span differs from the query length only by
// internal indels, never by clipping, and partial placements cannot report
// inflated identity. O(|query| x |reference|) time and space; the matrix is
// allocated fresh per call and owned by the calling worker.
func (e *Engine) semiGlobal(query, ref []byte) Result {
	m, n := len(query), len(ref)
	cols := n + 1
	h := make([]int32, (m+1)*cols)

	sub := func(i, j int) int32 {
		if e.compat(query[i-1], ref[j-1]) {
			return int32(e.params.Match)
		}
		return int32(e.params.Mismatch)
	}
	gap := int32(e.params.Gap)

	// Row 0 stays zero: the alignment may begin at any reference offset for
	// free. Column 0 charges a gap per unconsumed query character.
	for i := 1; i <= m; i++ {
		h[i*cols] = int32(i) * gap
	}
	for i := 1; i <= m; i++ {
		row := i * cols
		prev := row - cols
		for j := 1; j <= n; j++ {
			s := h[prev+j-1] + sub(i, j)
			if up := h[prev+j] + gap; up > s {
				s = up
			}
			if left := h[row+j-1] + gap; left > s {
				s = left
			}
			h[row+j] = s
		}
	}

	// Free end on the reference: the best cell anywhere in the last row.
	// Strict comparison keeps the leftmost end on ties.
	last := m * cols
	best, bj := h[last+1], 1
	for j := 2; j <= n; j++ {
		if h[last+j] > best {
			best, bj = h[last+j], j
		}
	}

	// Traceback until the whole query is accounted for, counting matches and
	// aligned columns.
	var matches, length int
	i, j := m, bj
	for i > 0 {
		cur := h[i*cols+j]
		switch {
		case j > 0 && cur == h[(i-1)*cols+j-1]+sub(i, j):
			if e.compat(query[i-1], ref[j-1]) {
				matches++
			}
			i, j = i-1, j-1
		case cur == h[(i-1)*cols+j]+gap:
			i-- // gap in reference
		default:
			j-- // gap in query
		}
		length++
	}

	return Result{Start: j, End: bj, Matches: matches, Length: length, Score: int(best)}
}
