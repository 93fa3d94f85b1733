package content

// Interleave merges the two speaker sequences pairwise as H1[0], H2[0], H1[1], H2[1], ...
// Merging stops at the shorter sequence, dropped reports how many trailing turns were left out.
func Interleave(host1, host2 []string) (merged []string, dropped int) {
	n := min(len(host1), len(host2))
	merged = make([]string, 0, 2*n)
	for i := range n {
		merged = append(merged, host1[i], host2[i])
	}
	return merged, len(host1) + len(host2) - 2*n
}
