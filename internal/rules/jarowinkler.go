package rules

// jaroWinkler computes the Jaro-Winkler similarity of a and b per §4.4.3's
// formula. There is no corpus precedent for this arithmetic; it is
// implemented directly from the spec.
func jaroWinkler(a, b string) float64 {
	j := jaro(a, b)
	if j == 0 {
		return 0
	}
	prefix := commonPrefixLen(a, b, 4)
	p := 0.1 * float64(prefix)
	boosted := j + p*(1-j)
	if boosted > 1 {
		return 1
	}
	return boosted
}

func jaro(a, b string) float64 {
	if a == b {
		if len(a) == 0 {
			return 0
		}
		return 1
	}
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}

	matchDistance := maxInt(la, lb)/2 - 1
	if matchDistance < 0 {
		matchDistance = 0
	}

	aMatches := make([]bool, la)
	bMatches := make([]bool, lb)

	matches := 0
	for i := 0; i < la; i++ {
		start := maxInt(0, i-matchDistance)
		end := minInt(i+matchDistance+1, lb)
		for j := start; j < end; j++ {
			if bMatches[j] || a[i] != b[j] {
				continue
			}
			aMatches[i] = true
			bMatches[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	var transpositions int
	k := 0
	for i := 0; i < la; i++ {
		if !aMatches[i] {
			continue
		}
		for !bMatches[k] {
			k++
		}
		if a[i] != b[k] {
			transpositions++
		}
		k++
	}
	t := float64(transpositions) / 2

	m := float64(matches)
	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3
}

func commonPrefixLen(a, b string, limit int) int {
	n := minInt(minInt(len(a), len(b)), limit)
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
