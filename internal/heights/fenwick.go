package heights

// fenwick is a binary indexed tree over item heights. Index 0 is unused
type fenwick []int

// newFenwick builds a tree of n items of height fill in O(n)
func newFenwick(n, fill int) fenwick {
	f := make(fenwick, n+1)
	for i := 1; i <= n; i++ {
		f[i] += fill
		if j := i + (i & -i); j <= n {
			f[j] += f[i]
		}
	}
	return f
}

func (f fenwick) len() int {
	return max(0, len(f)-1)
}

// add adds delta to the height of item i
func (f fenwick) add(i, delta int) {
	for j := i + 1; j < len(f); j += j & -j {
		f[j] += delta
	}
}

// sum returns the total height of items [0, i)
func (f fenwick) sum(i int) int {
	total := 0
	for j := min(i, f.len()); j > 0; j -= j & -j {
		total += f[j]
	}
	return total
}

// search returns the smallest item index i such that sum(i+1) >= target, or len() if the whole tree sums to less
func (f fenwick) search(target int) int {
	n := f.len()
	step := 1
	for step*2 <= n {
		step *= 2
	}
	pos, remaining := 0, target
	for ; step > 0; step /= 2 {
		if next := pos + step; next <= n && f[next] < remaining {
			pos = next
			remaining -= f[next]
		}
	}
	return pos
}
