package bitsample

// Patterns returns the overlapping m-bit pattern histogram: entry k is
// the number of stream offsets i in [0, n) whose m-bit window (with
// wrap-around past the end of the stream) equals k, read big-endian.
// m must be in [0, 8]. Results for m in [2, 8] are memoised on the
// sample under a double-checked lock; m in {0, 1} are cheap enough to
// compute directly every call.
func (s *Sample) Patterns(m int) []uint64 {
	if m == 0 {
		return []uint64{}
	}
	if m == 1 {
		return []uint64{uint64(s.bitLength) - s.pop, s.pop}
	}

	s.mu.Lock()
	if s.patterns != nil {
		if h, ok := s.patterns[m]; ok {
			s.mu.Unlock()
			return h
		}
	}
	s.mu.Unlock()

	hist := s.computePatterns(m)

	s.mu.Lock()
	if s.patterns == nil {
		s.patterns = make(map[int][]uint64)
	}
	s.patterns[m] = hist
	s.mu.Unlock()

	return hist
}

// computePatterns slides an m-bit window across the stream, wrapping
// the final m-1 positions around to the start exactly as GM/T
// 0005-2021's Annex H describes, maintaining the window as a running
// integer (shift left, OR in the next bit, mask to m bits) rather than
// re-reading each window from scratch.
func (s *Sample) computePatterns(m int) []uint64 {
	n := s.bitLength
	size := 1 << uint(m)
	mask := size - 1
	hist := make([]uint64, size)
	if n == 0 {
		return hist
	}

	window := 0
	for i := 0; i < m; i++ {
		window = (window << 1) | s.GetBit(i%n)
	}
	hist[window]++
	for i := 1; i < n; i++ {
		bit := s.GetBit((i + m - 1) % n)
		window = ((window << 1) | bit) & mask
		hist[window]++
	}
	return hist
}
