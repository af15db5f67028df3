package numerics

import (
	"math/cmplx"
	"sync"
)

// FFT computes the discrete Fourier transform of in, a real-valued
// signal of arbitrary length, returning the complex spectrum of the
// same length. There is no pack repository that imports a Go FFT
// library, so this is a hand-rolled radix-2 Cooley-Tukey core wrapped
// in Bluestein's algorithm to support arbitrary (non power-of-two)
// lengths -- the Discrete Fourier kernel is run once per sample and n
// is at most ~10^8, so an O(n log n) transform is comfortably within
// budget even though it is not the fastest possible implementation.
func FFT(in []float64) []complex128 {
	n := len(in)
	x := make([]complex128, n)
	for i, v := range in {
		x[i] = complex(v, 0)
	}
	if n == 0 {
		return x
	}
	if isPowerOfTwo(n) {
		fftRadix2(x)
		return x
	}
	return bluestein(x)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// fftRadix2 performs an in-place iterative Cooley-Tukey FFT; len(x)
// must be a power of two.
func fftRadix2(x []complex128) {
	n := len(x)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}
	for length := 2; length <= n; length <<= 1 {
		ang := -2 * pi / float64(length)
		wlen := cmplx.Rect(1, ang)
		for i := 0; i < n; i += length {
			w := complex(1.0, 0.0)
			for j := 0; j < length/2; j++ {
				u := x[i+j]
				v := x[i+j+length/2] * w
				x[i+j] = u + v
				x[i+j+length/2] = u - v
				w *= wlen
			}
		}
	}
}

const pi = 3.14159265358979323846

// scratchPool is the process-wide pair of Bluestein convolution
// scratch buffers. Samples are evaluated concurrently (exec.Parallel,
// exec.Streaming), so every DFT kernel call on a non-power-of-two
// length contends for it; a single
// holder at a time is enough to amortise allocation on the common
// path without serialising the whole worker pool on a blocking lock.
var scratchPool struct {
	mu   sync.Mutex
	a, b []complex128
}

// acquireScratch returns two zeroed scratch buffers of length m. If
// the pool's mutex is free it resizes and reuses the shared buffers
// (returning pooled=true); under contention it allocates fresh ones
// instead of blocking. Callers must call releaseScratch(pooled) once
// the buffers are no longer needed and must never let a or b escape
// the call that acquired them.
func acquireScratch(m int) (a, b []complex128, pooled bool) {
	if !scratchPool.mu.TryLock() {
		return make([]complex128, m), make([]complex128, m), false
	}
	if cap(scratchPool.a) < m {
		scratchPool.a = make([]complex128, m)
	}
	if cap(scratchPool.b) < m {
		scratchPool.b = make([]complex128, m)
	}
	a = scratchPool.a[:m]
	b = scratchPool.b[:m]
	for i := range a {
		a[i] = 0
	}
	for i := range b {
		b[i] = 0
	}
	return a, b, true
}

func releaseScratch(pooled bool) {
	if pooled {
		scratchPool.mu.Unlock()
	}
}

// bluestein computes the DFT of x (arbitrary length) via the chirp
// z-transform, reducing it to a convolution evaluated with two
// power-of-two FFTs. The convolution operands a and b are pure scratch
// -- discarded once out is populated -- so they are the buffers the
// process-wide pool reuses across calls.
func bluestein(x []complex128) []complex128 {
	n := len(x)
	m := 1
	for m < 2*n-1 {
		m <<= 1
	}

	chirp := make([]complex128, n)
	for k := 0; k < n; k++ {
		ang := -pi * float64(k) * float64(k) / float64(n)
		chirp[k] = cmplx.Rect(1, ang)
	}

	a, b, pooled := acquireScratch(m)
	defer releaseScratch(pooled)

	for k := 0; k < n; k++ {
		a[k] = x[k] * chirp[k]
	}

	b[0] = cmplx.Conj(chirp[0])
	for k := 1; k < n; k++ {
		b[k] = cmplx.Conj(chirp[k])
		b[m-k] = cmplx.Conj(chirp[k])
	}

	fftRadix2(a)
	fftRadix2(b)
	for i := range a {
		a[i] *= b[i]
	}
	inverseFFTRadix2(a)

	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		out[k] = a[k] * chirp[k]
	}
	return out
}

func inverseFFTRadix2(x []complex128) {
	n := len(x)
	for i := range x {
		x[i] = cmplx.Conj(x[i])
	}
	fftRadix2(x)
	inv := 1 / float64(n)
	for i := range x {
		x[i] = cmplx.Conj(x[i]) * complex(inv, 0)
	}
}
