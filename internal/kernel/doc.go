// Package kernel provides the elementwise loops behind fixedvec arithmetic.
//
// # Dispatch
//
// Every operation has a plain loop and an 8-lane unrolled loop. The unrolled
// loops keep each lane independent so the compiler can keep them in registers
// and schedule them in parallel; they are selected whenever the CPU reports a
// SIMD-capable ISA:
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON, SVE2
//
// Set FIXEDVEC_SIMD=generic to force the plain loops.
//
// # Operations
//
//   - Binary: Add, Sub, Swap
//   - Scalar: Scale, Div, Fill
package kernel
