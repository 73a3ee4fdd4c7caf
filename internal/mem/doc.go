// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Vector storage starts on a 64-byte boundary so a whole AVX-512 register or
// cache line covers the head of every buffer.
package mem
