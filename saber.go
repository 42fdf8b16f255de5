// Package saber implements the Saber key encapsulation mechanism, an
// IND-CCA2-secure KEM based on the hardness of the Module Learning With
// Rounding (Mod-LWR) problem over module lattices, as submitted to the
// NIST Post-Quantum Cryptography standardization project.
//
// Three parameter sets are provided as package-level values: LightSaber,
// Saber, and FireSaber, selected by module rank (2, 3, and 4
// respectively). Saber is the recommended default.
//
// This implementation follows the reference Saber specification: matrix
// generation and secret sampling via SHAKE128, a centered binomial
// distribution noise sampler, polynomial multiplication via Toom-Cook-4
// composed with Karatsuba (Saber has no NTT-friendly modulus; all
// arithmetic is modulo 2^16), and a Fujisaki-Okamoto transform wrapping
// the IND-CPA public-key encryption scheme to produce an IND-CCA2-secure
// KEM with implicit rejection.
//
// For more information, see https://www.esat.kuleuven.be/cosic/pqcrypto/saber/.
package saber
