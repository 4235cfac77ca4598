// Package torus enumerates the inequivalent skew tori of a given area.
//
// A skew torus is the quotient of Z^2 by the lattice generated by (mx, 0)
// and (syx, my); Shape records the triple (mx, my, syx). Enumerate(n) walks
// every (mx, my) factorization of n and every syx in [0, mx), and drops any
// shape equivalent to one already emitted under the symmetry group
// generated by transpose (swap the two axes, recomputing syx via the
// extended Euclidean identity) and reflection (syx -> mx-syx).
package torus
