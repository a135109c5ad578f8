/*
Package rhea is a pure Go library for the arithmetic layer of RNS-based
homomorphic encryption. It provides lazy modular reduction kernels
(Montgomery, Barrett and Harvey), negacyclic NTTs over chains of word-sized
prime moduli, polynomial samplers, and the RLWE primitive types built on top
of them, while retaining the same performance as C++ libraries.
*/
package rhea
