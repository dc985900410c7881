// Package normalisers provides implementations of the ShapeNormaliser
// interface for the known upstream provider payload shapes. Each
// normaliser recognises one shape by structural inspection and maps it
// into the canonical listing.
//
// Normalisers are registered with the Registry at startup.
package normalisers
