// Package domain contains the core business entities: the canonical
// listing model, the score report and the request lifecycle record.
// These three shapes are the compatibility contract for any boundary
// that serializes analyzer data.
package domain
