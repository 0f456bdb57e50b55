// Package kernel holds the primitives shared by every aggregate of the
// dispatch domain. Today that is the UUID identifier value object.
package kernel
