// Package conv provides overflow-checked integer conversions for the
// persistence layer. Converting between int-sized lengths and the
// fixed-width fields of the snapshot format must fail loudly instead of
// truncating.
package conv
