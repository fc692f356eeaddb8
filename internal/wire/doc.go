// Package wire decodes and encodes the coordinator's schema-less binary
// format: base-128 varints, tagged fields in the four protobuf wire types,
// and depth-first search over nested length-delimited regions.
//
// Decoding never fails with an error value. Every decode returns an ok bool
// and absorbs truncation or malformed input as "no value", so untrusted
// buffers can be scanned without out-of-range access. All buffer offset
// arithmetic in the module lives in this package.
package wire
