// Package is classifies standalone string values: integers, floats,
// alphabetic and alphanumeric words, URLs, URI paths, booleans and email
// addresses. The predicates are pure and safe for concurrent use. Every
// predicate rejects the empty string.
//
// The package also exposes the predicates as ozzo-validation rules
// (Integer, Float, URI, ...) for use with validation.ValidateStruct.
package is
