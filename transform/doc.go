// Package transform escapes and rewrites strings, alone or across every
// string field of a struct. [Purify] is what fieldcheck.Field.Purify uses;
// the Struct helpers are handy in form handlers before values are echoed
// back into HTML.
package transform
