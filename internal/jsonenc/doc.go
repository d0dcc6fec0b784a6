// Package jsonenc writes murmur2sum results as JSON lines and decodes them
// back for verification.
//
// It uses sonic where sonic is supported and encoding/json elsewhere; both
// produce the same output for [Record].
package jsonenc
