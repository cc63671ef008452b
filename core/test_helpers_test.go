// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"reflect"
	"testing"
)

// Shared vertex IDs keep failure output compact.
const (
	VertexEmpty = ""
	VertexA     = "A"
	VertexB     = "B"
	VertexC     = "C"
	VertexX     = "X"
)

// MustErrorIs fails the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, ctx string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want error %v, got %v", ctx, target, err)
	}
}

// MustErrorNil fails the test on a non-nil error.
func MustErrorNil(t *testing.T, err error, ctx string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", ctx, err)
	}
}

// MustEqualBool fails the test when got != want.
func MustEqualBool(t *testing.T, got, want bool, ctx string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %v, want %v", ctx, got, want)
	}
}

// MustEqualInt fails the test when got != want.
func MustEqualInt(t *testing.T, got, want int, ctx string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", ctx, got, want)
	}
}

// MustEqualStrings fails the test when the slices differ.
func MustEqualStrings(t *testing.T, got, want []string, ctx string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %v, want %v", ctx, got, want)
	}
}
