package postgres

import (
	"database/sql"
	"testing"
	"time"
)

func TestNullInt64ToIntPtr(t *testing.T) {
	if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil for null value, got %v", *got)
	}
	got := nullInt64ToIntPtr(sql.NullInt64{Int64: 3, Valid: true})
	if got == nil || *got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestIntPtrToNullable(t *testing.T) {
	if got := intPtrToNullable(nil); got != nil {
		t.Fatalf("expected nil for nil input, got %v", *got)
	}
	n := 2
	got := intPtrToNullable(&n)
	if got == nil || *got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestNullableTime(t *testing.T) {
	if got := nullableTime(time.Time{}); got != nil {
		t.Fatalf("expected nil for zero time, got %v", *got)
	}
	when := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	got := nullableTime(when)
	if got == nil || !got.Equal(when) {
		t.Fatalf("expected %v, got %v", when, got)
	}
}

func TestPQStringArray_NeverNil(t *testing.T) {
	if got := pqStringArray(nil); got == nil {
		t.Fatal("expected empty array for nil slice")
	}
	got := pqStringArray([]string{"a", "b"})
	if len(got) != 2 || got[0] != "a" {
		t.Fatalf("unexpected array: %v", got)
	}
}
