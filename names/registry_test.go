package names

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func TestSortedIDsOrdersByCollatedName(t *testing.T) {
	r := NewRegistry()
	r.Set("id-zebra", "Zebra")
	r.Set("id-apple", "apple")
	r.Set("id-echo", "Échelon")

	got := r.SortedIDs(language.English)
	want := []string{"id-apple", "id-echo", "id-zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected collated order %v, got %v", want, got)
	}
}

func TestNameFallsBackToIDWhenUnset(t *testing.T) {
	r := NewRegistry()
	if r.Name("unknown-id") != "unknown-id" {
		t.Fatalf("expected fallback to the id itself")
	}
}
