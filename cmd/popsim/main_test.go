package main

import "testing"

func TestParseValues(t *testing.T) {
	got, err := parseValues(" 0.1, 0.25 ,,1")
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.1, 0.25, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if _, err := parseValues("0.1,abc"); err == nil {
		t.Fatal("expected error for a malformed value")
	}
	if _, err := parseValues(" , "); err == nil {
		t.Fatal("expected error for an empty list")
	}
}
