package token

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "What are the payout limits?", []string{"what", "are", "the", "payout", "limits"}},
		{"punctuation runs", "rate--limit: 5/sec!!", []string{"rate", "limit", "5", "sec"}},
		{"uppercase and digits", "API v2 Endpoints", []string{"api", "v2", "endpoints"}},
		{"empty", "", []string{}},
		{"only separators", "?!, --", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFilterShort(t *testing.T) {
	got := FilterShort([]string{"is", "a", "fee", "on", "payouts"}, 3)
	want := []string{"fee", "payouts"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterShort = %v, want %v", got, want)
	}
}

func TestFilterShort_PreservesOrder(t *testing.T) {
	got := FilterShort([]string{"zzz", "aaa", "mmm"}, 3)
	want := []string{"zzz", "aaa", "mmm"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order not preserved: %v", got)
	}
}
