package score

import "testing"

func TestScore_CountsEveryOccurrence(t *testing.T) {
	text := "Payout limits apply. The payout limits reset daily."
	if got := Score(text, []string{"payout", "limits"}); got != 4 {
		t.Fatalf("Score = %d, want 4", got)
	}
}

func TestScore_WholeWordOnly(t *testing.T) {
	if got := Score("cardboard boxes", []string{"card"}); got != 0 {
		t.Fatalf("matched inside a larger word: %d", got)
	}
	if got := Score("a card on the table", []string{"card"}); got != 1 {
		t.Fatalf("Score = %d, want 1", got)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	if got := Score("PAYOUT Payout payout", []string{"payout"}); got != 3 {
		t.Fatalf("Score = %d, want 3", got)
	}
}

func TestScore_EmptyTokens(t *testing.T) {
	if got := Score("any text at all", nil); got != 0 {
		t.Fatalf("Score with no tokens = %d, want 0", got)
	}
	if got := Score("any text", []string{""}); got != 0 {
		t.Fatalf("Score with empty token = %d, want 0", got)
	}
}

func TestScore_EmptyText(t *testing.T) {
	if got := Score("", []string{"payout"}); got != 0 {
		t.Fatalf("Score = %d, want 0", got)
	}
}

func TestScore_MetaCharactersAreLiteral(t *testing.T) {
	// Tokens with regexp syntax must be treated literally, not as patterns.
	if got := Score("price is 4.99 today", []string{"4.99"}); got != 1 {
		t.Fatalf("Score = %d, want 1", got)
	}
	if got := Score("anything", []string{"a+b"}); got != 0 {
		t.Fatalf("Score = %d, want 0", got)
	}
}

func TestScore_NeverNegative(t *testing.T) {
	inputs := []string{"", "short", "longer text with words"}
	tokens := [][]string{nil, {"x"}, {"words", "text"}}
	for _, s := range inputs {
		for _, toks := range tokens {
			if got := Score(s, toks); got < 0 {
				t.Fatalf("Score(%q, %v) = %d", s, toks, got)
			}
		}
	}
}
