package rules

import (
	"testing"

	"nooa/internal/grammar"
)

func TestNormalizedName_StripsCanonicalSuffix(t *testing.T) {
	got := normalizedName("src/user-service.ts", nil)
	if got != "user" {
		t.Fatalf("expected trailing '-service' to be stripped to 'user', got %q", got)
	}
}

func TestNormalizedName_AppliesThesaurus(t *testing.T) {
	thesaurus := []grammar.SynonymGroup{{"handler", "processor"}}
	got := normalizedName("src/order-processor.ts", thesaurus)
	if got != "order-handler" {
		t.Fatalf("expected thesaurus to rewrite 'processor' to canonical 'handler', got %q", got)
	}
}

func TestNormalizedName_Idempotent(t *testing.T) {
	thesaurus := []grammar.SynonymGroup{{"handler", "processor"}}
	first := normalizedName("src/order-processor.ts", thesaurus)
	second := normalizedName(first+".ts", thesaurus)

	if second != first {
		t.Fatalf("expected normalize(normalize(x)) == normalize(x), got %q then %q", first, second)
	}
}

func TestNormalizedName_OverlappingSynonymAndSuffix(t *testing.T) {
	// Both "user-service.ts" and "user-repository.ts" end in a canonical
	// suffix, so they converge to the same normalized name even without
	// the thesaurus firing, matching §8 scenario 4's expectation that the
	// pair is reported as synonyms.
	a := normalizedName("src/user-service.ts", nil)
	b := normalizedName("src/user-repository.ts", nil)
	if a != b {
		t.Fatalf("expected user-service and user-repository to normalize identically, got %q and %q", a, b)
	}
}
