package token

import "testing"

func TestKindStringKnownAndUnknown(t *testing.T) {
	if got := PLUS.String(); got != "PLUS" {
		t.Errorf("got %q, want PLUS", got)
	}
	if got := Kind(9999).String(); got != "Kind(9999)" {
		t.Errorf("got %q, want Kind(9999)", got)
	}
}

func TestKeywordsMapping(t *testing.T) {
	if Keywords["class"] != CLASS {
		t.Errorf("got %v, want CLASS", Keywords["class"])
	}
	if _, ok := Keywords["notakeyword"]; ok {
		t.Error("did not expect notakeyword to be a keyword")
	}
}

func TestTokenString(t *testing.T) {
	tok := New(NUMBER, "3.14", 3.14, 1)
	got := tok.String()
	want := "NUMBER 3.14 3.14"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
