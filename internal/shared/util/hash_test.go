package util

import "testing"

func TestHashContent(t *testing.T) {
	got := HashContent([]byte("<html></html>"))
	if got != HashContent([]byte("<html></html>")) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	if got == HashContent([]byte("<html> </html>")) {
		t.Fatalf("expected different content to hash differently")
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
	if HashContent(nil) != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Fatalf("unexpected empty hash %s", HashContent(nil))
	}
}
