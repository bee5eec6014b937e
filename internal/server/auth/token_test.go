package auth

import "testing"

func TestIssueToken(t *testing.T) {
	t1, err := IssueToken()
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if len(t1) != tokenBytes*2 {
		t.Fatalf("expected %d hex chars, got %d", tokenBytes*2, len(t1))
	}

	t2, err := IssueToken()
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("two issued tokens must differ")
	}
}
