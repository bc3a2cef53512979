package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("digest must not equal the plaintext")
	}

	if !CheckPassword("hunter22", hash) {
		t.Fatal("expected correct password to verify")
	}
	if CheckPassword("hunter23", hash) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestCheckPassword_InvalidDigest(t *testing.T) {
	t.Parallel()

	if CheckPassword("anything", "not-a-bcrypt-digest") {
		t.Fatal("expected malformed digest to fail verification")
	}
}
