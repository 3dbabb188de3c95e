package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("Hash should not equal the plaintext password")
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("Expected matching password to verify")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("Expected non-matching password to fail")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	h2, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if h1 == h2 {
		t.Error("Expected different hashes for the same password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Error("Expected malformed hash to fail verification")
	}
}
