package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(0)
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, hasher.cost)
	}
}

func TestNewBcryptHasher_CustomCost(t *testing.T) {
	hasher := NewBcryptHasher(6)
	if hasher.cost != 6 {
		t.Fatalf("expected cost 6, got %d", hasher.cost)
	}
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal plaintext")
	}

	if err := hasher.Compare(hash, "secret123"); err != nil {
		t.Fatalf("expected matching password to compare cleanly: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error for wrong password")
	}
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	second, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if first == second {
		t.Fatal("expected fresh salt to produce distinct hashes")
	}
}

func TestBcryptHasher_MalformedStoredHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	if err := hasher.Compare("not-a-bcrypt-hash", "secret123"); err == nil {
		t.Fatal("expected error for corrupted stored hash")
	}
}

func TestBcryptHasher_HashError(t *testing.T) {
	hasher := &BcryptHasher{cost: bcrypt.MaxCost + 1}
	if _, err := hasher.Hash("password"); err == nil {
		t.Fatal("expected error for invalid cost")
	}
}
