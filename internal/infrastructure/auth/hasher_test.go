package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("Hash() returned the plaintext")
	}

	if !hasher.Verify(hash, "s3cret-password") {
		t.Error("Verify() = false for correct password, want true")
	}
	if hasher.Verify(hash, "wrong-password") {
		t.Error("Verify() = true for wrong password, want false")
	}
	if hasher.Verify("not-a-bcrypt-hash", "s3cret-password") {
		t.Error("Verify() = true for malformed hash, want false")
	}
}

func TestNewBcryptPasswordHasher_CostOutOfRange(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default rather than
	// failing at hash time.
	for _, cost := range []int{0, 100} {
		hasher := NewBcryptPasswordHasher(cost)
		hash, err := hasher.Hash("s3cret-password")
		if err != nil {
			t.Fatalf("Hash() with cost %d error = %v", cost, err)
		}
		actual, err := bcrypt.Cost([]byte(hash))
		if err != nil {
			t.Fatalf("Cost() error = %v", err)
		}
		if actual != bcrypt.DefaultCost {
			t.Errorf("cost = %d, want %d", actual, bcrypt.DefaultCost)
		}
	}
}
