package auth

import "testing"

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(4) // MinCost keeps the test fast

	hash, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("Hash() returned the plaintext password")
	}

	if !h.Verify(hash, "s3cret-pass") {
		t.Error("Verify() = false for correct password")
	}
	if h.Verify(hash, "wrong-pass") {
		t.Error("Verify() = true for wrong password")
	}
}

func TestPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewPasswordHasher(99)

	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !h.Verify(hash, "pw") {
		t.Error("Verify() = false after default-cost fallback")
	}
}
