package authn

import (
	"testing"
	"time"

	"jobboard/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	v := NewVerifier("secret-1", "http://issuer.test")
	want := domain.Identity{ID: uuid.New(), Role: domain.RoleEmployer, IsStaff: true}

	token, err := v.Sign(want, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	got, err := v.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != want {
		t.Fatalf("identity round trip: got %+v want %+v", got, want)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewVerifier("secret-1", "http://issuer.test")
	verifier := NewVerifier("secret-2", "http://issuer.test")

	token, err := signer.Sign(domain.Identity{ID: uuid.New(), Role: domain.RoleApplicant}, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("token signed with another secret must not verify")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	v := NewVerifier("secret-1", "http://issuer.test")

	token, err := v.Sign(domain.Identity{ID: uuid.New(), Role: domain.RoleApplicant}, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := v.Verify(token); err == nil {
		t.Fatal("expired token must not verify")
	}
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	signer := NewVerifier("secret-1", "http://other-issuer.test")
	verifier := NewVerifier("secret-1", "http://issuer.test")

	token, err := signer.Sign(domain.Identity{ID: uuid.New(), Role: domain.RoleApplicant}, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("issuer mismatch must not verify")
	}
}

func TestVerifyRejectsNonHMACAlgorithm(t *testing.T) {
	v := NewVerifier("secret-1", "http://issuer.test")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"iss": "http://issuer.test",
		"sub": uuid.NewString(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := v.Verify(raw); err == nil {
		t.Fatal("alg=none must not verify")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, salt, params, algo, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword("correct horse battery staple", hash, salt, params, algo) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("wrong password", hash, salt, params, algo) {
		t.Fatal("wrong password accepted")
	}
	if VerifyPassword("correct horse battery staple", hash, salt, params, "bcrypt") {
		t.Fatal("unknown algorithm accepted")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, _, _, _, err := HashPassword(""); err == nil {
		t.Fatal("empty password should error")
	}
}
