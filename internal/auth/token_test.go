package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret", 30*time.Minute)

	token, err := m.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	subject, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if subject != "alice@example.com" {
		t.Errorf("expected subject alice@example.com, got %s", subject)
	}
}

func TestTokenManager_VerifyExpired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret", -1*time.Minute)

	token, err := m.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenManager_VerifyWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("secret-a", 30*time.Minute)
	verifier := NewTokenManager("secret-b", 30*time.Minute)

	token, err := issuer.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenManager_VerifyGarbage(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret", 30*time.Minute)

	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.e30."} {
		if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestTokenManager_VerifyMissingSubject(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret", 30*time.Minute)

	// Sign a valid token with no subject claim.
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for missing subject, got %v", err)
	}
}

func TestTokenManager_RejectsNonHMAC(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret", 30*time.Minute)

	// alg=none style token must be rejected.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for unsigned token, got %v", err)
	}
}

func TestSubjectContext_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := ContextWithSubject(context.Background(), "alice@example.com")
	if got := SubjectFromContext(ctx); got != "alice@example.com" {
		t.Errorf("expected subject alice@example.com, got %s", got)
	}

	if got := SubjectFromContext(context.Background()); got != "" {
		t.Errorf("expected empty subject for bare context, got %s", got)
	}
}
