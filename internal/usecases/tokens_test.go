package usecases

import (
	"testing"
	"time"

	"videotube/pkg/config"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()
	cfg := testAuthConfig()

	token, err := SignAccessToken(cfg, "user-123")
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("expected user-123, got %s", claims.UserID)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	t.Parallel()
	cfg := testAuthConfig()

	token, err := SignAccessToken(cfg, "user-123")
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	other := cfg
	other.AccessSecret = "a different secret"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatal("token must not verify under a different secret")
	}
}

func TestAccessAndRefreshSecretsAreIndependent(t *testing.T) {
	t.Parallel()
	cfg := testAuthConfig()

	access, err := SignAccessToken(cfg, "user-123")
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := ParseRefreshToken(cfg, access); err == nil {
		t.Fatal("an access token must not pass refresh verification")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()
	cfg := config.AuthConfig{
		AccessSecret: "test-access-secret",
		AccessTTL:    -time.Minute,
	}

	token, err := SignAccessToken(cfg, "user-123")
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}
