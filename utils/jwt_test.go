package utils

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")
	os.Exit(m.Run())
}

func TestGenerateAndValidateToken(t *testing.T) {
	usuarioID := uuid.New()

	token, err := GenerateToken(usuarioID, "cliente1", "cliente")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UsuarioID != usuarioID {
		t.Errorf("expected usuario_id %v, got %v", usuarioID, claims.UsuarioID)
	}
	if claims.Username != "cliente1" {
		t.Errorf("expected username cliente1, got %q", claims.Username)
	}
	if claims.Role != "cliente" {
		t.Errorf("expected role cliente, got %q", claims.Role)
	}
	if claims.Issuer != "buenlibro-backend" {
		t.Errorf("expected issuer buenlibro-backend, got %q", claims.Issuer)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("no-es-un-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "cliente1", "cliente")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	os.Setenv("JWT_SECRET", "otro-secreto")
	defer os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")

	if _, err := ValidateToken(token); err == nil {
		t.Error("expected signature validation to fail with a different secret")
	}
}
