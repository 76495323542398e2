package config_test

import (
	"errors"
	"testing"

	"github.com/saulo-duarte/exam-portal/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestNewCipher(t *testing.T) {
	t.Run("ShortKey", func(t *testing.T) {
		_, err := config.NewCipher("chave_curta")
		if !errors.Is(err, config.ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey, got %v", err)
		}
	})

	t.Run("MustCipherPanicsOnShortKey", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustCipher should panic with a short key")
			}
		}()
		config.MustCipher("short")
	})

	t.Run("ValidKey", func(t *testing.T) {
		if _, err := config.NewCipher(testKey); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEncryptDecrypt(t *testing.T) {
	c := config.MustCipher(testKey)

	t.Run("OTPCode", func(t *testing.T) {
		plaintext := "482913"

		ciphertext, err := c.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := c.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != plaintext {
			t.Errorf("decrypted %q does not match %q", decrypted, plaintext)
		}

		ciphertext2, _ := c.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("two encryptions of the same text should differ (random nonce)")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := c.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := c.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != "" {
			t.Errorf("expected empty plaintext, got %q", decrypted)
		}
	})

	t.Run("WrongKey", func(t *testing.T) {
		ciphertext, _ := c.Encrypt("123456")
		other := config.MustCipher("abcdefghijklmnopqrstuvwxyz012345")
		if _, err := other.Decrypt(ciphertext); err == nil {
			t.Fatal("Decrypt with another key should fail")
		}
	})

	t.Run("TooShort", func(t *testing.T) {
		if _, err := c.Decrypt("AAAA"); !errors.Is(err, config.ErrCiphertextTooShort) {
			t.Fatalf("expected ErrCiphertextTooShort, got %v", err)
		}
	})
}
