package auth

import (
	"errors"
	"testing"
	"time"
)

var secret = []byte("0123456789abcdef")

func TestCreateAndParse(t *testing.T) {
	tok, err := CreateAccessToken(secret, "user-1", "Budi", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	c, err := ParseValidate(secret, tok)
	if err != nil {
		t.Fatalf("ParseValidate() error = %v", err)
	}
	if c.Subject != "user-1" || c.Name != "Budi" {
		t.Errorf("claims = %+v", c)
	}
}

func TestParseValidateRejects(t *testing.T) {
	expired, _ := CreateAccessToken(secret, "user-1", "Budi", -time.Minute)
	otherKey, _ := CreateAccessToken([]byte("another-secret-key"), "user-1", "Budi", time.Hour)
	noSubject, _ := CreateAccessToken(secret, "", "Budi", time.Hour)

	tests := map[string]string{
		"expired":    expired,
		"wrong key":  otherKey,
		"no subject": noSubject,
		"garbage":    "not.a.token",
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseValidate(secret, tok); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ParseValidate() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
