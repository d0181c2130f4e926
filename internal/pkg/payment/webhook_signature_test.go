package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"
)

func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifyStripeWebhookSignature(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	secret := "whsec_test"
	now := time.Now()

	header := signPayload(payload, secret, now)
	if !verifyAt(payload, header, secret, now) {
		t.Fatal("expected valid signature to verify")
	}

	if verifyAt([]byte("tampered"), header, secret, now) {
		t.Fatal("expected tampered payload to fail")
	}
	if verifyAt(payload, header, "whsec_other", now) {
		t.Fatal("expected wrong secret to fail")
	}
	if verifyAt(payload, header, "", now) {
		t.Fatal("expected empty secret to fail")
	}
}

func TestVerifyStripeWebhookSignatureRejectsStale(t *testing.T) {
	payload := []byte(`{}`)
	secret := "whsec_test"
	signed := time.Now().Add(-10 * time.Minute)

	header := signPayload(payload, secret, signed)
	if verifyAt(payload, header, secret, time.Now()) {
		t.Fatal("expected stale signature to fail")
	}
}

func TestVerifyStripeWebhookSignatureMalformedHeaders(t *testing.T) {
	payload := []byte(`{}`)
	secret := "whsec_test"
	now := time.Now()

	for _, header := range []string{
		"",
		"t=,v1=",
		"v1=deadbeef",
		fmt.Sprintf("t=%d", now.Unix()),
		fmt.Sprintf("t=%d,v1=nothex", now.Unix()),
	} {
		if verifyAt(payload, header, secret, now) {
			t.Fatalf("expected header %q to fail", header)
		}
	}
}

func TestVerifyStripeWebhookSignatureMultipleV1(t *testing.T) {
	payload := []byte(`{"ok":true}`)
	secret := "whsec_test"
	now := time.Now()

	// A rotated-secret header carries the stale signature first.
	valid := signPayload(payload, secret, now)
	header := fmt.Sprintf("t=%d,v1=%s,%s", now.Unix(), hex.EncodeToString(make([]byte, 32)), valid[len(fmt.Sprintf("t=%d,", now.Unix())):])
	if !verifyAt(payload, header, secret, now) {
		t.Fatal("expected one matching v1 signature to verify")
	}
}
