package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, baseURL string) *HTTPClient {
	t.Helper()
	client, err := NewHTTPClient(baseURL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func testCreds() Credentials {
	return Credentials{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		Passkey:        "passkey",
		ShortCode:      "174379",
	}
}

func TestPushSendsAuthenticatedRequest(t *testing.T) {
	var authHeader string
	var pushAuth string
	var payload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/v1/generate":
			authHeader = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]string{"access_token": "token-1"})
		case "/mpesa/stkpush/v1/processrequest":
			pushAuth = r.Header.Get("Authorization")
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("decode push payload: %v", err)
			}
			json.NewEncoder(w).Encode(PushResponse{
				MerchantRequestID: "merchant-1",
				CheckoutRequestID: "checkout-1",
				ResponseCode:      "0",
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	client.now = func() time.Time {
		return time.Date(2025, 6, 1, 14, 30, 5, 0, time.UTC)
	}

	ack, err := client.Push(context.Background(), testCreds(), PushRequest{
		Phone:            "0712345678",
		Amount:           1500,
		AccountReference: "Order BKH-250601-0042",
		Description:      "Bakery order payment",
		CallbackURL:      "https://shop.example.com/api/payments/mpesa/callback",
	})
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if ack.CheckoutRequestID != "checkout-1" {
		t.Fatalf("unexpected ack: %+v", ack)
	}

	wantBasic := "Basic " + base64.StdEncoding.EncodeToString([]byte("key:secret"))
	if authHeader != wantBasic {
		t.Fatalf("unexpected auth header %q", authHeader)
	}
	if pushAuth != "Bearer token-1" {
		t.Fatalf("unexpected push auth %q", pushAuth)
	}

	timestamp := "20250601143005"
	wantPassword := base64.StdEncoding.EncodeToString([]byte("174379" + "passkey" + timestamp))
	checks := map[string]any{
		"BusinessShortCode": "174379",
		"Password":          wantPassword,
		"Timestamp":         timestamp,
		"TransactionType":   "CustomerPayBillOnline",
		"PartyA":            "254712345678",
		"PartyB":            "174379",
		"PhoneNumber":       "254712345678",
		"CallBackURL":       "https://shop.example.com/api/payments/mpesa/callback",
		"AccountReference":  "Order BKH-250601-0042",
	}
	for field, want := range checks {
		if payload[field] != want {
			t.Fatalf("%s: expected %v, got %v", field, want, payload[field])
		}
	}
}

func TestPushAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	_, err := client.Push(context.Background(), testCreds(), PushRequest{Phone: "0712345678", Amount: 100})
	if !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed, got %v", err)
	}
}

func TestPushRequestFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/v1/generate" {
			json.NewEncoder(w).Encode(map[string]string{"access_token": "token-1"})
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errorMessage":"Invalid CallBackURL"}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	_, err := client.Push(context.Background(), testCreds(), PushRequest{Phone: "0712345678", Amount: 100})
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Body != `{"errorMessage":"Invalid CallBackURL"}` {
		t.Fatalf("unexpected body %q", reqErr.Body)
	}
}

func TestNewHTTPClientRejectsRelativeURL(t *testing.T) {
	if _, err := NewHTTPClient("sandbox.safaricom.co.ke", slog.New(slog.NewTextHandler(io.Discard, nil))); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"0712345678":   "254712345678",
		"254712345678": "254712345678",
		"+14155550100": "+14155550100",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}

func TestPassword(t *testing.T) {
	got := Password("174379", "passkey", "20250601143005")
	want := base64.StdEncoding.EncodeToString([]byte("174379passkey20250601143005"))
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
