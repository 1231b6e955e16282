package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"elm/config"

	"github.com/stretchr/testify/assert"
)

func withRecaptchaConfig(t *testing.T, secret, url string) {
	t.Helper()
	if config.AppConfig == nil {
		config.LoadConfig()
	}
	prevSecret := config.AppConfig.RecaptchaSecretKey
	prevURL := config.AppConfig.RecaptchaVerifyURL
	config.AppConfig.RecaptchaSecretKey = secret
	config.AppConfig.RecaptchaVerifyURL = url
	t.Cleanup(func() {
		config.AppConfig.RecaptchaSecretKey = prevSecret
		config.AppConfig.RecaptchaVerifyURL = prevURL
	})
}

func TestVerifyRecaptchaSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-secret", r.FormValue("secret"))
		assert.Equal(t, "client-token", r.FormValue("response"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "hostname": "example.com"}`))
	}))
	defer server.Close()

	withRecaptchaConfig(t, "test-secret", server.URL)
	assert.True(t, VerifyRecaptcha("client-token"))
}

func TestVerifyRecaptchaRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer server.Close()

	withRecaptchaConfig(t, "test-secret", server.URL)
	assert.False(t, VerifyRecaptcha("bad-token"))
}

func TestVerifyRecaptchaDisabledWithoutSecret(t *testing.T) {
	withRecaptchaConfig(t, "", "")
	assert.True(t, VerifyRecaptcha("anything"))
}
