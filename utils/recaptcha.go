package utils

import (
	"log"

	"elm/config"

	"github.com/go-resty/resty/v2"
)

type recaptchaResult struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// VerifyRecaptcha checks a client response token against the verification
// service. An unconfigured secret disables the check (local development).
func VerifyRecaptcha(response string) bool {
	secret := config.AppConfig.RecaptchaSecretKey
	if secret == "" {
		return true
	}

	var result recaptchaResult
	client := resty.New()
	resp, err := client.R().
		SetFormData(map[string]string{
			"secret":   secret,
			"response": response,
		}).
		SetResult(&result).
		Post(config.AppConfig.RecaptchaVerifyURL)
	if err != nil {
		log.Printf("reCAPTCHA verification request failed: %v", err)
		return false
	}
	if resp.IsError() {
		log.Printf("reCAPTCHA verification returned %d", resp.StatusCode())
		return false
	}
	return result.Success
}
