package validators

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runValidator(t *testing.T, handler fiber.Handler, method, path, target, body string) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Add(method, path, handler, func(c *fiber.Ctx) error {
		return c.SendString("passed")
	})

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestRegisterValidatorAcceptsValidPayload(t *testing.T) {
	status, body := runValidator(t, Register(), fiber.MethodPost, "/register", "/register",
		`{"name":"Jane Doe","email":"jane@example.com","password":"longenough1"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "passed", body)
}

func TestRegisterValidatorRejectsBadEmail(t *testing.T) {
	status, body := runValidator(t, Register(), fiber.MethodPost, "/register", "/register",
		`{"name":"Jane Doe","email":"not-an-email","password":"longenough1"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "email")
}

func TestRegisterValidatorRejectsShortPassword(t *testing.T) {
	status, body := runValidator(t, Register(), fiber.MethodPost, "/register", "/register",
		`{"name":"Jane Doe","email":"jane@example.com","password":"short"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "password")
}

func TestRegisterValidatorRejectsAdminRole(t *testing.T) {
	status, _ := runValidator(t, Register(), fiber.MethodPost, "/register", "/register",
		`{"name":"Jane Doe","email":"jane@example.com","password":"longenough1","role":"admin"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestIDParamValidation(t *testing.T) {
	status, body := runValidator(t, IDParam("id", "courseID"), fiber.MethodGet, "/courses/:id", "/courses/42", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "passed", body)

	status, _ = runValidator(t, IDParam("id", "courseID"), fiber.MethodGet, "/courses/:id", "/courses/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = runValidator(t, IDParam("id", "courseID"), fiber.MethodGet, "/courses/:id", "/courses/0", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateReviewValidatorRange(t *testing.T) {
	status, _ := runValidator(t, CreateReview(), fiber.MethodPost, "/reviews", "/reviews",
		`{"rating":5,"review":"great"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = runValidator(t, CreateReview(), fiber.MethodPost, "/reviews", "/reviews",
		`{"rating":6}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}
