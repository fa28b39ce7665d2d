package middleware

import (
	"net/url"
	"strings"

	"career-guide/internal/domain/account"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxEmailKey     = "email"
	CtxRequestIDKey = "request_id"
)

// AccountMiddleware resolves the :email route parameter. There are no session
// tokens; the path names the account.
type AccountMiddleware struct{}

func NewAccountMiddleware() *AccountMiddleware {
	return &AccountMiddleware{}
}

func (m *AccountMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := c.Params("email")
		if unescaped, err := url.PathUnescape(raw); err == nil {
			raw = unescaped
		}
		email := account.NormalizeEmail(raw)
		if email == "" || !strings.Contains(email, "@") {
			return NewAppError(fiber.StatusBadRequest, "Invalid account email", nil, nil)
		}
		c.Locals(CtxEmailKey, email)
		return c.Next()
	}
}

// AccountEmail returns the email stored by AccountMiddleware.
func AccountEmail(c fiber.Ctx) (string, bool) {
	email, ok := c.Locals(CtxEmailKey).(string)
	return email, ok && email != ""
}
