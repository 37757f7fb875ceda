package credential

import (
	"github.com/golang-jwt/jwt/v5"
)

// DisplayName extracts a human readable name from the token claims without
// verifying the signature. It is used only to label the prompt after a
// restart, never to decide access. Opaque (non-JWT) tokens yield "".
func DisplayName(token string) string {
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}

	for _, key := range []string{"name", "username", "email", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
