package cli

import (
	"fmt"
	"strings"
	"time"
)

// getStatus renders the prompt status: who is logged in, when the token
// expires, connectivity and the draft's authoring mode.
func (a *App) getStatus() string {
	var parts []string

	sess := a.nb.Store.Session()
	if sess.Authenticated() {
		name := a.userName
		exp := ""
		if claims, err := sess.Claims(); err == nil {
			if claims.Username != "" {
				name = claims.Username
			}
			if !claims.ExpiresAt.IsZero() {
				if time.Now().After(claims.ExpiresAt) {
					exp = "expired"
				} else {
					exp = "until " + claims.ExpiresAt.Local().Format("15:04")
				}
			}
		}
		if name != "" {
			parts = append(parts, name)
		}
		if exp != "" {
			parts = append(parts, exp)
		}
	}

	if c := a.connectivity(); c != ConnUnknown {
		parts = append(parts, string(c))
	}
	parts = append(parts, string(a.nb.Composer.Draft().Mode))

	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}
