package web

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// setFlash stores a one-shot message shown by the next rendered page.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString([]byte(msg)), 60, "/", "", false, true)
}

// popFlash returns the pending flash message and clears it. A message set
// during the current request wins over the one sent by the browser.
func popFlash(c *gin.Context) string {
	var msg string
	if raw, err := c.Cookie(flashCookie); err == nil && raw != "" {
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
		if b, err := base64.RawURLEncoding.DecodeString(raw); err == nil {
			msg = string(b)
		}
	}
	if v, ok := c.Get(flashCookie); ok {
		if s, _ := v.(string); s != "" {
			msg = s
		}
	}
	return msg
}

// flashNow shows msg on the page rendered by this request.
func flashNow(c *gin.Context, msg string) {
	c.Set(flashCookie, msg)
}
