package web

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie = "fyyur_flash"
	flashKey    = "fyyur.flashes"
)

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// AddFlash queues a message for the next rendered page, whether that is
// rendered by this request or after a redirect.
func AddFlash(c *gin.Context, category, message string) {
	pending, _ := c.Get(flashKey)
	flashes, _ := pending.([]Flash)
	flashes = append(flashes, Flash{Category: category, Message: message})
	c.Set(flashKey, flashes)

	raw, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(raw), 0, "/", "", false, true)
}

// Success and Error are the two categories the templates style.
func Success(c *gin.Context, message string) { AddFlash(c, "success", message) }
func Error(c *gin.Context, message string)   { AddFlash(c, "error", message) }

// TakeFlashes returns the messages carried over from the previous request
// followed by those added during this one, and clears them.
func TakeFlashes(c *gin.Context) []Flash {
	var flashes []Flash
	if value, err := c.Cookie(flashCookie); err == nil && value != "" {
		if raw, err := base64.RawURLEncoding.DecodeString(value); err == nil {
			_ = json.Unmarshal(raw, &flashes)
		}
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}
	if pending, ok := c.Get(flashKey); ok {
		current, _ := pending.([]Flash)
		flashes = append(flashes, current...)
		c.Set(flashKey, []Flash(nil))
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}
	return flashes
}
