package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash carries a one-shot message across a redirect.
type Flash struct {
	Category string // success, error
	Message  string
}

// Flashes are stored as "category|message" strings so the cookie store can
// gob-encode them without type registration.
func addFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(category + "|" + message)
	session.Save()
}

// takeFlashes pops all pending flash messages.
func takeFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		session.Save()
	}

	flashes := make([]Flash, 0, len(raw))
	for _, item := range raw {
		encoded, ok := item.(string)
		if !ok {
			continue
		}
		category, message, found := strings.Cut(encoded, "|")
		if !found {
			category, message = "success", encoded
		}
		flashes = append(flashes, Flash{Category: category, Message: message})
	}
	return flashes
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}
