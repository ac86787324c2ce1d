// Package pagination bounds page/limit query parameters and applies them
// to gorm list queries.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params is a validated page window. Page starts at 1.
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Parse reads ?page= and ?limit=; missing or malformed values fall back to
// the defaults.
func Parse(c *gin.Context) Params {
	return Normalize(queryInt(c, "page"), queryInt(c, "limit"))
}

// Normalize resets a non-positive page to 1 and a non-positive limit to
// DefaultLimit, and caps limit at MaxLimit.
func Normalize(page, limit int) Params {
	page = max(page, 1)
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// Scope restricts a query to the window, for use with db.Scopes.
func (p Params) Scope(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset).Limit(p.Limit)
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
