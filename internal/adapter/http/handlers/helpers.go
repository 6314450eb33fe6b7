package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// listParams reads the paging query parameters. Range enforcement belongs to
// the list query validation; this only parses.
func listParams(c *gin.Context) (page, pageSize int, filter string) {
	page = atoiDefault(c.Query("page"), defaultPage)
	pageSize = atoiDefault(c.Query("page_size"), defaultPageSize)
	return page, pageSize, c.Query("search")
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
