package api

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"ashwi.GO/config"
)

// maxPageSize caps client-requested page sizes.
const maxPageSize = 100

// PageParams reads page and page_size from the request query.
func PageParams(c echo.Context) (page, pageSize int) {
	config.LoadAppConfig()
	page = 1
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			page = n
		}
	}
	pageSize = config.AppConfig.PageSize
	if v := c.QueryParam("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			pageSize = n
		}
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// Envelope wraps one page of results in the list contract:
// {count, next, previous, results}. Count is the collection total;
// next/previous are absolute URLs preserving the query string.
func Envelope(c echo.Context, count, page, pageSize int, results interface{}) map[string]interface{} {
	totalPages := 1
	if pageSize > 0 {
		totalPages = (count + pageSize - 1) / pageSize
		if totalPages < 1 {
			totalPages = 1
		}
	}

	var next, previous *string
	if page < totalPages {
		u := pageURL(c, page+1)
		next = &u
	}
	if page > 1 {
		u := pageURL(c, page-1)
		previous = &u
	}

	return map[string]interface{}{
		"count":    count,
		"next":     next,
		"previous": previous,
		"results":  results,
	}
}

func pageURL(c echo.Context, page int) string {
	config.LoadAppConfig()
	q, _ := url.ParseQuery(c.QueryString())
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u := config.AppConfig.SiteURL + c.Path()
	if c.Request() != nil && c.Request().URL != nil {
		u = config.AppConfig.SiteURL + c.Request().URL.Path
	}
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
