package middleware

import "github.com/labstack/echo/v4"

type Skipper func(c echo.Context) bool

var DefaultSkipper Skipper = func(c echo.Context) bool {
	return false
}

// Logger is the subset of the structured logger the middleware needs.
type Logger interface {
	Debugw(template string, args ...interface{})
	Infow(template string, args ...interface{})
	Warnw(template string, args ...interface{})
	Errorw(template string, args ...interface{})
}
