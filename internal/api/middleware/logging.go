package middleware

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes for terminal output
const (
	green  = "\033[97;42m"
	white  = "\033[90;47m"
	yellow = "\033[90;43m"
	red    = "\033[97;41m"
	blue   = "\033[97;44m"
	cyan   = "\033[97;46m"
	reset  = "\033[0m"
)

func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return green
	case code >= 300 && code < 400:
		return white
	case code >= 400 && code < 500:
		return yellow
	default:
		return red
	}
}

func methodColor(method string) string {
	switch method {
	case "GET":
		return blue
	case "POST":
		return cyan
	case "PUT", "PATCH":
		return yellow
	case "DELETE":
		return red
	default:
		return reset
	}
}

// RequestLogger logs one line per API request. Enabled with LOG_REQUESTS=true;
// ingress traffic is logged by the data plane, not here.
func RequestLogger() gin.HandlerFunc {
	if os.Getenv("LOG_REQUESTS") != "true" {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		fmt.Printf(
			"[TNL-API] %s | %s %3d %s | %13v | %15s | %s %s %s %s\n",
			time.Now().Format("2006/01/02 - 15:04:05"),
			statusColor(statusCode), statusCode, reset,
			latency,
			c.ClientIP(),
			methodColor(method), method, reset,
			path,
		)
	}
}
