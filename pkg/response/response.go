package response

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"scanner-srv/pkg/discord"
	pkgErrors "scanner-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Accepted writes a 202 response. Used by fire-and-forget endpoints whose
// success only means the work was accepted, not completed.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Resp{
		ErrorCode: 0,
		Message:   "Accepted",
		Data:      data,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Error writes an error response. Known HTTPError values keep their status
// code; anything else becomes a 500 and is reported to Discord.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		if httpErr.Code >= http.StatusInternalServerError {
			notifyDiscord(c, discordClient, fmt.Sprintf("HTTP %d on %s %s: %s",
				httpErr.Code, c.Request.Method, c.Request.URL.Path, httpErr.Message))
		}
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
	notifyDiscord(c, discordClient, fmt.Sprintf("Unhandled error on %s %s: %v",
		c.Request.Method, c.Request.URL.Path, err))
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
	notifyDiscord(c, discordClient, fmt.Sprintf("Panic on %s %s: %v",
		c.Request.Method, c.Request.URL.Path, recovered))
}

func notifyDiscord(c *gin.Context, discordClient discord.IDiscord, message string) {
	if discordClient == nil {
		return
	}
	// Detached from the request lifecycle; best effort.
	go func() {
		_ = discordClient.ReportBug(context.Background(), message)
	}()
}
