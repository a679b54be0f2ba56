package api

import "github.com/gin-gonic/gin"

// Envelope wraps every response body.
type Envelope struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Body    any  `json:"body"`
}

// Respond writes body inside an Envelope. Success is derived from the status code.
func Respond(c *gin.Context, status int, body any) {
	c.JSON(status, Envelope{Success: status < 400, Status: status, Body: body})
}

// Fail writes a failure envelope carrying a single message.
func Fail(c *gin.Context, status int, message string) {
	Respond(c, status, Message{Message: message})
}

// AbortWithFail is Fail for middleware: it stops the handler chain.
func AbortWithFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Status: status, Body: Message{Message: message}})
}
