package response

import "github.com/gin-gonic/gin"

// Error writes the flat {"error": message} body every endpoint uses for
// failures. The shape is part of the public API contract.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// Message writes {"message": text} for operations with no payload, such as
// deletes.
func Message(c *gin.Context, statusCode int, text string) {
	c.JSON(statusCode, gin.H{"message": text})
}
