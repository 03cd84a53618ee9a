package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Banner is the plain-text body of GET /.
const Banner = "CreatorLab Backend is running ✅ Use /api/test"

// TestResponse is the body of the connectivity check.
type TestResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Backend connected successfully ✅"`
}

// Root writes the banner.
func Root(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

// Health reports process liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Test godoc
// @ID          connectivityTest
// @Summary     Connectivity check
// @Description Used by the web client to check that the backend is reachable.
// @Tags        Health
// @Produce     json
// @Success     200  {object}  handlers.TestResponse
// @Router      /test [get]
func Test(c *gin.Context) {
	ok(c, http.StatusOK, TestResponse{Success: true, Message: "Backend connected successfully ✅"})
}
