package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// userMe is the API to query the authenticated account
func (s *Server) userMe(c *gin.Context) {
	account, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": account})
}
