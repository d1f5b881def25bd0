package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadmate/acadmate-api/store"
)

// listRequestMessages is the API for fetching the durable chat history of a
// request's room. Missed realtime events are recovered from here.
func (s *Server) listRequestMessages(c *gin.Context) {
	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}

	if _, err := s.store.GetRequest(requestID); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	msgs, err := s.store.ListMessages(requestID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": msgs})
}
