package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acadmate/acadmate-api/schema"
	"github.com/acadmate/acadmate-api/store"
)

// audit writes an activity record for an admin mutation. Audit completeness
// is a compliance property, not a correctness one: a failed write is logged
// and never fails the primary operation.
func (s *Server) audit(adminID uint, action, details string) {
	if err := s.store.LogActivity(adminID, action, details); err != nil {
		log.WithError(err).WithField("action", action).Error("failed to write audit record")
	}
}

// adminOverview is the API for the dashboard report
func (s *Server) adminOverview(c *gin.Context) {
	overview, err := s.store.Overview()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": overview})
}

// adminListUsers is the API for listing users with optional role and
// verification filters
func (s *Server) adminListUsers(c *gin.Context) {
	var role *schema.UserRole
	if v := c.Query("role"); v != "" {
		r := schema.UserRole(v)
		if !r.Valid() {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		role = &r
	}

	verified, ok := optionalBoolQuery(c, "verified")
	if !ok {
		return
	}

	users, err := s.store.ListUsers(role, verified)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": users})
}

// adminUpdateUserStatus is the API for toggling suspension and verification
func (s *Server) adminUpdateUserStatus(c *gin.Context) {
	account, _ := currentUser(c)

	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	suspended, ok := optionalBoolQuery(c, "is_suspended")
	if !ok {
		return
	}
	verified, ok := optionalBoolQuery(c, "is_verified")
	if !ok {
		return
	}

	if err := s.store.SetUserStatus(userID, suspended, verified); err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if suspended != nil {
		action := "suspend_user"
		if !*suspended {
			action = "reactivate_user"
		}
		s.audit(account.ID, action, fmt.Sprintf("User ID: %d", userID))
	}
	if verified != nil {
		action := "verify_user"
		if !*verified {
			action = "unverify_user"
		}
		s.audit(account.ID, action, fmt.Sprintf("User ID: %d", userID))
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminDeleteUser is the API for removing a user permanently
func (s *Server) adminDeleteUser(c *gin.Context) {
	account, _ := currentUser(c)

	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	if err := s.store.DeleteUser(userID); err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.audit(account.ID, "delete_user", fmt.Sprintf("User ID: %d", userID))

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminListRequests is the API for listing all requests regardless of
// participants, with an optional status filter
func (s *Server) adminListRequests(c *gin.Context) {
	var status *schema.RequestStatus
	if v := c.Query("status"); v != "" {
		st := schema.RequestStatus(v)
		if !st.Valid() {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		status = &st
	}

	reqs, err := s.store.ListRequests(status)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": reqs})
}

// adminReassignHelper is the privileged override: it swaps the helper on any
// request, bypassing the normal accept preconditions.
func (s *Server) adminReassignHelper(c *gin.Context) {
	account, _ := currentUser(c)

	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}

	helperID, err := strconv.ParseUint(c.Query("helper_id"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.ReassignHelper(requestID, uint(helperID)); err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		case store.ErrHelperNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorHelperNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.audit(account.ID, "reassign_helper", fmt.Sprintf("Request ID: %d, New Helper: %d", requestID, helperID))

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminChatHistory is the API for supervising a request's chat
func (s *Server) adminChatHistory(c *gin.Context) {
	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}

	msgs, err := s.store.ListMessages(requestID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": msgs})
}

// adminDeleteMessage is the API for removing a chat message
func (s *Server) adminDeleteMessage(c *gin.Context) {
	account, _ := currentUser(c)

	messageID, err := strconv.ParseUint(c.Param("messageID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.DeleteMessage(uint(messageID)); err != nil {
		if err == store.ErrMessageNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorMessageNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.audit(account.ID, "delete_message", fmt.Sprintf("Message ID: %d", messageID))

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminGetSettings is the API for reading the marketplace settings
func (s *Server) adminGetSettings(c *gin.Context) {
	settings, err := s.store.GetSettings()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": settings})
}

// adminUpdateSettings is the API for a partial settings update
func (s *Server) adminUpdateSettings(c *gin.Context) {
	account, _ := currentUser(c)

	var update schema.SettingsUpdate
	if err := c.BindJSON(&update); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	settings, err := s.store.UpdateSettings(update)
	if shouldInterupt(err, c) {
		return
	}

	s.audit(account.ID, "update_settings", fmt.Sprintf("%+v", update))

	c.JSON(http.StatusOK, gin.H{"result": settings})
}

// adminListLogs is the API for the recent audit trail
func (s *Server) adminListLogs(c *gin.Context) {
	logs, err := s.store.ListActivityLogs(100)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": logs})
}

func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("userID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return 0, false
	}
	return uint(id), true
}

func optionalBoolQuery(c *gin.Context, name string) (*bool, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}

	parsed, err := strconv.ParseBool(v)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return nil, false
	}
	return &parsed, true
}
