package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acadmate/acadmate-api/realtime"
	"github.com/acadmate/acadmate-api/schema"
	"github.com/acadmate/acadmate-api/store"
	"github.com/acadmate/acadmate-api/utils"
)

// RequestView is the per-viewer output shape of a help request. The
// disclosure fields are computed at read time for one specific viewer and are
// never persisted.
type RequestView struct {
	schema.HelpRequest
	StudentName string `json:"student_name,omitempty"`
	HelperName  string `json:"helper_name,omitempty"`
	PeerPhone   string `json:"peer_phone,omitempty"`
}

// buildRequestView projects a request for a viewer. The counterparty's phone
// is disclosed only after the advance is paid on a request with both
// participants set, and only to one of those two participants.
func buildRequestView(req schema.HelpRequest, student, helper *schema.User, viewerID uint) RequestView {
	view := RequestView{HelpRequest: req}

	if student != nil {
		view.StudentName = student.Name
	}
	if helper != nil {
		view.HelperName = helper.Name
	}

	if !req.AdvancePaid || req.HelperID == nil || student == nil || helper == nil {
		return view
	}

	switch viewerID {
	case req.StudentID:
		view.PeerPhone = helper.PhoneNumber
	case *req.HelperID:
		view.PeerPhone = student.PhoneNumber
	}

	return view
}

// createRequest is the API for a student to post a help request
func (s *Server) createRequest(c *gin.Context) {
	account, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	switch account.Role {
	case schema.RoleStudent:
	case schema.RoleHelper, schema.RoleAdmin:
		abortWithEncoding(c, http.StatusForbidden, errorRoleNotAllowed)
		return
	default:
		abortWithEncoding(c, http.StatusForbidden, errorRoleNotAllowed)
		return
	}

	var params struct {
		Title       string   `json:"title" binding:"required"`
		Subject     string   `json:"subject" binding:"required"`
		Description string   `json:"description" binding:"required"`
		Deadline    string   `json:"deadline"`
		Budget      *float64 `json:"budget" binding:"omitempty,gte=0"`
		Attachments []string `json:"attachments"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	req, err := s.store.CreateRequest(account.ID, store.RequestParams{
		Title:       params.Title,
		Subject:     params.Subject,
		Description: params.Description,
		Deadline:    utils.ParseDeadline(params.Deadline),
		Budget:      params.Budget,
		Attachments: params.Attachments,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// listOpenRequests is the API for browsing claimable requests. No disclosure
// fields ever appear here.
func (s *Server) listOpenRequests(c *gin.Context) {
	reqs, err := s.store.ListOpenRequests()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": reqs})
}

// listMyRequests is the API for a participant to list their own requests,
// enriched with names and the conditionally disclosed peer phone.
func (s *Server) listMyRequests(c *gin.Context) {
	account, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	reqs, err := s.store.ListRequestsByParticipant(account)
	if shouldInterupt(err, c) {
		return
	}

	views := make([]RequestView, 0, len(reqs))
	for _, req := range reqs {
		student, helper, err := s.requestParticipants(req)
		if shouldInterupt(err, c) {
			return
		}
		views = append(views, buildRequestView(req, student, helper, account.ID))
	}

	c.JSON(http.StatusOK, gin.H{"result": views})
}

// requestParticipants loads the two participant users of a request. A missing
// user is tolerated: the projection simply omits the dependent fields.
func (s *Server) requestParticipants(req schema.HelpRequest) (student, helper *schema.User, err error) {
	student, err = s.store.GetUser(req.StudentID)
	if err != nil {
		if err != store.ErrUserNotFound {
			return nil, nil, err
		}
		student = nil
	}

	if req.HelperID != nil {
		helper, err = s.store.GetUser(*req.HelperID)
		if err != nil {
			if err != store.ErrUserNotFound {
				return nil, nil, err
			}
			helper = nil
		}
	}

	return student, helper, nil
}

// acceptRequest is the API for a helper to claim an open request. Exactly one
// of several racing helpers wins; the rest are told the request is gone so
// they can refresh instead of retrying.
func (s *Server) acceptRequest(c *gin.Context) {
	account, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	switch account.Role {
	case schema.RoleHelper:
	case schema.RoleStudent, schema.RoleAdmin:
		abortWithEncoding(c, http.StatusForbidden, errorRoleNotAllowed)
		return
	default:
		abortWithEncoding(c, http.StatusForbidden, errorRoleNotAllowed)
		return
	}

	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}

	if err := s.store.AcceptRequest(account.ID, requestID); err != nil {
		s.abortWithLifecycleError(c, err)
		return
	}

	// tell browsing clients the request left the open pool
	s.hub.BroadcastGlobal(realtime.NewEvent("request_accepted", gin.H{
		"request_id": requestID,
	}))

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// payAdvance is the API for the owning student to settle the advance
func (s *Server) payAdvance(c *gin.Context) {
	account, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}

	if err := s.store.PayAdvance(account.ID, requestID); err != nil {
		s.abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// completeRequest is the API for the owning student to close out a request
func (s *Server) completeRequest(c *gin.Context) {
	account, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}

	if err := s.store.CompleteRequest(account.ID, requestID); err != nil {
		s.abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// cancelRequest is the API for either participant to cancel a request
func (s *Server) cancelRequest(c *gin.Context) {
	account, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}

	if err := s.store.CancelRequest(account.ID, requestID); err != nil {
		s.abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// abortWithLifecycleError maps lifecycle engine errors onto the wire
// taxonomy. State errors keep their expected-vs-actual message.
func (s *Server) abortWithLifecycleError(c *gin.Context, err error) {
	var stateErr *store.StateError

	switch {
	case err == store.ErrRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
	case err == store.ErrRequestUnavailable:
		abortWithEncoding(c, http.StatusBadRequest, errorRequestUnavailable)
	case err == store.ErrNotRequestOwner, err == store.ErrNotParticipant:
		abortWithEncoding(c, http.StatusForbidden, errorNotParticipant)
	case errors.As(err, &stateErr):
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidState.Code,
			Message: stateErr.Error(),
		})
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

func requestIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("requestID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return 0, false
	}
	return uint(id), true
}
