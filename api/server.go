package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/acadmate/acadmate-api/logmodule"
	"github.com/acadmate/acadmate-api/realtime"
	"github.com/acadmate/acadmate-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.AcadmateCore

	// Realtime fanout
	hub *realtime.Hub

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(ormDB *gorm.DB, jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         store.NewAcadmateStore(ormDB),
		hub:           realtime.NewHub(),
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetStringSlice("server.cors.origins"),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api/v1")
	apiRoute.Use(logmodule.Ginrus("API"))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
		authRoute.POST("/refresh", s.refreshToken)
		authRoute.POST("/logout", s.logout)
	}

	// api routes other than `/auth` apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.currentUserMiddleware())

	userRoute := apiRoute.Group("/users")
	{
		userRoute.GET("/me", s.userMe)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listOpenRequests)
		requestRoute.GET("/my", s.listMyRequests)
		requestRoute.PUT("/:requestID/accept", s.acceptRequest)
		requestRoute.PUT("/:requestID/pay-advance", s.payAdvance)
		requestRoute.PUT("/:requestID/complete", s.completeRequest)
		requestRoute.PUT("/:requestID/cancel", s.cancelRequest)
		requestRoute.GET("/:requestID/messages", s.listRequestMessages)
	}

	apiRoute.GET("/ws", s.stream)

	adminRoute := apiRoute.Group("/admin")
	adminRoute.Use(s.adminRequired())
	{
		adminRoute.GET("/overview", s.adminOverview)
		adminRoute.GET("/users", s.adminListUsers)
		adminRoute.PUT("/users/:userID/status", s.adminUpdateUserStatus)
		adminRoute.DELETE("/users/:userID", s.adminDeleteUser)
		adminRoute.GET("/requests", s.adminListRequests)
		adminRoute.PUT("/requests/:requestID/reassign", s.adminReassignHelper)
		adminRoute.GET("/chats/:requestID", s.adminChatHistory)
		adminRoute.DELETE("/messages/:messageID", s.adminDeleteMessage)
		adminRoute.GET("/settings", s.adminGetSettings)
		adminRoute.PUT("/settings", s.adminUpdateSettings)
		adminRoute.GET("/logs", s.adminListLogs)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
