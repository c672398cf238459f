package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ascend-hq/ascend/internal/appcontext"
	"github.com/ascend-hq/ascend/internal/http/middleware"
)

type APIService struct {
	engine  *gin.Engine
	context *appcontext.Context
}

func NewHTTPService(ctx *appcontext.Context) *APIService {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.MetricsMiddleware())

	service := &APIService{
		engine:  engine,
		context: ctx,
	}
	service.setupRoutes()
	return service
}

func (h *APIService) Engine() *gin.Engine {
	return h.engine
}

func (h *APIService) setupRoutes() {
	api := h.engine.Group("/api")
	h.setupAuthRoutes(api)
	h.setupAmbitionRoutes(api)
	h.setupProjectRoutes(api)
	h.setupUserRoutes(api)
	h.setupResumeRoutes(api)
	h.setupCareerRoutes(api)
	h.setupInvitationRoutes(api)
	h.setupJoinRequestRoutes(api)
	h.setupMatchRoutes(api)
	h.setupSearchRoutes(api)
	h.setupStatsRoutes(api)

	api.GET("/chat/config", GetChatConfig(h.context))

	h.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	h.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *APIService) setupAuthRoutes(group *gin.RouterGroup) {
	auth := group.Group("/auth")

	auth.GET("/login", Login(h.context))
	auth.GET("/callback", Callback(h.context))
	auth.POST("/logout", Logout(h.context))
	auth.GET("/me", middleware.JWTAuthMiddleware(), GetUserInfo(h.context))
	auth.POST("/invite", middleware.JWTAuthMiddleware(), middleware.RequireManagement(h.context), InviteUser(h.context))
}

func (h *APIService) setupAmbitionRoutes(group *gin.RouterGroup) {
	ambitions := group.Group("/ambitions")
	ambitions.Use(middleware.JWTAuthMiddleware())

	ambitions.GET("", GetAmbitions(h.context))
	ambitions.POST("", middleware.RequireManagement(h.context), CreateAmbition(h.context))
	ambitions.DELETE("/:ambitionID", middleware.RequireManagement(h.context), DeleteAmbition(h.context))
}

func (h *APIService) setupProjectRoutes(group *gin.RouterGroup) {
	projects := group.Group("/projects")
	projects.Use(middleware.JWTAuthMiddleware())

	projects.GET("", GetProjects(h.context))
	projects.POST("", middleware.RequireManagement(h.context), CreateProject(h.context))
	projects.DELETE("/:projectID", middleware.RequireManagement(h.context), DeleteProject(h.context))
	projects.GET("/:projectID/team", GetProjectTeam(h.context))
	projects.POST("/:projectID/assign", middleware.RequireManagement(h.context), AssignTeamMember(h.context))
}

func (h *APIService) setupUserRoutes(group *gin.RouterGroup) {
	users := group.Group("/users")
	users.Use(middleware.JWTAuthMiddleware())

	users.GET("", middleware.RequireManagement(h.context), GetUsers(h.context))
	users.GET("/:userID", GetUser(h.context))
}

func (h *APIService) setupResumeRoutes(group *gin.RouterGroup) {
	resumes := group.Group("/resumes")
	resumes.Use(middleware.JWTAuthMiddleware())

	resumes.GET("", GetResumes(h.context))
	resumes.POST("", middleware.RequireManagement(h.context), ImportResume(h.context))
	resumes.PUT("/:resumeID/assign", middleware.RequireManagement(h.context), AssignResume(h.context))
	resumes.PUT("/:resumeID/unassign", middleware.RequireManagement(h.context), UnassignResume(h.context))
	resumes.DELETE("/:resumeID", middleware.RequireManagement(h.context), DeleteResume(h.context))
	resumes.GET("/:resumeID/url", GetResumeURL(h.context))
}

func (h *APIService) setupCareerRoutes(group *gin.RouterGroup) {
	careers := group.Group("/careers")
	careers.Use(middleware.JWTAuthMiddleware())

	careers.GET("/paths", GetCareerPaths(h.context))
	careers.GET("/preferences", GetCareerPreferences(h.context))
	careers.POST("/preferences", CreateCareerPreference(h.context))
	careers.DELETE("/preferences/:pathID", DeleteCareerPreference(h.context))
}

func (h *APIService) setupInvitationRoutes(group *gin.RouterGroup) {
	invitations := group.Group("/invitations")
	invitations.Use(middleware.JWTAuthMiddleware())

	invitations.GET("", GetMyInvitations(h.context))
	invitations.POST("", middleware.RequireManagement(h.context), CreateInvitation(h.context))
	invitations.PUT("/:invitationID/respond", RespondToInvitation(h.context))
}

func (h *APIService) setupJoinRequestRoutes(group *gin.RouterGroup) {
	joinRequests := group.Group("/join-requests")
	joinRequests.Use(middleware.JWTAuthMiddleware())

	joinRequests.POST("", CreateJoinRequest(h.context))
}

func (h *APIService) setupMatchRoutes(group *gin.RouterGroup) {
	match := group.Group("/match")
	match.Use(middleware.JWTAuthMiddleware())

	match.POST("", MatchResumes(h.context))
	match.POST("/watsonx", MatchResumesAI(h.context))
}

func (h *APIService) setupSearchRoutes(group *gin.RouterGroup) {
	search := group.Group("/search")
	search.Use(middleware.JWTAuthMiddleware())

	search.GET("", SearchResources(h.context))
}

func (h *APIService) setupStatsRoutes(group *gin.RouterGroup) {
	stats := group.Group("/stats")
	stats.Use(middleware.JWTAuthMiddleware())

	stats.GET("", GetDashboardStatistics(h.context))
}
