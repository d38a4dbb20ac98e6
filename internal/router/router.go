package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"linkboard-api/internal/client"
	"linkboard-api/internal/config"
	"linkboard-api/internal/handler"
	"linkboard-api/internal/metrics"
	"linkboard-api/internal/middleware"
	"linkboard-api/internal/repository"
	"linkboard-api/internal/service"
	"linkboard-api/internal/ws"
)

// Config carries the dependencies the router needs
type Config struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	S3Client client.S3ClientInterface
	Hub      *ws.Hub
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
}

// Setup builds the gin engine with all routes and middleware
func Setup(rc Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(rc.Logger))
	r.Use(middleware.CORS(rc.Cfg.Server.AllowedOrigins))
	r.Use(middleware.Metrics(rc.Metrics))

	// Repositories
	userRepo := repository.NewUserRepository(rc.DB)
	folderRepo := repository.NewFolderRepository(rc.DB)
	bookmarkRepo := repository.NewBookmarkRepository(rc.DB)
	boardRepo := repository.NewBoardRepository(rc.DB)
	cardRepo := repository.NewCardRepository(rc.DB)
	timelineRepo := repository.NewTimelineRepository(rc.DB)
	folderCollabRepo := repository.NewFolderCollaborationRepository(rc.DB)
	boardCollabRepo := repository.NewBoardCollaborationRepository(rc.DB)

	// Services
	tokenIssuer := service.NewTokenIssuer(rc.Cfg.JWT)
	authService := service.NewAuthService(rc.Cfg.OAuth, rc.Cfg.Admin, userRepo, folderCollabRepo, boardCollabRepo, tokenIssuer, rc.Metrics, rc.Logger)
	folderService := service.NewFolderService(folderRepo, bookmarkRepo, folderCollabRepo, rc.Redis, rc.Metrics, rc.Logger)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, folderRepo, folderCollabRepo, rc.Metrics, rc.Logger)
	boardService := service.NewBoardService(boardRepo, folderRepo, boardCollabRepo, rc.Metrics, rc.Logger)
	cardService := service.NewCardService(cardRepo, boardRepo, boardCollabRepo, timelineRepo, userRepo, rc.Hub, rc.Metrics, rc.Logger)
	timelineService := service.NewTimelineService(timelineRepo, boardRepo, boardCollabRepo, userRepo, rc.Hub, rc.Logger)
	collabService := service.NewCollaborationService(folderCollabRepo, boardCollabRepo, folderRepo, boardRepo, userRepo, rc.Metrics, rc.Logger)
	invitationService := service.NewInvitationService(folderCollabRepo, boardCollabRepo, boardRepo, rc.Logger)
	profileService := service.NewProfileService(userRepo, tokenIssuer, rc.Logger)
	metaImageService := service.NewMetaImageService(rc.Redis, rc.Metrics, rc.Logger)
	uploadService := service.NewUploadService(rc.S3Client, rc.Logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, rc.Logger)
	folderHandler := handler.NewFolderHandler(folderService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	boardHandler := handler.NewBoardHandler(boardService)
	cardHandler := handler.NewCardHandler(cardService)
	timelineHandler := handler.NewTimelineHandler(timelineService, rc.Hub, rc.Logger)
	collabHandler := handler.NewCollaborationHandler(collabService, invitationService)
	profileHandler := handler.NewProfileHandler(profileService)
	metaHandler := handler.NewMetaHandler(metaImageService)
	publicHandler := handler.NewPublicHandler(folderService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	healthHandler := handler.NewHealthHandler()

	// Probes and metrics (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// Login flow and public share endpoints (no auth)
		api.GET("/auth/google/login", authHandler.GoogleLogin)
		api.GET("/auth/google/callback", authHandler.GoogleCallback)
		api.GET("/public/folders/:folderId", publicHandler.GetPublicFolder)
		api.GET("/meta-image", metaHandler.GetMetaImage)

		// Websocket stream authenticates with a token query parameter
		// because browsers cannot set headers on the upgrade request.
		api.GET("/boards/:boardId/timeline/ws",
			middleware.AuthTokenQuery(rc.Cfg.JWT.Secret),
			timelineHandler.StreamTimeline)

		auth := api.Group("")
		auth.Use(middleware.Auth(rc.Cfg.JWT.Secret))
		{
			auth.GET("/admin/check", authHandler.CheckAdmin)
			auth.PUT("/user/profile", profileHandler.UpdateProfile)
			auth.POST("/uploads/presigned", uploadHandler.GeneratePresignedUpload)

			folders := auth.Group("/folders")
			{
				folders.POST("", folderHandler.CreateFolder)
				folders.GET("", folderHandler.GetFolders)
				folders.GET("/:folderId", folderHandler.GetFolder)
				folders.PUT("/:folderId", folderHandler.UpdateFolder)
				folders.DELETE("/:folderId", folderHandler.DeleteFolder)
				folders.POST("/:folderId/bookmarks", bookmarkHandler.CreateBookmark)
				folders.PUT("/:folderId/bookmarks/reorder", bookmarkHandler.ReorderBookmarks)
				folders.POST("/:folderId/collaborations", collabHandler.InviteToFolder)
				folders.GET("/:folderId/collaborations", collabHandler.ListFolderCollaborations)
			}

			bookmarks := auth.Group("/bookmarks")
			{
				bookmarks.PUT("/:bookmarkId", bookmarkHandler.UpdateBookmark)
				bookmarks.DELETE("/:bookmarkId", bookmarkHandler.DeleteBookmark)
			}

			boards := auth.Group("/boards")
			{
				boards.POST("", boardHandler.CreateBoard)
				boards.GET("", boardHandler.GetBoards)
				boards.GET("/:boardId", boardHandler.GetBoard)
				boards.PUT("/:boardId", boardHandler.UpdateBoard)
				boards.DELETE("/:boardId", boardHandler.DeleteBoard)
				boards.POST("/:boardId/cards", cardHandler.CreateCard)
				boards.GET("/:boardId/timeline", timelineHandler.GetTimeline)
				boards.POST("/:boardId/timeline", timelineHandler.AddComment)
				boards.POST("/:boardId/collaborations", collabHandler.InviteToBoard)
				boards.GET("/:boardId/collaborations", collabHandler.ListBoardCollaborations)
				boards.GET("/collaborations/pending", collabHandler.GetPendingBoardInvitations)
			}

			cards := auth.Group("/cards")
			{
				cards.PUT("/:cardId", cardHandler.UpdateCard)
				cards.DELETE("/:cardId", cardHandler.DeleteCard)
			}

			collaborations := auth.Group("/collaborations")
			{
				collaborations.GET("/pending", collabHandler.GetPendingFolderInvitations)
				collaborations.GET("/folders/pending", collabHandler.GetPendingFolderInvitations)
				collaborations.GET("/boards/pending", collabHandler.GetPendingBoardInvitations)
				collaborations.POST("/folders/:collaborationId/respond", collabHandler.RespondToFolderInvitation)
				collaborations.POST("/boards/:collaborationId/respond", collabHandler.RespondToBoardInvitation)
				collaborations.DELETE("/folders/:collaborationId", collabHandler.RemoveFolderCollaboration)
				collaborations.DELETE("/boards/:collaborationId", collabHandler.RemoveBoardCollaboration)
			}
		}
	}

	return r
}
