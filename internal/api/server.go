package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/campuselect/election-api/docs"
	v1 "github.com/campuselect/election-api/internal/api/handler/v1"
	"github.com/campuselect/election-api/internal/api/middleware"
	"github.com/campuselect/election-api/internal/config"
	"github.com/campuselect/election-api/internal/repository"
	"github.com/campuselect/election-api/internal/repository/dao"
	"github.com/campuselect/election-api/internal/service"
	"github.com/campuselect/election-api/internal/store"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, kv *store.Store) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	// The scan verifier is session state shared by auth and voting, and the
	// live hub is shared by everything that mutates tallies.
	verifier := service.NewVerifyService()
	resultsSvc := service.NewResultsService(
		repository.NewCandidateRepository(dao.NewCandidateDAO(kv)),
		repository.NewElectionRepository(dao.NewElectionDAO(kv), kv),
	)
	liveHandler := v1.NewLiveHandler(resultsSvc)
	go liveHandler.Run()

	authHandler := s.initAuthHandler(kv, verifier)
	voteHandler := s.initVoteHandler(kv, verifier, liveHandler)
	candidateHandler := s.initCandidateHandler(kv)
	electionHandler := s.initElectionHandler(kv, resultsSvc, liveHandler)
	resultsHandler := v1.NewResultsHandler(resultsSvc)
	s.MountHandlers(authHandler, voteHandler, candidateHandler, electionHandler, resultsHandler, liveHandler)

	return s
}

func (s *Server) initAuthHandler(kv *store.Store, verifier service.SessionVerifier) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(kv)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo, verifier)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initVoteHandler(kv *store.Store, verifier *service.VerifyService, notifier v1.ResultsNotifier) *v1.VoteHandler {
	electionRepo := repository.NewElectionRepository(dao.NewElectionDAO(kv), kv)
	candidateRepo := repository.NewCandidateRepository(dao.NewCandidateDAO(kv))
	ballotRepo := repository.NewBallotRepository(dao.NewBallotDAO(kv))
	svc := service.NewVoteService(electionRepo, candidateRepo, ballotRepo, verifier)
	handler := v1.NewVoteHandler(svc, verifier, notifier)

	return handler
}

func (s *Server) initCandidateHandler(kv *store.Store) *v1.CandidateHandler {
	svc := s.initRegistryService(kv)
	handler := v1.NewCandidateHandler(svc)

	return handler
}

func (s *Server) initElectionHandler(kv *store.Store, resultsSvc *service.ResultsService, notifier v1.ResultsNotifier) *v1.ElectionHandler {
	svc := s.initRegistryService(kv)
	handler := v1.NewElectionHandler(svc, resultsSvc, notifier)

	return handler
}

func (s *Server) initRegistryService(kv *store.Store) *service.RegistryService {
	candidateRepo := repository.NewCandidateRepository(dao.NewCandidateDAO(kv))
	electionRepo := repository.NewElectionRepository(dao.NewElectionDAO(kv), kv)

	return service.NewRegistryService(candidateRepo, electionRepo)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	voteHandler *v1.VoteHandler,
	candidateHandler *v1.CandidateHandler,
	electionHandler *v1.ElectionHandler,
	resultsHandler *v1.ResultsHandler,
	liveHandler *v1.LiveHandler,
) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authed := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		authed.GET("/positions", candidateHandler.HandleGetPositions)
		authed.GET("/candidates", candidateHandler.HandleGetCandidates)
		authed.GET("/election", electionHandler.HandleGetElection)
		authed.POST("/vote/verify", voteHandler.HandleVerifyScan)
		authed.GET("/vote/status", voteHandler.HandleVoteStatus)
		authed.POST("/vote", voteHandler.HandleCastVote)
		authed.GET("/results", resultsHandler.HandleGetResults)
		authed.PUT("/profile", authHandler.HandleUpdateProfile)
	}

	admin := s.Router.Group(basePath, authenticator.VerifyJWT(), authenticator.RequireAdmin())
	{
		admin.GET("/results/live", liveHandler.HandleLiveResults)
		admin.PUT("/admin/election", electionHandler.HandleToggleElection)
		admin.POST("/admin/candidates", candidateHandler.HandleCreateCandidate)
		admin.PUT("/admin/candidates/:candidateID", candidateHandler.HandleUpdateCandidate)
		admin.DELETE("/admin/candidates/:candidateID", candidateHandler.HandleDeleteCandidate)
		admin.POST("/admin/reset-votes", electionHandler.HandleResetVotes)
		admin.DELETE("/admin/data", electionHandler.HandleClearData)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Campus Election API"
	docs.SwaggerInfo.Description = "Single-election voting API for a campus student union."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
