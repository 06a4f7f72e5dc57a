package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal" // (우아한 종료)
	"syscall"   // (우아한 종료)

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus" // Logrus 사용

	// 내부 패키지 임포트
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/guestbook"
	"portfolio/internal/home"
	"portfolio/internal/middleware"
	"portfolio/internal/notify"
	"portfolio/internal/project"
	"portfolio/internal/remote"
	"portfolio/internal/scheduler"
	"portfolio/internal/site"
	"portfolio/web"
)

func main() {
	var paramKey, configPath string
	flag.StringVar(&paramKey, "conf", "", "parameter store key (비어 있으면 -file 사용)")
	flag.StringVar(&configPath, "file", config.DefaultPath, "config file path")
	flag.Parse()

	// 1. Configure load
	cfg, err := loadConfig(paramKey, configPath)
	if err != nil {
		log.Panic(err)
	}
	setupLogger(cfg.Log)

	// 2. 원격 저장소 선택
	var (
		rs      remote.Store
		storage fiber.Storage // nil이면 Fiber 메모리 스토리지
	)
	switch cfg.Remote.Driver {
	case config.DriverMySQL:
		dbo, err := database.CreateConnection(database.DBI{
			User:     cfg.Repository.User,
			Password: cfg.Repository.Password,
			Endpoint: cfg.Repository.Endpoint,
			Port:     cfg.Repository.Port,
			Database: cfg.Repository.Database,
		})
		if err != nil {
			log.Fatalf("Repository Connection failed. %v", err)
		}
		defer dbo.Close()
		log.Info("Successfully connected to the database.")

		rs = remote.NewMySQLStore(dbo)
		storage = database.NewSessionStorage(dbo, cfg.Session.Table)
		log.Info("MySQL 세션 스토어가 설정되었습니다.")
	case config.DriverPostgREST:
		rs = remote.NewPostgRESTStore(remote.PostgRESTConfig{
			URL:     cfg.PostgREST.URL,
			APIKey:  cfg.PostgREST.APIKey,
			Timeout: cfg.PostgREST.Timeout,
		})
		log.Infof("PostgREST 원격 저장소를 사용합니다. (%s)", cfg.PostgREST.URL)
	default:
		mem := remote.NewMemoryStore()
		if cfg.Remote.SeedDemo {
			seedDemo(mem, cfg.Remote)
		}
		rs = mem
		log.Warn("메모리 원격 저장소를 사용합니다. (재시작 시 데이터가 사라집니다)")
	}

	// 3. 의존성 조립 (Dependency Injection)
	sessionStore := session.New(session.Config{
		Storage:        storage,
		Expiration:     cfg.Session.Expiration,
		CookieName:     cfg.Session.CookieName,
		CookieSecure:   cfg.Session.CookieSecure,
		CookieHTTPOnly: true,
	})

	content := site.NewContent(site.Profile(cfg.Profile))

	var notifier guestbook.Notifier
	if cfg.SlackEnabled() {
		notifier = notify.NewSlackNotifier(cfg.Slack.Token, cfg.Slack.Channel)
		log.Infof("방명록 Slack 알림이 설정되었습니다. (채널: %s)", cfg.Slack.Channel)
	}

	// Guestbook
	guestbookStore := guestbook.NewStore(rs, cfg.Remote.GuestbookCollection)
	guestbookService := guestbook.NewService(guestbookStore, notifier)
	guestbookHandler := guestbook.NewGuestbookHandler(guestbookService)

	// Project
	projectStore := project.NewStore(rs, cfg.Remote.ProjectCollection)
	projectService := project.NewService(projectStore, cfg.Remote.FeaturedLimit)
	projectHandler := project.NewProjectHandler(projectService, content)

	// Home
	homeService := home.NewService(guestbookService, projectService)
	homeHandler := home.NewHomeHandler(homeService, content, sessionStore)

	// Scheduler
	keepAlive := scheduler.NewScheduler(cfg.Scheduler.KeepAliveSpec, projectStore)

	// 4. Fiber 앱 생성 및 템플릿 설정
	app := fiber.New(fiber.Config{
		Views:                 web.NewEngine(),
		DisableStartupMessage: true,
	})
	app.Use(middleware.RequestLogger())

	// 5. 정적 파일(CSS, JS) 라우팅
	app.Use("/public", filesystem.New(filesystem.Config{
		Root: web.Public(),
	}))

	// 6. 라우트(URL) 설정
	log.Info("라우트를 설정합니다...")

	pageGroup := app.Group("/", middleware.Flash(sessionStore))
	{
		pageGroup.Get("/", homeHandler.HandleShowHome)
		pageGroup.Get("/about", homeHandler.HandleShowAbout)
		pageGroup.Post("/guestbook", homeHandler.HandleSubmitGuestbook)
		pageGroup.Get("/projects", projectHandler.HandleShowProjectsPage)
	}

	apiGroup := app.Group("/api")
	{
		apiGroup.Get("/guestbook", guestbookHandler.HandleListEntries)
		apiGroup.Post("/guestbook", guestbookHandler.HandleCreateEntry)
		apiGroup.Get("/projects", projectHandler.HandleListProjects)
	}

	// 7. 서버 시작 (우아한 종료 로직)

	// (스케줄러 시작)
	if err := keepAlive.Start(); err != nil {
		log.Fatalf("keep-alive 스케줄 등록 실패 (%s): %v", cfg.Scheduler.KeepAliveSpec, err)
	}

	// (Fiber 앱 시작)
	go func() {
		log.Infof("Portfolio 서버(HTTP)가 [::]:%d 포트에서 시작됩니다.", cfg.Server.Port)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			log.Panicf("HTTP 서버 Listen 실패: %v", err)
		}
	}()

	// (종료 신호 대기)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("Portfolio 서버 종료 신호 수신...")

	keepAlive.Stop()

	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.Errorf("HTTP 서버 Shutdown 실패: %v", err)
	}

	log.Info("Portfolio 서버가 정상적으로 종료되었습니다.")
}

// loadConfig는 -conf가 있으면 Parameter Store, 없으면 파일/환경 변수에서 설정을 읽습니다.
func loadConfig(paramKey, path string) (*config.Config, error) {
	if paramKey != "" {
		return config.LoadParamStore(config.DefaultRegion, paramKey)
	}
	return config.Load(path)
}

func setupLogger(c config.LogConfig) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if c.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
