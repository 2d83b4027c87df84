package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/sasha-s/go-deadlock"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/RAAHUL-tech/portfolio/internal/config"
	"github.com/RAAHUL-tech/portfolio/internal/prefs"
	"github.com/RAAHUL-tech/portfolio/internal/theme"
	"github.com/RAAHUL-tech/portfolio/internal/tui"
)

//go:embed templates/*.html
var templateFS embed.FS

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "tui" {
		setupLogging(cfg, io.Discard)
		if err := runTUI(cfg); err != nil {
			log.Fatalf("tui: %v", err)
		}
		return
	}

	setupLogging(cfg, os.Stderr)
	if err := runServer(cfg); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

// setupLogging routes the standard logger and gin's writers. The terminal UI
// owns the screen, so it passes io.Discard as console.
func setupLogging(cfg config.Config, console io.Writer) {
	out := console
	if cfg.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxSize:  10, // megabytes
			MaxAge:   28, // days
		}
		out = io.MultiWriter(console, rotator)
	}
	log.SetOutput(out)
	gin.DefaultWriter = out
	gin.DefaultErrorWriter = out

	// A lock held past the timeout is reported, not fatal.
	deadlock.Opts.LogBuf = out
	deadlock.Opts.OnPotentialDeadlock = func() {
		log.Printf("level=error event=potential_deadlock")
	}
}

func runTUI(cfg config.Config) error {
	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		return err
	}
	defer store.Close()

	bridge := &tui.Bridge{}
	policy := theme.NewPolicy(store, bridge,
		theme.WithInterval(cfg.ThemeInterval),
		theme.WithClock(func() time.Time { return time.Now().In(cfg.Location) }),
	)
	defer policy.Close()

	return tui.Run(policy, bridge, cfg.SectionThreshold)
}

func runServer(cfg config.Config) error {
	if err := initDB(cfg.DBPath); err != nil {
		return err
	}
	defer db.Close()

	initAdminToken(cfg.Admin)
	go cleanupOldVisitorData()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           newRouter(cfg, smtpMailer{cfg: cfg.SMTP}),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("level=info event=startup port=%d db=%s tz=%s", cfg.Port, cfg.DBPath, cfg.Location)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"join":  strings.Join,
		"upper": strings.ToUpper,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

func newRouter(cfg config.Config, mailer Mailer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(loadTemplates())

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.Use(visitorTrackingMiddleware())

	site := &siteHandlers{loc: cfg.Location, mailer: mailer}

	// Home page route
	r.GET("/", site.index)

	// HTMX section fragments, e.g. lazily loading projects
	r.GET("/sections/:id", site.sectionFragment)

	// Theme preference
	r.GET("/theme", site.themeState)
	r.POST("/theme", site.setTheme)
	r.POST("/theme/toggle", site.toggleTheme)

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact-form", gin.H{
			"title": "Contact Me",
		})
	})
	r.POST("/contact", site.contact)

	setupAdminRoutes(r, cfg.Admin)
	return r
}
