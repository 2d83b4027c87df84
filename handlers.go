package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RAAHUL-tech/portfolio/internal/section"
	"github.com/RAAHUL-tech/portfolio/internal/theme"
)

// tzCookie optionally carries the visitor's IANA time zone so auto mode
// follows their clock rather than the server's.
const tzCookie = "portfolio-tz"

// clock is swapped in tests.
var clock = time.Now

type siteHandlers struct {
	loc    *time.Location
	mailer Mailer
}

type themeRequest struct {
	Mode string `form:"mode" json:"mode" binding:"required"`
}

type themeResponse struct {
	theme.State
	theme.Attributes
}

// policyFor builds a request-scoped policy over the visitor's cookies. It
// never ticks; browsers poll GET /theme while in auto mode instead.
func (h *siteHandlers) policyFor(c *gin.Context) (*theme.Policy, *theme.Recorder) {
	loc := h.loc
	if loc == nil {
		loc = time.Local
	}
	if ck, err := c.Cookie(tzCookie); err == nil && ck != "" {
		if visitorLoc, err := time.LoadLocation(ck); err == nil {
			loc = visitorLoc
		}
	}

	rec := &theme.Recorder{}
	p := theme.NewPolicy(theme.NewCookieStore(c.Writer, c.Request), rec,
		theme.WithInterval(0),
		theme.WithClock(func() time.Time { return clock().In(loc) }),
	)
	return p, rec
}

func (h *siteHandlers) index(c *gin.Context) {
	p, rec := h.policyFor(c)
	defer p.Close()

	c.HTML(http.StatusOK, "index.html", newPageData(p.State(), rec.Attributes()))
}

func (h *siteHandlers) sectionFragment(c *gin.Context) {
	id := section.ID(strings.ToLower(c.Param("id")))
	if _, ok := sectionTitles[id]; !ok {
		c.String(http.StatusNotFound, "unknown section")
		return
	}

	p, rec := h.policyFor(c)
	defer p.Close()

	c.HTML(http.StatusOK, "section-"+string(id), newPageData(p.State(), rec.Attributes()))
}

func (h *siteHandlers) themeState(c *gin.Context) {
	p, rec := h.policyFor(c)
	defer p.Close()

	h.respondTheme(c, p.State(), rec.Attributes())
}

func (h *siteHandlers) setTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode is required"})
		return
	}
	mode, ok := theme.ParseMode(req.Mode)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be light, dark or auto"})
		return
	}

	p, rec := h.policyFor(c)
	defer p.Close()
	p.SetMode(mode)

	recordThemeChoice(mode, "set")
	h.respondTheme(c, p.State(), rec.Attributes())
}

func (h *siteHandlers) toggleTheme(c *gin.Context) {
	p, rec := h.policyFor(c)
	defer p.Close()
	p.Toggle()

	state := p.State()
	recordThemeChoice(state.Mode, "toggle")
	h.respondTheme(c, state, rec.Attributes())
}

// respondTheme answers HTMX requests with the toggle fragment and everyone
// else with JSON. Both carry an HX-Trigger so the page can swap data-theme
// and the body class without a reload.
func (h *siteHandlers) respondTheme(c *gin.Context, state theme.State, attrs theme.Attributes) {
	trigger, err := json.Marshal(gin.H{
		"themeChanged": gin.H{"mode": state.Mode, "theme": attrs.DataTheme, "class": attrs.Class},
	})
	if err != nil {
		log.Printf("level=error event=theme_trigger_encode err=%q", err)
	} else {
		c.Header("HX-Trigger", string(trigger))
	}

	if c.GetHeader("HX-Request") == "true" {
		c.HTML(http.StatusOK, "theme-toggle", newPageData(state, attrs))
		return
	}
	c.JSON(http.StatusOK, themeResponse{State: state, Attributes: attrs})
}
