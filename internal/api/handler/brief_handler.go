package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/briefpanel/brief-service/internal/api/metrics"
	appmiddleware "github.com/briefpanel/brief-service/internal/api/middleware"
	"github.com/briefpanel/brief-service/internal/core/domain"
	"github.com/briefpanel/brief-service/internal/core/ports"
)

const listDateFormat = "2006-01-02 15:04"

// BriefHandler serves the public brief pages and the protected panel.
type BriefHandler struct {
	briefService ports.BriefService
}

func NewBriefHandler(briefService ports.BriefService) *BriefHandler {
	return &BriefHandler{briefService: briefService}
}

type briefView struct {
	Title    string
	Filename string
	Date     string
}

type listView struct {
	Briefs []briefView
}

type panelView struct {
	Username string
	Briefs   []briefView
}

type createBriefRequest struct {
	Theme       string `form:"theme" validate:"required,max=200"`
	Description string `form:"description"`
}

// List handles GET /documents — the public listing, newest first.
func (h *BriefHandler) List(c echo.Context) error {
	briefs, err := h.briefService.ListBriefs()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "briefs.html", listView{Briefs: toViews(briefs)})
}

// Show handles GET /documents/:filename — the raw stored document.
func (h *BriefHandler) Show(c echo.Context) error {
	content, err := h.briefService.GetBrief(c.Param("filename"))
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, content)
}

// Panel handles GET /panel — the protected listing plus creation form.
func (h *BriefHandler) Panel(c echo.Context) error {
	briefs, err := h.briefService.ListBriefs()
	if err != nil {
		return err
	}
	user := appmiddleware.CurrentUser(c)
	return c.Render(http.StatusOK, "panel.html", panelView{
		Username: user.Username,
		Briefs:   toViews(briefs),
	})
}

// Create handles POST /create-brief. Generation is synchronous; on success
// the client is redirected back to the panel where the new brief is listed
// first. Failures surface as errors, never as silent retries.
func (h *BriefHandler) Create(c echo.Context) error {
	var req createBriefRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	if _, err := h.briefService.CreateBrief(c.Request().Context(), req.Theme, req.Description); err != nil {
		metrics.BriefsCreatedTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	metrics.BriefsCreatedTotal.WithLabelValues("ok").Inc()

	return c.Redirect(http.StatusSeeOther, "/panel")
}

func toViews(briefs []domain.BriefInfo) []briefView {
	views := make([]briefView, 0, len(briefs))
	for _, b := range briefs {
		views = append(views, briefView{
			Title:    b.Title,
			Filename: b.Filename,
			Date:     b.CreatedAt.Format(listDateFormat),
		})
	}
	return views
}
