package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/agentcard/internal/card"
	"github.com/youruser/agentcard/internal/config"
	"github.com/youruser/agentcard/internal/export"
	imagepkg "github.com/youruser/agentcard/internal/image"
	"github.com/youruser/agentcard/internal/logger"
	"github.com/youruser/agentcard/internal/render"
)

const (
	defaultQRSize = 400
	maxQRSize     = 2048
)

type Handler struct {
	reg    *render.Registry
	assets imagepkg.Source
	cfg    config.RenderConfig
	log    logger.Logger
}

func NewHandler(reg *render.Registry, assets imagepkg.Source, cfg config.RenderConfig, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Handler{reg: reg, assets: assets, cfg: cfg, log: log}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type templateInfo struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Sides  []card.Side `json:"sides"`
	Width  float64     `json:"design_width"`
	Height float64     `json:"design_height"`
}

func (h *Handler) listTemplates(c *gin.Context) {
	var out []templateInfo
	for _, t := range h.reg.List() {
		out = append(out, templateInfo{
			ID:     t.ID,
			Name:   t.Name,
			Sides:  t.Sides(),
			Width:  t.Design.W,
			Height: t.Design.H,
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "templates": out, "default": h.cfg.DefaultTemplate})
}

type renderRequest struct {
	Agent    card.AgentCardData `json:"agent"`
	Template string             `json:"template"`
	Side     string             `json:"side"`
	Width    int                `json:"width"`
	Height   int                `json:"height"`
	Format   string             `json:"format"`
}

// renderCard draws one side of a card and returns it as an attachment.
func (h *Handler) renderCard(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	side, err := card.ParseSide(req.Side)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := render.Input{
		Agent:      req.Agent,
		TemplateID: req.Template,
		Side:       side,
		Width:      req.Width,
		Height:     req.Height,
	}
	if in.TemplateID == "" {
		in.TemplateID = h.cfg.DefaultTemplate
	}
	if in.Width == 0 && in.Height == 0 {
		in.Width, in.Height = h.cfg.Width, h.cfg.Height
	}
	if in.Width > h.cfg.MaxWidth || in.Height > h.cfg.MaxHeight {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requested size exceeds " +
			strconv.Itoa(h.cfg.MaxWidth) + "x" + strconv.Itoa(h.cfg.MaxHeight)})
		return
	}

	ctx := c.Request.Context()
	if h.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.Timeout)
		defer cancel()
	}

	o := render.NewOrchestrator(h.reg, h.assets, h.log.With(map[string]interface{}{
		"request_id": c.GetString(requestIDKey),
	}))
	res, err := o.Render(ctx, in)
	if err != nil {
		status, msg := renderErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	art, err := export.Export(res, export.PartsOf(res), format)
	if err != nil {
		h.log.WithError(err).Error("export failed", map[string]interface{}{"template": in.TemplateID})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+art.Filename+`"`)
	c.Data(http.StatusOK, art.ContentType, art.Data)
}

func renderErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, render.ErrUnknownTemplate):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, render.ErrUnsupportedSide),
		errors.Is(err, render.ErrInvalidSize),
		errors.Is(err, card.ErrMissingName):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "render timed out"
	default:
		return http.StatusInternalServerError, render.ErrRenderFailed.Error()
	}
}

// qrHandler returns a PNG of a QR for the "text" query param.
func (h *Handler) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := defaultQRSize
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= maxQRSize {
			size = v
		}
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
