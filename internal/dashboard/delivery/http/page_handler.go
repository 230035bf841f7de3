package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/navigation"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// postActions are the actions accepted on POST /.
var postActions = map[string]navigation.Page{
	dto.ActionQuickAdd:    navigation.PageStockManagement,
	dto.ActionManualAdd:   navigation.PageStockManagement,
	dto.ActionFetchPrices: navigation.PageStockManagement,
	dto.ActionDelete:      navigation.PageStockManagement,
	dto.ActionHealth:      navigation.PageSettings,
}

// Services groups the screen services behind the pages.
type Services struct {
	Dashboard       service.DashboardService
	StockManagement service.StockManagementService
	PriceHistory    service.PriceHistoryService
	Projections     service.ProjectionsService
	Settings        service.SettingsService
}

// PageHandler serves the dashboard pages and form actions.
type PageHandler struct {
	services   Services
	controller *navigation.Controller[echo.Context]
	flash      *FlashStore
	title      string
	clock      func() time.Time
	logger     *logger.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(services Services, flash *FlashStore, title string, clock func() time.Time, logger *logger.Logger) (*PageHandler, error) {
	h := &PageHandler{
		services: services,
		flash:    flash,
		title:    title,
		clock:    clock,
		logger:   logger,
	}

	controller, err := navigation.NewController(map[navigation.Page]navigation.Handler[echo.Context]{
		navigation.PageDashboard:       h.dashboard,
		navigation.PageStockManagement: h.stockManagement,
		navigation.PagePriceHistory:    h.priceHistory,
		navigation.PageProjections:     h.projections,
		navigation.PageSettings:        h.settings,
	})
	if err != nil {
		return nil, err
	}
	h.controller = controller
	return h, nil
}

// RegisterRoutes registers the page, asset and liveness routes.
func (h *PageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.ShowPage)
	g.POST("/", h.SubmitAction)
	g.GET("/healthz", h.Healthz)
	g.StaticFS("/static", echo.MustSubFS(staticFS, "static"))
}

// ShowPage renders the page selected by the "page" query parameter.
func (h *PageHandler) ShowPage(c echo.Context) error {
	return h.dispatch(c, c.QueryParam("page"))
}

// SubmitAction runs a form action and renders the page it belongs to.
func (h *PageHandler) SubmitAction(c echo.Context) error {
	page, ok := postActions[c.FormValue("action")]
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unknown action"})
	}
	return h.dispatch(c, string(page))
}

// Healthz reports that the dashboard process itself is up.
func (h *PageHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *PageHandler) dispatch(c echo.Context, selection string) error {
	ctx := c.Request().Context()
	page, err := h.controller.Dispatch(ctx, selection, c)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to render page", logger.StringField("page", string(page)), logger.ErrorField(err))
		return err
	}
	return nil
}

func (h *PageHandler) render(c echo.Context, page navigation.Page, view interface{}) error {
	return c.Render(http.StatusOK, string(page), pageData{
		Title:   h.title,
		Pages:   navigation.Pages,
		Current: page,
		View:    view,
	})
}

func (h *PageHandler) dashboard(ctx context.Context, c echo.Context) error {
	return h.render(c, navigation.PageDashboard, h.services.Dashboard.Render(ctx))
}

func (h *PageHandler) stockManagement(ctx context.Context, c echo.Context) error {
	req := service.StockManagementRequest{Fetch: dto.NewFetchPricesInput(h.clock())}

	if c.Request().Method == http.MethodPost {
		req.Action = c.FormValue("action")

		var err error
		switch req.Action {
		case dto.ActionDelete:
			return h.deleteStock(ctx, c)
		case dto.ActionQuickAdd:
			err = c.Bind(&req.QuickAdd)
		case dto.ActionManualAdd:
			err = c.Bind(&req.ManualAdd)
		case dto.ActionFetchPrices:
			err = c.Bind(&req.Fetch)
		}
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
		}
	} else {
		req.Flash = h.popFlash(c)
	}

	return h.render(c, navigation.PageStockManagement, h.services.StockManagement.Render(ctx, req))
}

// deleteStock redirects back to the stock list on success so that the
// page is rebuilt from scratch, carrying the notice in a flash.
func (h *PageHandler) deleteStock(ctx context.Context, c echo.Context) error {
	id, err := strconv.ParseInt(c.FormValue("stock_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid stock ID"})
	}

	msg := h.services.StockManagement.Delete(ctx, id)
	if msg.Level != service.LevelSuccess {
		req := service.StockManagementRequest{Fetch: dto.NewFetchPricesInput(h.clock()), Flash: msg}
		return h.render(c, navigation.PageStockManagement, h.services.StockManagement.Render(ctx, req))
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    h.flash.Put(*msg),
		Path:     "/",
		MaxAge:   int(h.flash.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, pageURL(navigation.PageStockManagement))
}

func (h *PageHandler) popFlash(c echo.Context) *service.Message {
	cookie, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	c.SetCookie(&http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1, HttpOnly: true})
	msg, _ := h.flash.Pop(cookie.Value)
	return msg
}

func (h *PageHandler) priceHistory(ctx context.Context, c echo.Context) error {
	in := dto.NewPriceHistoryInput(h.clock())
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request parameters"})
	}
	return h.render(c, navigation.PagePriceHistory, h.services.PriceHistory.Render(ctx, in))
}

func (h *PageHandler) projections(ctx context.Context, c echo.Context) error {
	in := dto.NewProjectionsInput()
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request parameters"})
	}
	return h.render(c, navigation.PageProjections, h.services.Projections.Render(ctx, in))
}

func (h *PageHandler) settings(ctx context.Context, c echo.Context) error {
	probe := c.Request().Method == http.MethodPost && c.FormValue("action") == dto.ActionHealth
	return h.render(c, navigation.PageSettings, h.services.Settings.Render(ctx, probe))
}
