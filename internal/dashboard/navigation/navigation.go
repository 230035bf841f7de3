// Package navigation maps the sidebar selection to a screen.
package navigation

import (
	"context"
	"fmt"
)

// Page identifies one of the dashboard screens.
type Page string

const (
	PageDashboard       Page = "Dashboard"
	PageStockManagement Page = "Stock Management"
	PagePriceHistory    Page = "Price History"
	PageProjections     Page = "Projections"
	PageSettings        Page = "Settings"
)

// Pages lists the selectable pages in sidebar order.
var Pages = []Page{PageDashboard, PageStockManagement, PagePriceHistory, PageProjections, PageSettings}

// Parse resolves a selection. Anything unknown selects the dashboard.
func Parse(name string) Page {
	for _, p := range Pages {
		if string(p) == name {
			return p
		}
	}
	return PageDashboard
}

// Handler renders one screen for the current request.
type Handler[R any] func(ctx context.Context, req R) error

// Controller dispatches a selection to its screen handler. It holds no
// state besides the handler table.
type Controller[R any] struct {
	handlers map[Page]Handler[R]
}

// NewController creates a Controller. Every page must have a handler.
func NewController[R any](handlers map[Page]Handler[R]) (*Controller[R], error) {
	for _, p := range Pages {
		if handlers[p] == nil {
			return nil, fmt.Errorf("no handler registered for page %q", p)
		}
	}
	return &Controller[R]{handlers: handlers}, nil
}

// Dispatch runs the handler for the selected page from scratch.
func (c *Controller[R]) Dispatch(ctx context.Context, selection string, req R) (Page, error) {
	page := Parse(selection)
	return page, c.handlers[page](ctx, req)
}
