package handler

import (
	"io"

	"github.com/labstack/echo/v4"

	"airtable-proxy-go/internal/model"
)

// RegisterRoutes mounts the relay handler on the Echo instance. Dispatch
// is by method, not path, so every path lands on the same handler.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.Any("/", h.ServeEcho)
	e.Any("/*", h.ServeEcho)
}

// ServeEcho adapts an Echo request to the descriptor contract and writes
// the descriptor response back, headers included.
func (h *Handler) ServeEcho(c echo.Context) error {
	req := c.Request()

	var body string
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return err
		}
		body = string(data)
	}

	out := h.Handle(req.Context(), model.Request{
		HTTPMethod: req.Method,
		Body:       body,
	})

	header := c.Response().Header()
	for k, v := range out.Headers {
		header.Set(k, v)
	}
	c.Response().WriteHeader(out.StatusCode)
	_, err := c.Response().Write([]byte(out.Body))
	return err
}
