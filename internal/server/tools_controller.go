package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/smartcart-labs/smartcart/internal/repo/toolsmanager"
)

// ToolsController exposes registered tools over HTTP, for callers that
// are not wired into an LLM runtime.
type ToolsController interface {
	ListTools(c echo.Context) error
	ExecuteTool(c echo.Context) error
}

type toolsController struct {
	tools toolsmanager.ToolsManager
}

func NewToolsController(tools toolsmanager.ToolsManager) ToolsController {
	return &toolsController{tools: tools}
}

func (tc *toolsController) ListTools(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"tools": tc.tools.GetAvailableTools(),
	})
}

func (tc *toolsController) ExecuteTool(c echo.Context) error {
	name := c.Param("name")
	if !tc.tools.HasTool(name) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown tool: "+name)
	}

	args := map[string]any{}
	if err := c.Bind(&args); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	result, err := tc.tools.ExecuteTool(ctx, name, args)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, toolsmanager.ToolExecutionResult{
		Success: true,
		Result:  result,
	})
}
