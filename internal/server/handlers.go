package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/yhao3/hinto/internal/model"
	"github.com/yhao3/hinto/internal/output"
	"github.com/yhao3/hinto/internal/platform"
)

func (s *Server) handleDiscover(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result, err := s.discoverLocked()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, err := yaml.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// discoverLocked runs a discovery cycle and refreshes the cache. The
// caller must hold providerMu.
func (s *Server) discoverLocked() (output.ScanResult, error) {
	cycle, elements, err := s.builder.DiscoverCycle()
	if err != nil {
		return output.ScanResult{}, err
	}
	labeled := model.AssignLabels(elements, s.alphabet)
	s.cache.Put(labeled)

	result := output.ScanResult{
		Cycle:    cycle.String(),
		TS:       time.Now().Unix(),
		Count:    len(labeled),
		Elements: make([]output.ScanElement, 0, len(labeled)),
	}
	for _, l := range labeled {
		cx, cy := l.Element.Frame.Center()
		result.Elements = append(result.Elements, output.ScanElement{
			Label: l.Label,
			Role:  l.Element.Role,
			X:     l.Element.Frame.X,
			Y:     l.Element.Frame.Y,
			W:     l.Element.Frame.W,
			H:     l.Element.Frame.H,
			CX:    cx,
			CY:    cy,
		})
	}
	return result, nil
}

func (s *Server) handleClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	label := strings.ToUpper(strings.TrimSpace(stringParam(params, "label", "")))
	if label == "" {
		return mcp.NewToolResultError("label is required"), nil
	}
	button, err := platform.ParseMouseButton(stringParam(params, "button", "left"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	point, ok := s.cache.Lookup(label)
	if !ok {
		// Stale or missing cache: rescan so labels refer to what is on
		// screen right now.
		if _, err := s.discoverLocked(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if point, ok = s.cache.Lookup(label); !ok {
			return mcp.NewToolResultError(fmt.Sprintf("label %q not found; call discover for the current set", label)), nil
		}
	}

	if err := s.provider.Input.Click(point.X, point.Y, button); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	// The click likely changed the UI.
	s.cache.InvalidateAll()

	s.log.Debug("mcp click", "label", label, "x", point.X, "y", point.Y, "button", button)
	return mcp.NewToolResultText(fmt.Sprintf("clicked %s (%s) at %d,%d\n", label, point.Role, point.X, point.Y)), nil
}

func (s *Server) handleScroll(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	direction := strings.ToLower(stringParam(params, "direction", ""))
	amount := intParam(params, "amount", 3)
	if amount <= 0 {
		return mcp.NewToolResultError("amount must be positive"), nil
	}

	var dx, dy int
	switch direction {
	case "up":
		dy = amount
	case "down":
		dy = -amount
	case "left":
		dx = amount
	case "right":
		dx = -amount
	default:
		return mcp.NewToolResultError(fmt.Sprintf("invalid direction %q (use up, down, left, right)", direction)), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if err := s.provider.Input.Scroll(dx, dy); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.cache.InvalidateAll()
	return mcp.NewToolResultText(fmt.Sprintf("scrolled %s by %d\n", direction, amount)), nil
}

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return defaultVal
}
