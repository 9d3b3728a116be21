package request

import (
	domain "sils-backend/internal/domain/request"
	"sils-backend/internal/domain/tool"
)

type CreateInput struct {
	Type     domain.Type
	Zone     tool.Zone
	Priority domain.Priority
	Motive   string

	// REPARACION / CAMBIO
	ToolID string
	Fault  string

	// NUEVA
	NewToolName    string
	UseDescription string
	Brand          string
}

// DecideInput carries the admin decision plus the approval options that
// drive side effects on the tool catalog.
type DecideInput struct {
	Approve bool
	Comment string

	// NUEVA / CAMBIO: create the tool record on approval
	CreateTool  bool
	NewToolCode string

	// REPARACION: the post-repair status; score follows the policy table
	NewToolStatus tool.Status
}
