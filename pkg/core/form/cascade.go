package form

import (
	"go.uber.org/zap"

	"github.com/jakechorley/shiftdesk/pkg/core/model"
	"github.com/jakechorley/shiftdesk/pkg/roster"
	"github.com/jakechorley/shiftdesk/pkg/sounds"
)

// Field names a draft field the form can change
type Field string

const (
	FieldEmployeeName Field = "employeeName"
	FieldRole         Field = "role"
	FieldStatus       Field = "status"
	FieldDate         Field = "date"
	FieldStartTime    Field = "startTime"
	FieldEndTime      Field = "endTime"
	FieldColor        Field = "color"
)

// CascadeResolver computes the next draft state for a field change,
// including the derived-field cascades: picking a rostered employee syncs
// role and color, a role change recomputes the color, and time edits
// recompute the display range.
type CascadeResolver struct {
	roster     roster.Provider
	cues       sounds.Player
	tickVolume float64
	logger     *zap.Logger
}

func NewCascadeResolver(provider roster.Provider, cues sounds.Player, tickVolume float64, logger *zap.Logger) *CascadeResolver {
	return &CascadeResolver{
		roster:     provider,
		cues:       cues,
		tickVolume: tickVolume,
		logger:     logger,
	}
}

// Apply returns the draft with the field change and its cascades applied.
// The input draft is not mutated. Every field change also fires the
// low-priority feedback tick, independent of validation state.
func (r *CascadeResolver) Apply(draft model.Shift, field Field, value string) model.Shift {
	next := draft

	switch field {
	case FieldEmployeeName:
		next.EmployeeName = value
		// Picking a known employee normalizes role and color to the
		// roster's values, even over a manual role choice. While the user
		// is still typing an unknown name, only the name moves.
		if emp, found := r.roster.FindEmployeeByName(value); found {
			next.Role = emp.Role
			next.Color = emp.Color
			r.logger.Debug("Employee matched, syncing role and color",
				zap.String("employee", value),
				zap.String("role", string(emp.Role)))
		}

	case FieldRole:
		next.Role = model.Role(value)
		if color, ok := model.ColorForRole(next.Role); ok {
			next.Color = color
		}

	case FieldStartTime:
		next.StartTime = value
		next.TimeRange = FormatTimeRange(r.logger, next.StartTime, next.EndTime)

	case FieldEndTime:
		next.EndTime = value
		next.TimeRange = FormatTimeRange(r.logger, next.StartTime, next.EndTime)

	case FieldStatus:
		next.Status = model.Status(value)

	case FieldDate:
		next.Date = value

	case FieldColor:
		next.Color = value

	default:
		r.logger.Warn("Ignoring change for unknown field", zap.String("field", string(field)))
		return draft
	}

	r.cues.Play(sounds.CueTick, r.tickVolume)

	return next
}
