package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Role identifies one group of diagnostic lines.
type Role int

const (
	// RoleCursor covers cursor position (screen and world) and the player
	// position.
	RoleCursor Role = iota
	// RoleSize covers viewport rectangles and the projection area.
	RoleSize
	// RoleVisibility covers the player visibility check.
	RoleVisibility

	roleCount
)

// Roles lists every role in report order.
var Roles = []Role{RoleCursor, RoleSize, RoleVisibility}

func (r Role) String() string {
	switch r {
	case RoleCursor:
		return "cursor"
	case RoleSize:
		return "size"
	case RoleVisibility:
		return "visibility"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Label is an on-screen text surface. Its Text is replaced wholesale each
// time one of its roles is reported.
type Label struct {
	Name string
	// Roles routed to this label, in the order their lines appear.
	Roles []Role
	Text  string
	// Position is the top-left anchor in window coordinates.
	Position mgl32.Vec2
}

// Variant selects how diagnostic roles are routed to labels.
type Variant int

const (
	// VariantCombined routes every role to a single label.
	VariantCombined Variant = iota
	// VariantSplit gives each role its own label.
	VariantSplit
	// VariantResize gives each role its own label and reports sizes only
	// when the window is resized, moving the size label with the window.
	VariantResize
)

func (v Variant) String() string {
	switch v {
	case VariantCombined:
		return "combined"
	case VariantSplit:
		return "split"
	case VariantResize:
		return "resize"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant parses the String form of a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "combined", "":
		return VariantCombined, nil
	case "split":
		return VariantSplit, nil
	case "resize":
		return VariantResize, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Trigger selects when the cursor, size and visibility roles are reported.
// The resize variant reports sizes on resize events regardless.
type Trigger int

const (
	// TriggerEveryTick reports on every tick.
	TriggerEveryTick Trigger = iota
	// TriggerPointerMotion reports only on ticks where the pointer moved.
	TriggerPointerMotion
)

func (t Trigger) String() string {
	switch t {
	case TriggerEveryTick:
		return "every_tick"
	case TriggerPointerMotion:
		return "pointer_motion"
	default:
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
}

// ParseTrigger parses the String form of a Trigger.
func ParseTrigger(s string) (Trigger, error) {
	switch s {
	case "every_tick", "":
		return TriggerEveryTick, nil
	case "pointer_motion":
		return TriggerPointerMotion, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTrigger, s)
}

// newLabels builds the labels for a variant. Label i is placed at
// origin + i*spacing.
func newLabels(v Variant, origin, spacing mgl32.Vec2) []*Label {
	if v == VariantCombined {
		return []*Label{{
			Name:     "diagnostics",
			Roles:    []Role{RoleCursor, RoleSize, RoleVisibility},
			Position: origin,
		}}
	}

	labels := make([]*Label, 0, len(Roles))
	for i, role := range Roles {
		labels = append(labels, &Label{
			Name:     role.String(),
			Roles:    []Role{role},
			Position: origin.Add(spacing.Mul(float32(i))),
		})
	}
	return labels
}
