package rabbit

import "github.com/vovakirdan/tipsy-rabbit/internal/core"

// ObstaclePair is a scrolling gate: a top and a bottom block sharing one
// x-origin with a passable gap between them.
type ObstaclePair struct {
	X         float64 // Left edge
	Width     float64
	GapY      float64 // Top of the gap
	GapHeight float64
}

// Top returns the rectangle of the upper block.
func (o ObstaclePair) Top() core.Rect {
	return core.NewRect(o.X, 0, o.Width, o.GapY)
}

// Bottom returns the rectangle of the lower block for a playfield height.
func (o ObstaclePair) Bottom(fieldH float64) core.Rect {
	bottomY := o.GapY + o.GapHeight
	return core.NewRect(o.X, bottomY, o.Width, fieldH-bottomY)
}

// Hit reports whether r overlaps either block.
func (o ObstaclePair) Hit(r core.Rect, fieldH float64) bool {
	return r.Intersects(o.Top()) || r.Intersects(o.Bottom(fieldH))
}

// PickupKind identifies a collectible category.
type PickupKind int

const (
	PickupCoin   PickupKind = iota // +score
	PickupShield                   // temporary invincibility
	PickupBrew                     // tipsy mode: bonus now, soft crashes later
	PickupOneUp                    // spare life
	pickupKinds                    // Sentinel for counting kinds
)

// String returns the name of the pickup kind.
func (k PickupKind) String() string {
	switch k {
	case PickupCoin:
		return "coin"
	case PickupShield:
		return "shield"
	case PickupBrew:
		return "brew"
	case PickupOneUp:
		return "1up"
	default:
		return "?"
	}
}

// Glyph returns the display character for a pickup kind.
func (k PickupKind) Glyph() rune {
	switch k {
	case PickupCoin:
		return '●'
	case PickupShield:
		return '♦'
	case PickupBrew:
		return '¤'
	case PickupOneUp:
		return '✚'
	default:
		return '?'
	}
}

// Pickup is a single-use collectible.
type Pickup struct {
	Kind PickupKind
	Rect core.Rect
}
