package model

// Rect is a screen rectangle in pixel coordinates.
type Rect struct {
	Left   int `yaml:"l" json:"l"`
	Top    int `yaml:"t" json:"t"`
	Right  int `yaml:"r" json:"r"`
	Bottom int `yaml:"b" json:"b"`
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() int { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() int { return (r.Top + r.Bottom) / 2 }
