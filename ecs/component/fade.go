package component

import "github.com/tanema/gween"

// Fade drives the alpha of a destroyed brick's ghost. The entity is removed
// once the tween finishes.
type Fade struct {
	Tween *gween.Tween
}

var FadeComponent = NewComponent[Fade]()
