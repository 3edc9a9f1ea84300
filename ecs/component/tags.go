package component

type BallTag struct{}

var BallTagComponent = NewComponent[BallTag]()

// Paddle follows TargetX horizontally while HasTarget is set.
type Paddle struct {
	TargetX   float64
	HasTarget bool
}

var PaddleComponent = NewComponent[Paddle]()

// Brick is a destructible target. Row is the zero-based row of the layout.
type Brick struct {
	Label string
	Row   int
	Class string
}

var BrickComponent = NewComponent[Brick]()

// FieldUnitTag marks the dots that outline the playing field.
type FieldUnitTag struct{}

var FieldUnitTagComponent = NewComponent[FieldUnitTag]()
