package game

import "fmt"

// Point is a single board cell, comparable with ==.
type Point struct{ x, y uint16 }

func NewPoint(x, y uint16) Point { return Point{x: x, y: y} }

func (p Point) X() uint16 { return p.x }

func (p Point) Y() uint16 { return p.y }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.x, p.y) }
