package sample

import "time"

//adk:reflect name=Vec
type Vector struct {
	X, Y   float64
	Tag    string        `adk:"tag"`
	hidden int           `adk:"-"`
	Wait   time.Duration `adk:"wait"`
	Glyph  rune          `adk:",char"`
}

//adk:enum
type Mode uint8

const (
	Off Mode = iota
	On
	_
	Auto
)

const Unrelated = 3

type (
	// Shape is declared in a group.
	//
	//adk:reflect
	Shape struct {
		Mode  Mode
		Where Vector `adk:"at"`
	}

	plain struct{}
)

var _ = plain{}
