// Package shapes holds small reflected types used by the adk command and
// by tests.
package shapes

//go:generate go run github.com/adk-format/adk/cmd/adk-codegen -dir .

//adk:reflect
type Point struct {
	X int32 `adk:"x"`
	Y int32 `adk:"y"`
}

//adk:reflect
type Line struct {
	A     Point  `adk:"a"`
	B     Point  `adk:"b"`
	Label string `adk:"label"`
}

//adk:enum
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// Pixel exercises every primitive kind.
//
//adk:reflect
type Pixel struct {
	Glyph   rune    `adk:"glyph,char"`
	Mark    byte    `adk:"mark,char"`
	Color   Color   `adk:"color"`
	Lit     bool    `adk:"lit"`
	Alpha   float32 `adk:"alpha"`
	Depth   float64 `adk:"depth"`
	Small   int8    `adk:"small"`
	Medium  int16   `adk:"medium"`
	Large   int64   `adk:"large"`
	Count   uint    `adk:"count"`
	Tiny    uint8   `adk:"tiny"`
	Wide    uint16  `adk:"wide"`
	Huge    uint64  `adk:"huge"`
	Index   int     `adk:"index"`
	Note    string  `adk:"note"`
	Scratch []byte  `adk:"-"`
}
