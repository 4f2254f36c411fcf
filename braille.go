package brailleart

import (
	"image"
	"io"
	"strings"
)

const (
	// On is the sample value of a set dot after binarization.
	On = 255
	// Off is the sample value of an unset dot.
	Off = 0

	cellWidth  = 2
	cellHeight = 4

	brailleBase = '\u2800'
)

type dot int

const (
	filled dot = 1
	nofill dot = 0
)

// Cell represents an 8 dot braille pattern in x,y coordinate space. Eg:
//   +----------+
//   |(0,0)(1,0)|
//   |(0,1)(1,1)|
//   |(0,2)(1,2)|
//   |(0,3)(1,3)|
//   +----------+
type Cell [cellWidth][cellHeight]dot

// Value maps each point in the cell to a dot identifier and sums the bit
// weights of the filled ones.
//   +------+
//   |(1)(4)|
//   |(2)(5)|
//   |(3)(6)|
//   |(7)(8)|
//   +------+
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering)
func (c Cell) Value() int {
	lowEndian := [8]dot{c[0][0], c[0][1], c[0][2], c[1][0], c[1][1], c[1][2], c[0][3], c[1][3]}
	var v int
	for i, x := range lowEndian {
		v += int(x) << uint(i)
	}
	return v
}

// Rune returns the braille symbol for the cell. A blank cell is drawn as the
// single dot ⠁ rather than U+2800, so empty regions stay visible.
func (c Cell) Rune() rune {
	v := c.Value()
	if v == 0 {
		v = 1
	}
	return brailleBase + rune(v)
}

// String returns a unicode braille character. One of:
//  ⠁⠂⠃⠄⠅⠆⠇⠈⠉⠊⠋⠌⠍⠎⠏⠐⠑⠒⠓⠔⠕⠖⠗⠘⠙⠚⠛⠜⠝⠞⠟⠠⠡⠢⠣⠤⠥⠦⠧⠨⠩⠪⠫⠬⠭⠮⠯⠰⠱⠲⠳⠴⠵⠶⠷⠸⠹⠺⠻⠼⠽⠾⠿⡀⡁⡂⡃⡄⡅⡆⡇⡈⡉⡊⡋⡌⡍⡎⡏⡐⡑⡒⡓⡔⡕⡖⡗⡘⡙⡚⡛⡜⡝⡞⡟⡠⡡⡢⡣⡤⡥⡦⡧⡨⡩⡪⡫⡬⡭⡮⡯⡰⡱⡲⡳⡴⡵⡶⡷⡸⡹⡺⡻⡼⡽⡾⡿⢀⢁⢂⢃⢄⢅⢆⢇⢈⢉⢊⢋⢌⢍⢎⢏⢐⢑⢒⢓⢔⢕⢖⢗⢘⢙⢚⢛⢜⢝⢞⢟⢠⢡⢢⢣⢤⢥⢦⢧⢨⢩⢪⢫⢬⢭⢮⢯⢰⢱⢲⢳⢴⢵⢶⢷⢸⢹⢺⢻⢼⢽⢾⢿⣀⣁⣂⣃⣄⣅⣆⣇⣈⣉⣊⣋⣌⣍⣎⣏⣐⣑⣒⣓⣔⣕⣖⣗⣘⣙⣚⣛⣜⣝⣞⣟⣠⣡⣢⣣⣤⣥⣦⣧⣨⣩⣪⣫⣬⣭⣮⣯⣰⣱⣲⣳⣴⣵⣶⣷⣸⣹⣺⣻⣼⣽⣾⣿
func (c Cell) String() string {
	return string(c.Rune())
}

// cellAt reads the cell whose top-left pixel is (px, py). Positions past the
// grid boundary are left unfilled.
func cellAt(g *image.Gray, px, py int) Cell {
	bounds := g.Bounds()
	var c Cell
	// Draw left-right, top-bottom.
	for y := 0; y < cellHeight; y++ {
		for x := 0; x < cellWidth; x++ {
			// Braille symbols are 2x4, which may end up adding pixels to the
			// right or bottom of the image. In those cases we just don't fill
			// the dots.
			if px+x >= bounds.Max.X || py+y >= bounds.Max.Y {
				c[x][y] = nofill
				continue
			}
			if g.GrayAt(px+x, py+y).Y == On {
				c[x][y] = filled
			}
		}
	}
	return c
}

// packLine renders the band of cells starting at pixel row py.
func packLine(g *image.Gray, py int) string {
	bounds := g.Bounds()
	var sb strings.Builder
	for px := bounds.Min.X; px < bounds.Max.X; px += cellWidth {
		sb.WriteRune(cellAt(g, px, py).Rune())
	}
	return sb.String()
}

// Pack partitions a binary grid into 2x4 cells, left-right then top-bottom,
// and returns one line of braille per 4 pixel rows. Only samples equal to On
// count as dots.
func Pack(g *image.Gray) Art {
	// An image's bounds do not necessarily start at (0, 0), so the loops start
	// at bounds.Min.Y and bounds.Min.X.
	bounds := g.Bounds()
	art := make(Art, 0, (bounds.Dy()+cellHeight-1)/cellHeight)
	for py := bounds.Min.Y; py < bounds.Max.Y; py += cellHeight {
		art = append(art, packLine(g, py))
	}
	return art
}

// Encoder streams packed braille lines to a writer.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the braille rendering of the binary grid g, one line feed
// after every band of cells.
func (enc *Encoder) Encode(g *image.Gray) error {
	bounds := g.Bounds()
	for py := bounds.Min.Y; py < bounds.Max.Y; py += cellHeight {
		if _, err := io.WriteString(enc.w, packLine(g, py)); err != nil {
			return err
		}
		if _, err := enc.w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
