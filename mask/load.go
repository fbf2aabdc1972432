package mask

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
)

// Parse reads a text mask: one line per row, '.', 'o' or ' ' for enabled
// positions and 'X', 'x' or '#' for disabled ones. Trailing blank lines are
// ignored; every other line must have the same length.
func Parse(r io.Reader) (*Mask, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mask: read: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return FromRows(lines)
}

// FromRows builds a mask from rows in the Parse format.
func FromRows(rows []string) (*Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("mask: empty text: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("mask: row %d has %d columns, want %d: %w", r, len(line), cols, ErrBadFormat)
		}
		for c := 0; c < cols; c++ {
			switch line[c] {
			case '.', 'o', ' ':
			case 'X', 'x', '#':
				m.enabled[r*cols+c] = false
				m.count--
			default:
				return nil, fmt.Errorf("mask: row %d col %d: unexpected %q: %w", r, c, line[c], ErrBadFormat)
			}
		}
	}
	return m, nil
}

// grayThreshold is the luminance below which a pixel disables its cell.
const grayThreshold = 128

// FromImage builds a mask with one position per pixel: dark pixels
// (8-bit grey value below 128) are disabled, everything else enabled.
func FromImage(img image.Image) (*Mask, error) {
	b := img.Bounds()
	m, err := New(b.Dy(), b.Dx())
	if err != nil {
		return nil, err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if gray.Y < grayThreshold {
				m.enabled[(y-b.Min.Y)*m.cols+(x-b.Min.X)] = false
				m.count--
			}
		}
	}
	return m, nil
}
