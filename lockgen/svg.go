package lockgen

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

const gradientID = "grad"

// svgo has no comment helper; write straight to its writer.
func comment(s *svg.SVG, text string) {
	fmt.Fprintf(s.Writer, "<!-- %s -->\n", text)
}

// WriteSVG writes the lock glyph as a standalone SVG document. The geometry
// only uses integer division of size, so the same size always produces the
// same bytes.
func WriteSVG(w io.Writer, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	half := size / 2
	sixth := size / 6
	eighth := size / 8
	white := Hex(Foreground)

	s := svg.New(w)
	s.Startview(size, size, 0, 0, size, size)
	s.Def()
	s.LinearGradient(gradientID, 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: Hex(Primary), Opacity: 1},
		{Offset: 100, Color: Hex(Secondary), Opacity: 1},
	})
	s.DefEnd()

	comment(s, "background")
	s.Circle(half, half, max(1, half-4),
		fmt.Sprintf(`fill="url(#%s)"`, gradientID), fmt.Sprintf(`stroke="%s"`, white), `stroke-width="2"`)

	comment(s, "lock body")
	s.Roundrect(half-sixth, half-eighth, size/3, size/3, 2, 2, fmt.Sprintf(`fill="%s"`, white))

	comment(s, "shackle")
	s.Qbez(half-sixth, half-eighth, half, half-size/4, half+sixth, half-eighth,
		fmt.Sprintf(`stroke="%s"`, white), `stroke-width="3"`, `fill="none"`)

	comment(s, "keyhole")
	s.Circle(half, half, max(1, size/20), fmt.Sprintf(`fill="%s"`, Hex(Primary)))
	s.End()
	return nil
}
