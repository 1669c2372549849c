package lockgen

import (
	"fmt"
	"io"
	"text/template"
)

var instructionsTemplate = template.Must(template.New("instructions").Parse(
	`{{.Size}}x{{.Size}} icon for {{.Product}}

To create this icon by hand:
1. Open any image editor (GIMP, Photoshop, etc.)
2. Create a {{.Size}}x{{.Size}} pixel image with a transparent background
3. Draw a circular background with a blue to purple gradient
4. Add a white lock symbol in the center
5. Save it as PNG

Or use an online service such as:
- https://www.favicon-generator.org/
- https://favicon.io/

Suggested colors:
- Blue: {{.Primary}}
- Purple: {{.Secondary}}
- White: {{.Foreground}}
`))

type instructionsData struct {
	Product    string
	Size       int
	Primary    string
	Secondary  string
	Foreground string
}

// ProductName is the extension the icons are drawn for.
const ProductName = "MyPassword"

// WriteInstructions writes plain-text steps for drawing the size x size icon
// manually, for when only the SVG could be produced.
func WriteInstructions(w io.Writer, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return instructionsTemplate.Execute(w, instructionsData{
		Product:    ProductName,
		Size:       size,
		Primary:    Hex(Primary),
		Secondary:  Hex(Secondary),
		Foreground: Hex(Foreground),
	})
}
