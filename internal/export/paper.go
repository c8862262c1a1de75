package export

// PaperSize is a page size in points (1" = 72pt).
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	A4     = PaperSize{Name: "A4", Width: 595.27559, Height: 841.88976} // 210mm x 297mm
	Letter = PaperSize{Name: "Letter", Width: 612, Height: 792}         // 8.5" x 11"
)

// WidthInches returns the paper width in inches.
func (p PaperSize) WidthInches() float64 { return p.Width / 72 }

// HeightInches returns the paper height in inches.
func (p PaperSize) HeightInches() float64 { return p.Height / 72 }

// PaperByName returns the paper size with the given name, case-sensitive.
func PaperByName(name string) (PaperSize, bool) {
	switch name {
	case A4.Name:
		return A4, true
	case Letter.Name:
		return Letter, true
	default:
		return PaperSize{}, false
	}
}
