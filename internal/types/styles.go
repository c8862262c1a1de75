package types

import "github.com/go-playground/validator/v10"

// TemplateName selects the layout strategy used to render a Document.
type TemplateName string

const (
	TemplateMinimal   TemplateName = "minimal"
	TemplateTwoColumn TemplateName = "two-column"
	TemplateCorporate TemplateName = "corporate"
)

// TemplateNames lists the available templates.
var TemplateNames = []TemplateName{TemplateMinimal, TemplateTwoColumn, TemplateCorporate}

// FontFamily is one of the bundled font families.
type FontFamily string

const (
	FontInter        FontFamily = "inter"
	FontMerriweather FontFamily = "merriweather"
	FontRoboto       FontFamily = "roboto"
	FontLato         FontFamily = "lato"
	FontOpenSans     FontFamily = "opensans"
)

// FontSize is the base text size of the page.
type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

// Spacing controls the vertical gap between section blocks.
type Spacing string

const (
	SpacingCompact Spacing = "compact"
	SpacingNormal  Spacing = "normal"
	SpacingRelaxed Spacing = "relaxed"
)

// StyleConfig is presentation-only state, orthogonal to content.
type StyleConfig struct {
	Template    TemplateName `json:"template" validate:"required,oneof=minimal two-column corporate"`
	FontFamily  FontFamily   `json:"fontFamily" validate:"required,oneof=inter merriweather roboto lato opensans"`
	FontSize    FontSize     `json:"fontSize" validate:"required,oneof=small medium large"`
	AccentColor string       `json:"accentColor" validate:"max=64"`
	Spacing     Spacing      `json:"spacing" validate:"required,oneof=compact normal relaxed"`
}

// Validate validates the StyleConfig using the validator.
func (s *StyleConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// StylePatch is a shallow merge patch over StyleConfig. Nil fields are left untouched.
type StylePatch struct {
	Template    *TemplateName `json:"template,omitempty" validate:"omitempty,oneof=minimal two-column corporate"`
	FontFamily  *FontFamily   `json:"fontFamily,omitempty" validate:"omitempty,oneof=inter merriweather roboto lato opensans"`
	FontSize    *FontSize     `json:"fontSize,omitempty" validate:"omitempty,oneof=small medium large"`
	AccentColor *string       `json:"accentColor,omitempty" validate:"omitempty,max=64"`
	Spacing     *Spacing      `json:"spacing,omitempty" validate:"omitempty,oneof=compact normal relaxed"`
}

// Validate validates the StylePatch using the validator.
func (p *StylePatch) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Empty reports whether the patch changes nothing.
func (p StylePatch) Empty() bool {
	return p.Template == nil && p.FontFamily == nil && p.FontSize == nil && p.AccentColor == nil && p.Spacing == nil
}

// Apply returns s with every non-nil field of p merged over it.
func (p StylePatch) Apply(s StyleConfig) StyleConfig {
	if p.Template != nil {
		s.Template = *p.Template
	}
	if p.FontFamily != nil {
		s.FontFamily = *p.FontFamily
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.AccentColor != nil {
		s.AccentColor = *p.AccentColor
	}
	if p.Spacing != nil {
		s.Spacing = *p.Spacing
	}
	return s
}
