package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrFont is returned for a font spec naming an unknown attribute.
	ErrFont = errors.New("couldn't load font")
	// ErrColour is returned for a colour that cannot be resolved.
	ErrColour = errors.New("couldn't allocate colour")
)

// Spec carries the appearance options of one run.
type Spec struct {
	Font               string
	Background         string
	Foreground         string
	SelectedBackground string
	SelectedForeground string
	BorderColor        string
	BorderWidth        int
	HorizontalPadding  int
	VerticalPadding    int
}

// DefaultSpec returns the built-in appearance.
func DefaultSpec() Spec {
	return Spec{
		Font:               "fixed",
		Background:         "white",
		Foreground:         "black",
		SelectedBackground: "black",
		SelectedForeground: "white",
		BorderColor:        "black",
		BorderWidth:        1,
		HorizontalPadding:  1,
		VerticalPadding:    0,
	}
}

// Styles describes the Lip Gloss styles of the panel.
type Styles struct {
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Panel        *lipgloss.Style
	Footer       *lipgloss.Style

	HorizontalPadding int
	VerticalPadding   int
}

// RowHeight returns the number of terminal lines one item occupies.
func (s *Styles) RowHeight() int { return 1 + s.VerticalPadding }

// Row returns the style for an item row of the given content width.
func (s *Styles) Row(contentWidth int, selected bool) lipgloss.Style {
	base := *s.Item
	if selected {
		base = *s.SelectedItem
	}
	return base.
		Padding(s.VerticalPadding/2, s.HorizontalPadding, 0, s.HorizontalPadding).
		Width(contentWidth + 2*s.HorizontalPadding).
		Height(s.RowHeight())
}

// New builds the styles for spec.
func New(spec Spec) (*Styles, error) {
	attrs, err := parseFont(spec.Font)
	if err != nil {
		return nil, err
	}
	colours := make(map[string]lipgloss.Color, 5)
	for _, c := range []struct{ name, value string }{
		{"background", spec.Background},
		{"foreground", spec.Foreground},
		{"selected background", spec.SelectedBackground},
		{"selected foreground", spec.SelectedForeground},
		{"border colour", spec.BorderColor},
	} {
		col, err := ParseColour(c.value)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", c.name, c.value, err)
		}
		colours[c.name] = col
	}
	if spec.HorizontalPadding < 0 || spec.VerticalPadding < 0 || spec.BorderWidth < 0 {
		return nil, fmt.Errorf("negative geometry: border %d, padding %d/%d",
			spec.BorderWidth, spec.HorizontalPadding, spec.VerticalPadding)
	}

	item := attrs.apply(lipgloss.NewStyle()).
		Foreground(colours["foreground"]).
		Background(colours["background"])
	selected := attrs.apply(lipgloss.NewStyle()).
		Foreground(colours["selected foreground"]).
		Background(colours["selected background"])
	panel := lipgloss.NewStyle()
	switch {
	case spec.BorderWidth == 1:
		panel = panel.Border(lipgloss.NormalBorder()).BorderForeground(colours["border colour"])
	case spec.BorderWidth > 1:
		panel = panel.Border(lipgloss.ThickBorder()).BorderForeground(colours["border colour"])
	}
	footer := lipgloss.NewStyle().
		Foreground(colours["foreground"]).
		Background(colours["background"]).
		Faint(true).
		Padding(0, spec.HorizontalPadding)

	return &Styles{
		Item:              ptr(item),
		SelectedItem:      ptr(selected),
		Panel:             ptr(panel),
		Footer:            ptr(footer),
		HorizontalPadding: spec.HorizontalPadding,
		VerticalPadding:   spec.VerticalPadding,
	}, nil
}

// Default exposes the built-in style set.
func Default() *Styles {
	s, err := New(DefaultSpec())
	if err != nil {
		panic(err)
	}
	return s
}

type fontAttrs struct {
	bold, italic, underline, faint bool
}

func (f fontAttrs) apply(s lipgloss.Style) lipgloss.Style {
	return s.Bold(f.bold).Italic(f.italic).Underline(f.underline).Faint(f.faint)
}

func parseFont(spec string) (fontAttrs, error) {
	var attrs fontAttrs
	fields := strings.FieldsFunc(spec, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	for _, field := range fields {
		switch strings.ToLower(field) {
		case "fixed", "regular", "normal":
		case "bold":
			attrs.bold = true
		case "italic":
			attrs.italic = true
		case "underline":
			attrs.underline = true
		case "faint", "dim":
			attrs.faint = true
		default:
			return fontAttrs{}, fmt.Errorf("%w: %q", ErrFont, spec)
		}
	}
	return attrs, nil
}

// ParseColour resolves an X11 colour name, a #rgb or #rrggbb value, or an
// ANSI palette index.
func ParseColour(value string) (lipgloss.Color, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%w: empty value", ErrColour)
	}
	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrColour, err)
		}
		return lipgloss.Color(c.Hex()), nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 || n > 255 {
			return "", fmt.Errorf("%w: ANSI index %d out of range", ErrColour, n)
		}
		return lipgloss.Color(strconv.Itoa(n)), nil
	}
	key := strings.ToLower(strings.ReplaceAll(v, " ", ""))
	if hex, ok := x11Colours[key]; ok {
		return lipgloss.Color(hex), nil
	}
	return "", fmt.Errorf("%w: %q", ErrColour, value)
}

var x11Colours = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#00ff00",
	"blue":      "#0000ff",
	"yellow":    "#ffff00",
	"cyan":      "#00ffff",
	"magenta":   "#ff00ff",
	"gray":      "#bebebe",
	"grey":      "#bebebe",
	"darkgray":  "#a9a9a9",
	"darkgrey":  "#a9a9a9",
	"lightgray": "#d3d3d3",
	"lightgrey": "#d3d3d3",
	"dimgray":   "#696969",
	"dimgrey":   "#696969",
	"silver":    "#c0c0c0",
	"orange":    "#ffa500",
	"purple":    "#a020f0",
	"brown":     "#a52a2a",
	"pink":      "#ffc0cb",
	"navy":      "#000080",
	"navyblue":  "#000080",
	"maroon":    "#b03060",
	"olive":     "#808000",
	"teal":      "#008080",
	"gold":      "#ffd700",
	"khaki":     "#f0e68c",
	"beige":     "#f5f5dc",
	"ivory":     "#fffff0",
	"snow":      "#fffafa",
	"darkblue":  "#00008b",
	"darkred":   "#8b0000",
	"darkgreen": "#006400",
	"skyblue":   "#87ceeb",
	"steelblue": "#4682b4",
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
