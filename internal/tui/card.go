package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/cbamcalc/internal/engine"
	"github.com/rshade/cbamcalc/internal/greenops"
)

// Layout constants.
const (
	cardWidth    = 42
	labelWidth   = 20
	cardGap      = 1
	noAltMessage = "No alternative found"
)

// Card titles.
const (
	TitleOrigin      = "Origin"
	TitleComparison  = "Comparison"
	TitleAlternative = "Best alternative"
)

// RenderOptions controls number formatting of cards.
type RenderOptions struct {
	Currency  string
	Precision int
	// Equivalency adds the everyday-equivalent line under the total.
	Equivalency bool
}

// ProfileLines returns the label/value pairs shown on a card, unstyled.
func ProfileLines(p engine.Profile, opts RenderOptions) [][2]string {
	return [][2]string{
		{"Direct Emissions", greenops.FormatEmissions(p.Direct, opts.Precision)},
		{"Indirect Emissions", greenops.FormatEmissions(p.Indirect, opts.Precision)},
		{"Total Emissions", greenops.FormatEmissions(p.Total, opts.Precision)},
		{"Total CBAM Cost", greenops.FormatMoney(p.Cost, opts.Currency, opts.Precision)},
	}
}

// RenderCard renders one country's profile as a bordered card.
func RenderCard(title string, cp engine.CountryProfile, opts RenderOptions) string {
	var content strings.Builder
	content.WriteString(HeaderStyle.Render(title + ": " + cp.Country))
	content.WriteString("\n\n")

	for _, line := range ProfileLines(cp.Profile, opts) {
		content.WriteString(LabelStyle.Width(labelWidth).Render(line[0]))
		content.WriteString(ValueStyle.Render(line[1]))
		content.WriteString("\n")
	}

	if !cp.HasData {
		content.WriteString(WarningStyle.Render(IconWarning + " no data"))
	} else if opts.Equivalency {
		if eq := greenops.ForTonnes(cp.Profile.Total); !eq.IsEmpty {
			content.WriteString(SubtleStyle.Width(cardWidth - 4).Render(eq.DisplayText))
		}
	}

	style := BoxStyle
	if title == TitleAlternative {
		style = BestBoxStyle
	}
	return style.Width(cardWidth).Render(strings.TrimRight(content.String(), "\n"))
}

// renderNoAlternative is the placeholder card used when no alternative exists.
func renderNoAlternative() string {
	body := HeaderStyle.Render(TitleAlternative) + "\n\n" + InfoStyle.Render(noAltMessage)
	return BoxStyle.Width(cardWidth).Render(body)
}

// RenderComparison renders the whole comparison: a heading with the code and
// description, the three cards side by side, any warnings and the savings line.
func RenderComparison(res engine.Result, opts RenderOptions) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("CN Code " + res.Query.CNCode))
	b.WriteString(LabelStyle.Render("  " + res.Description))
	b.WriteString("\n")

	alt := renderNoAlternative()
	if res.BestAlternative != nil {
		alt = RenderCard(TitleAlternative, *res.BestAlternative, opts)
	}
	gap := strings.Repeat(" ", cardGap)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		RenderCard(TitleOrigin, res.Origin, opts), gap,
		RenderCard(TitleComparison, res.Comparison, opts), gap,
		alt,
	))
	b.WriteString("\n")

	for _, w := range res.Warnings {
		b.WriteString(WarningStyle.Render(IconWarning + " " + w.String()))
		b.WriteString("\n")
	}

	if line := RenderSavings(res, opts); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSavings describes what switching to the best alternative saves
// against each selected country that has data. It returns "" when there is
// no alternative.
func RenderSavings(res engine.Result, opts RenderOptions) string {
	s, ok := res.Savings()
	if !ok {
		return ""
	}
	var parts []string
	if res.Origin.HasData {
		parts = append(parts, renderDelta(res.Origin.Country, s.VsOrigin, opts))
	}
	if res.Comparison.HasData && res.Comparison.Country != res.Origin.Country {
		parts = append(parts, renderDelta(res.Comparison.Country, s.VsComparison, opts))
	}
	if len(parts) == 0 {
		return ""
	}
	return LabelStyle.Render("Switching to "+s.Country+": ") + strings.Join(parts, LabelStyle.Render("; "))
}

func renderDelta(country string, d engine.Delta, opts RenderOptions) string {
	emissions := greenops.FormatEmissions(abs(d.Emissions), opts.Precision)
	cost := greenops.FormatMoney(abs(d.Cost), opts.Currency, opts.Precision)
	switch {
	case d.Emissions > 0:
		return OKStyle.Render(IconArrowDown + " saves " + emissions + " and " + cost + " vs " + country)
	case d.Emissions < 0:
		return WarningStyle.Render(IconArrowUp + " adds " + emissions + " and " + cost + " vs " + country)
	default:
		return InfoStyle.Render(IconArrowRight + " no change vs " + country)
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
