// Package render maps a slide's structured fields to a renderable visual
// tree and rasterizes that tree at any target resolution. The tree is pure
// data: building it twice from the same inputs yields the same tree.
package render

import (
	"regexp"
	"strings"

	"github.com/nickthelegend/podio-ai/internal/models"
)

// Animation envelope: elements fade in and slide up over a fixed window
// once their own delay has elapsed.
const (
	SettleFrames  = 15 // frames from delay start to fully settled
	entryOffset   = 20 // px of upward travel during entry
	statStagger   = 8  // per-card delay stride on the statistics layout
	bulletStagger = 6  // per-card delay stride on the content layout
)

// Mode selects animated (time-varying) or static (settled) rendering.
type Mode int

const (
	Animated Mode = iota
	Static
)

// ElementKind tags a node in the visual tree.
type ElementKind int

const (
	KindBadge ElementKind = iota
	KindHeading
	KindTagline
	KindStatCard
	KindTagPill
	KindBulletCard
	KindAccentBar
	KindMarkupBlock
)

// Element is one visual node with its resolved animation state.
type Element struct {
	Kind    ElementKind
	Text    string
	Label   string // stat card label; empty when the bullet had no parsable label
	Ordinal int    // 1-based display number on bullet cards
	Seq     int    // position within the element's own list
	Delay   int    // local frame at which this element begins animating
	Opacity float64
	OffsetY float64
}

// Tree is the renderable output for one slide at one local frame.
type Tree struct {
	Layout   models.LayoutType
	Theme    Theme
	Elements []Element
	// Markup holds the pre-sanitized raw block verbatim when the slide
	// bypasses the structured templates. Elements is empty in that case.
	Markup string
}

func opacityAt(frame, delay int) float64 {
	t := float64(frame - delay)
	if t <= 0 {
		return 0
	}
	if t >= SettleFrames {
		return 1
	}
	return t / SettleFrames
}

func offsetAt(frame, delay int) float64 {
	t := float64(frame - delay)
	if t <= 0 {
		return entryOffset
	}
	if t >= SettleFrames {
		return 0
	}
	return entryOffset * (1 - t/SettleFrames)
}

// maxColonIndex bounds how far into a statistics bullet the value/label
// separator may sit. A later colon is treated as part of the value.
const maxColonIndex = 20

// SplitStat parses a "VALUE: label" statistics bullet. The split happens at
// the first colon only if it falls within the first maxColonIndex characters;
// otherwise the whole bullet is the value and the label is empty.
func SplitStat(bullet string) (value, label string) {
	idx := strings.Index(bullet, ":")
	if idx > 0 && idx < maxColonIndex {
		return strings.TrimSpace(bullet[:idx]), strings.TrimSpace(bullet[idx+1:])
	}
	return bullet, ""
}

// BuildTree produces the visual tree for slide at the given local frame
// offset (0 at slide start). Static mode yields the settled end-state that
// animated mode converges to once frame exceeds every delay plus the settle
// window; the two are otherwise structurally identical.
func BuildTree(slide models.Slide, brand *models.BrandKit, frame int, mode Mode) Tree {
	tree := Tree{
		Layout: slide.LayoutType,
		Theme:  ResolveTheme(slide, brand),
	}

	// Raw markup is rendered verbatim in a full-bounds container and skips
	// every structured template. Sanitization happened upstream.
	if slide.RawMarkup != nil && *slide.RawMarkup != "" {
		tree.Markup = *slide.RawMarkup
		return tree
	}

	settled := mode == Static
	add := func(el Element) {
		if settled {
			el.Opacity = 1
			el.OffsetY = 0
		} else {
			el.Opacity = opacityAt(frame, el.Delay)
			el.OffsetY = offsetAt(frame, el.Delay)
		}
		tree.Elements = append(tree.Elements, el)
	}

	switch slide.LayoutType {
	case models.LayoutTitle:
		add(Element{Kind: KindBadge, Text: "Presentation", Delay: 0})
		add(Element{Kind: KindHeading, Text: slide.Title, Delay: 5})
		if tag := titleTagline(slide); tag != "" {
			add(Element{Kind: KindTagline, Text: tag, Delay: 15})
		}

	case models.LayoutStatistics:
		add(Element{Kind: KindHeading, Text: slide.Title, Delay: 0})
		for i, bullet := range slide.Bullets {
			if i >= 4 {
				break
			}
			value, label := SplitStat(bullet)
			add(Element{
				Kind:  KindStatCard,
				Text:  value,
				Label: label,
				Seq:   i,
				Delay: 15 + i*statStagger,
			})
		}

	case models.LayoutConclusion:
		add(Element{Kind: KindHeading, Text: slide.Title, Delay: 0})
		for i, bullet := range slide.Bullets {
			add(Element{Kind: KindTagPill, Text: bullet, Seq: i, Delay: 15})
		}

	default:
		// content, timeline, comparison, quote and image all share the
		// header-plus-numbered-cards template.
		add(Element{Kind: KindAccentBar, Delay: 0})
		add(Element{Kind: KindHeading, Text: slide.Title, Delay: 0})
		for i, bullet := range slide.Bullets {
			add(Element{
				Kind:    KindBulletCard,
				Text:    bullet,
				Ordinal: i + 1,
				Seq:     i,
				Delay:   10 + i*bulletStagger,
			})
		}
	}

	return tree
}

func titleTagline(slide models.Slide) string {
	if slide.Subtitle != nil && *slide.Subtitle != "" {
		return *slide.Subtitle
	}
	if len(slide.Bullets) > 0 {
		return slide.Bullets[0]
	}
	return ""
}

// TwoColumn reports whether the content grid should use two columns.
func TwoColumn(bulletCount int) bool {
	return bulletCount > 2
}

var markupTagRe = regexp.MustCompile(`<[^>]*>`)

// MarkupText flattens a raw markup block to its text content for the
// raster and document backends, which draw text rather than execute markup.
// The live player still receives the block verbatim.
func MarkupText(markup string) string {
	text := markupTagRe.ReplaceAllString(markup, " ")
	return strings.Join(strings.Fields(text), " ")
}
