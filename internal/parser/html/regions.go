package html

import "strings"

// FindRegions returns every kind open tag paired with the nearest following
// close tag, left to right. Matching is on the literal tag text only, so a
// pair inside a comment or a script string counts too. Tags with attributes
// do not match, and an open tag with no close tag after it ends the search.
func FindRegions(source string, kind RegionKind) []Region {
	open, closing := kind.OpenTag(), kind.CloseTag()

	var regions []Region
	pos := 0
	for {
		i := strings.Index(source[pos:], open)
		if i < 0 {
			break
		}
		start := pos + i
		contentStart := start + len(open)
		j := strings.Index(source[contentStart:], closing)
		if j < 0 {
			break
		}
		contentEnd := contentStart + j
		regions = append(regions, Region{
			Kind:         kind,
			Start:        start,
			End:          contentEnd + len(closing),
			ContentStart: contentStart,
			ContentEnd:   contentEnd,
		})
		pos = contentEnd + len(closing)
	}
	return regions
}

// ReplaceRegions rewrites every kind region in source. The first region
// becomes first and the rest become rest; limit caps how many regions are
// rewritten, with limit < 0 meaning all of them.
func ReplaceRegions(source string, kind RegionKind, first, rest string, limit int) string {
	regions := FindRegions(source, kind)
	if limit >= 0 && len(regions) > limit {
		regions = regions[:limit]
	}

	var b strings.Builder
	pos := 0
	for i, r := range regions {
		b.WriteString(source[pos:r.Start])
		if i == 0 {
			b.WriteString(first)
		} else {
			b.WriteString(rest)
		}
		pos = r.End
	}
	b.WriteString(source[pos:])
	return b.String()
}
