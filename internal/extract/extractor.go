package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/liammcnabb/spider-man-villain-viz/internal/ui"
)

// Page is the extraction result for one wiki page.
type Page struct {
	Title string
	Names []string
}

type Extractor struct {
	log *ui.Logger
}

func New(log *ui.Logger) *Extractor {
	return &Extractor{log: log}
}

// ExtractPage parses one page and returns its title plus every antagonist
// name declared in it. Parse failures degrade to an empty result; they are
// logged but never propagated.
func (e *Extractor) ExtractPage(markup string) (page Page) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Errorf("extract: recovered while parsing page: %v\n", r)
			page = Page{}
		}
	}()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		e.log.Errorf("extract: cannot parse page: %v\n", err)
		return Page{}
	}

	page.Title = pageTitle(doc)
	page.Names = e.names(doc)

	return page
}

// Names returns the antagonist names of one page in document order,
// concatenated across all of its story sections.
func (e *Extractor) Names(markup string) []string {
	return e.ExtractPage(markup).Names
}

func pageTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("#firstHeading").First().Text()); t != "" {
		return t
	}

	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// names walks every "Appearing in" story section. A page covering several
// stories has one such heading per story, each with its own character lists.
func (e *Extractor) names(doc *goquery.Document) []string {
	var out []string

	doc.Find("h1, h2, h3, h4").Each(func(_ int, h *goquery.Selection) {
		if !isAppearingHeading(h) {
			return
		}

		out = append(out, e.sectionNames(h)...)
	})

	return out
}

func isAppearingHeading(s *goquery.Selection) bool {
	return strings.Contains(strings.ToLower(s.Text()), "appearing in")
}

func isHeadingTag(s *goquery.Selection) bool {
	return s.Is("h1, h2, h3, h4")
}

// sectionNames scans the siblings following one "Appearing in" heading,
// bounded by the next such heading or the end of the document. Inside the
// section it looks for the bold "Antagonists" label and reads the list
// that follows it.
func (e *Extractor) sectionNames(h *goquery.Selection) []string {
	var out []string

	h.NextAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
		if isHeadingTag(sib) && isAppearingHeading(sib) {
			return false
		}

		labels := sib.Find("b, strong")
		if sib.Is("b, strong") {
			labels = labels.AddSelection(sib)
		}

		labels.Each(func(_ int, b *goquery.Selection) {
			if !strings.Contains(b.Text(), "Antagonists") {
				return
			}

			list := followingList(b)
			if list == nil {
				e.log.Debugf("extract: antagonists label without adjacent list\n")
				return
			}

			list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
				if name, ok := itemName(li); ok {
					out = append(out, name)
				}
			})
		})

		return true
	})

	return out
}

// followingList finds the ul/ol adjacent to the antagonists label. The wiki
// uses two shapes: the label's paragraph followed by a sibling list, and the
// label inside a list item with the names nested under it.
func followingList(b *goquery.Selection) *goquery.Selection {
	if l := adjacentList(b); l != nil {
		return l
	}

	return adjacentList(b.Parent())
}

// adjacentList returns the list immediately following s, skipping only
// whitespace and comments. Any other intervening node means the label has
// no list of its own; a list further down belongs to another label and
// must not be attributed to this one.
func adjacentList(s *goquery.Selection) *goquery.Selection {
	if s.Length() == 0 {
		return nil
	}

	for n := s.Nodes[0].NextSibling; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.CommentNode:
			continue
		case html.TextNode:
			if strings.TrimSpace(n.Data) == "" {
				continue
			}
			return nil
		case html.ElementNode:
			if n.Data == "ul" || n.Data == "ol" {
				return goquery.NewDocumentFromNode(n).Selection
			}
			return nil
		default:
			return nil
		}
	}

	return nil
}

// itemName derives at most one name from a single list item.
//
// Precedence: the lone link's text when the item has exactly one link; the
// first qualifying link when it has several (navigation arrows and "see ..."
// helper links never qualify); the item's own first text line as a last
// resort. Items that only carry arrow glyphs contribute nothing.
func itemName(li *goquery.Selection) (string, bool) {
	links := directLinks(li)

	if links.Length() == 1 {
		name := strings.TrimSpace(links.First().Text())
		if isUsableName(name) {
			return name, true
		}
	}

	if links.Length() > 1 {
		var name string
		links.EachWithBreak(func(_ int, a *goquery.Selection) bool {
			t := strings.TrimSpace(a.Text())
			if isUsableName(t) && !isSeeLink(t) {
				name = t
				return false
			}
			return true
		})

		if name != "" {
			return name, true
		}
	}

	// Plain-text-only item: take the text up to the first line break so a
	// nested sub-list does not leak into the name.
	text := li.Text()
	if i := strings.IndexAny(text, "\n\r"); i >= 0 {
		text = text[:i]
	}

	text = trimArrows(strings.TrimSpace(text))
	if isUsableName(text) {
		return text, true
	}

	return "", false
}

// directLinks returns the item's own links, ignoring links belonging to a
// nested sub-list.
func directLinks(li *goquery.Selection) *goquery.Selection {
	item := li.Nodes[0]

	return li.Find("a").FilterFunction(func(_ int, a *goquery.Selection) bool {
		closest := a.Closest("li")
		return closest.Length() > 0 && closest.Nodes[0] == item
	})
}
