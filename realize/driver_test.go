package realize

import (
	"testing"

	"github.com/typstlab/layoutcore/content"
)

func text(s string) *content.Content {
	return content.Leaf(&content.TextElement{Text: s}, content.Detached)
}

func space() *content.Content {
	return content.Leaf(&content.SpaceElement{}, content.Detached)
}

func parbreak() *content.Content {
	return content.Leaf(&content.ParbreakElement{}, content.Detached)
}

func listItem(s string) *content.Content {
	return content.Leaf(&content.ListItemElement{Body: text(s)}, content.Detached)
}

func paragraphChildren(t *testing.T, c *content.Content) []*content.Content {
	t.Helper()
	par, ok := c.Payload.(*content.ParagraphElement)
	if !ok {
		t.Fatalf("expected *content.ParagraphElement, got %T", c.Payload)
	}
	return par.Children
}

func blockChildren(t *testing.T, flow *content.Content) []*content.Content {
	t.Helper()
	f, ok := flow.Payload.(*content.FlowElement)
	if !ok {
		t.Fatalf("expected *content.FlowElement, got %T", flow.Payload)
	}
	var blocks []*content.Content
	for _, child := range f.Children {
		switch child.Payload.(type) {
		case *content.VerticalSpacingElement:
			continue
		default:
			blocks = append(blocks, child)
		}
	}
	return blocks
}

func realizeBlockOf(t *testing.T, nodes ...*content.Content) *content.Content {
	t.Helper()
	seq := content.Seq(nodes, content.Detached)
	out, _, err := RealizeBlock(&Engine{}, nil, seq, content.Empty)
	if err != nil {
		t.Fatalf("RealizeBlock: %v", err)
	}
	return out
}

func textOf(t *testing.T, c *content.Content) string {
	t.Helper()
	te, ok := c.Payload.(*content.TextElement)
	if !ok {
		t.Fatalf("expected *content.TextElement, got %T", c.Payload)
	}
	return te.Text
}

// Scenario 1: two paragraphs split by an explicit parbreak.
func TestScenario1_TwoParagraphsSplitByParbreak(t *testing.T) {
	flow := realizeBlockOf(t, text("hi"), space(), text("there"), parbreak(), text("next"))
	blocks := blockChildren(t, flow)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(blocks))
	}

	first := paragraphChildren(t, blocks[0])
	if len(first) != 3 || textOf(t, first[0]) != "hi" || textOf(t, first[2]) != "there" {
		t.Errorf("unexpected first paragraph contents: %#v", first)
	}
	if _, ok := first[1].Payload.(*content.SpaceElement); !ok {
		t.Errorf("expected space between hi and there")
	}

	second := paragraphChildren(t, blocks[1])
	if len(second) != 1 || textOf(t, second[0]) != "next" {
		t.Errorf("unexpected second paragraph contents: %#v", second)
	}
}

// Scenario 2: a parbreak between items makes the list non-tight.
func TestScenario2_ParbreakBetweenItemsMakesListLoose(t *testing.T) {
	flow := realizeBlockOf(t, listItem("a"), space(), listItem("b"), parbreak(), listItem("c"))
	blocks := blockChildren(t, flow)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 list, got %d", len(blocks))
	}
	list, ok := blocks[0].Payload.(*content.ListElement)
	if !ok {
		t.Fatalf("expected *content.ListElement, got %T", blocks[0].Payload)
	}
	if len(list.Items) != 3 {
		t.Errorf("expected 3 items, got %d", len(list.Items))
	}
	if list.Tight {
		t.Errorf("expected tight=false, got true")
	}
}

// Scenario 3: a trailing space alone does not interrupt the list and is discarded.
func TestScenario3_TrailingSpaceIsTightAndDiscarded(t *testing.T) {
	flow := realizeBlockOf(t, listItem("a"), space(), listItem("b"), space())
	blocks := blockChildren(t, flow)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 list, got %d", len(blocks))
	}
	list, ok := blocks[0].Payload.(*content.ListElement)
	if !ok {
		t.Fatalf("expected *content.ListElement, got %T", blocks[0].Payload)
	}
	if len(list.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(list.Items))
	}
	if !list.Tight {
		t.Errorf("expected tight=true, got false")
	}
}

// Scenario 4: a parbreak followed by non-item content interrupts the list and
// starts a new paragraph, in that order.
func TestScenario4_ParbreakThenTextInterruptsList(t *testing.T) {
	flow := realizeBlockOf(t, listItem("a"), parbreak(), text("x"))
	blocks := blockChildren(t, flow)
	if len(blocks) != 2 {
		t.Fatalf("expected list then paragraph, got %d blocks", len(blocks))
	}
	list, ok := blocks[0].Payload.(*content.ListElement)
	if !ok {
		t.Fatalf("expected first block to be *content.ListElement, got %T", blocks[0].Payload)
	}
	if len(list.Items) != 1 || list.Tight {
		t.Errorf("expected single-item loose list, got %d items tight=%v", len(list.Items), list.Tight)
	}

	par := paragraphChildren(t, blocks[1])
	if len(par) != 1 || textOf(t, par[0]) != "x" {
		t.Errorf("unexpected trailing paragraph: %#v", par)
	}
}

// Scenario 8: a pagebreak nested inside block-level content is rejected.
func TestScenario8_PagebreakInsideContainerErrors(t *testing.T) {
	pb := content.Leaf(&content.PagebreakElement{}, content.Span{File: "doc.typ", Start: 10, End: 11})
	seq := content.Seq([]*content.Content{text("before"), pb}, content.Detached)

	_, _, err := RealizeBlock(&Engine{}, nil, seq, content.Empty)
	if err == nil {
		t.Fatal("expected error for nested pagebreak")
	}
	diag, ok := err.(*Diagnostic)
	if !ok {
		t.Fatalf("expected *Diagnostic, got %T", err)
	}
	if diag.Message != "pagebreaks are not allowed inside of containers" {
		t.Errorf("unexpected message %q", diag.Message)
	}
	if diag.Span.Start != 10 {
		t.Errorf("expected span preserved, got %v", diag.Span)
	}
}

func TestRealizeRootProducesDocument(t *testing.T) {
	seq := content.Seq([]*content.Content{text("hello")}, content.Detached)
	doc, _, err := RealizeRoot(&Engine{}, nil, seq, content.Empty)
	if err != nil {
		t.Fatalf("RealizeRoot: %v", err)
	}
	if _, ok := doc.Payload.(*content.DocumentElement); !ok {
		t.Fatalf("expected *content.DocumentElement, got %T", doc.Payload)
	}
}

func TestRealizeBlockShortCircuitsAlreadyNormalized(t *testing.T) {
	par := content.Leaf(&content.ParagraphElement{Children: []*content.Content{text("x")}}, content.Detached)
	out, chain, err := RealizeBlock(&Engine{}, nil, par, content.Empty)
	if err != nil {
		t.Fatalf("RealizeBlock: %v", err)
	}
	if out != par {
		t.Errorf("expected short-circuit to return the same node")
	}
	if chain != content.Empty {
		t.Errorf("expected chain unchanged")
	}
}

func TestRealizeBlockReRealizesShapes(t *testing.T) {
	rect := content.Leaf(&content.RectangleElement{W: 1, H: 2}, content.Detached)
	out, _, err := RealizeBlock(&Engine{}, nil, rect, content.Empty)
	if err != nil {
		t.Fatalf("RealizeBlock: %v", err)
	}
	if _, ok := out.Payload.(*content.FlowElement); !ok {
		t.Fatalf("expected shape to be re-wrapped into a flow, got %T", out.Payload)
	}
}
