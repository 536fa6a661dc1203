package report

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"meetreport/internal/analysis"
	"meetreport/internal/layout"
	"meetreport/internal/palette"
	"meetreport/internal/testsupport"
	"meetreport/internal/transcript"
)

func mustNumber(t *testing.T, literal string) analysis.Number {
	t.Helper()
	n, err := analysis.ParseNumber(literal)
	if err != nil {
		t.Fatalf("ParseNumber(%q): %v", literal, err)
	}
	return n
}

func instructionsOf(doc *layout.Document, kind layout.Kind) []layout.Instruction {
	var out []layout.Instruction
	for _, p := range doc.Pages {
		for _, ins := range p.Instructions {
			if ins.Kind == kind {
				out = append(out, ins)
			}
		}
	}
	return out
}

func TestTableRowsRoundTrip(t *testing.T) {
	res := testsupport.Result(
		analysis.SpeakerRecord{ID: "SPEAKER_02", Gender: analysis.GenderFemale, Duration: mustNumber(t, "12.50")},
		analysis.SpeakerRecord{ID: "SPEAKER_00", Gender: analysis.GenderMale, Duration: mustNumber(t, "7")},
		analysis.SpeakerRecord{ID: "SPEAKER_01", Gender: analysis.GenderUnknown, Duration: mustNumber(t, "3.0")},
	)

	got := TableRows(res, LabelsFor("tr"))
	want := [][]string{
		{"SPEAKER_02", "12.50", "KADIN"},
		{"SPEAKER_00", "7", "ERKEK"},
		{"SPEAKER_01", "3.0", "BİLİNMİYOR"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TableRows = %q, want %q", got, want)
	}

	english := TableRows(res, LabelsFor("en"))
	if english[0][2] != "FEMALE" || english[1][2] != "MALE" || english[2][2] != "UNKNOWN" {
		t.Fatalf("unexpected English gender labels: %q", english)
	}
	if TableRows(nil, LabelsFor("tr")) != nil {
		t.Fatal("expected no rows for nil result")
	}
}

func TestLabelsFor(t *testing.T) {
	tests := []struct {
		tag   string
		title string
	}{
		{"tr", "TOPLANTI ANALİZ RAPORU"},
		{"tr-TR", "TOPLANTI ANALİZ RAPORU"},
		{"en", "MEETING ANALYSIS REPORT"},
		{"en-GB", "MEETING ANALYSIS REPORT"},
		{"", "TOPLANTI ANALİZ RAPORU"},
	}
	for _, tt := range tests {
		if got := LabelsFor(tt.tag).Title; got != tt.title {
			t.Errorf("LabelsFor(%q).Title = %q, want %q", tt.tag, got, tt.title)
		}
	}
}

func TestCompileHeaderSection(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeDialogue = false

	doc, err := Compile(testsupport.SampleResult(t), opts)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected one page, got %d", len(doc.Pages))
	}
	if doc.Title != "TOPLANTI ANALIZ RAPORU" {
		t.Fatalf("title = %q", doc.Title)
	}

	texts := instructionsOf(doc, layout.KindText)
	wantTexts := []struct {
		y    float64
		text string
	}{
		{18, "TOPLANTI ANALIZ RAPORU"},
		{30, "TOPLAM SURE: 120.50s"},
		{38, "KONUSMA: 98.25s"},
		{46, "SESSIZLIK: 22.25s"},
		{54, "KONUSMACI SAYISI: 2"},
		{94, "CINSIYET DAGILIMI (KONUSMA SURESI): ERKEK %62.4 / KADIN %37.6"},
		{102, "KATILIMCI DAGILIMI (KISI SAYISI): ERKEK %50 / KADIN %50"},
	}
	if len(texts) != len(wantTexts) {
		t.Fatalf("expected %d text instructions, got %d", len(wantTexts), len(texts))
	}
	for i, want := range wantTexts {
		if texts[i].Y != want.y || texts[i].Text != want.text {
			t.Errorf("text %d = (%v, %q), want (%v, %q)", i, texts[i].Y, texts[i].Text, want.y, want.text)
		}
	}

	tables := instructionsOf(doc, layout.KindTable)
	if len(tables) != 1 {
		t.Fatalf("expected one table, got %d", len(tables))
	}
	table := tables[0]
	if table.Y != 62 || table.Height != 24 {
		t.Fatalf("table at y=%v height=%v", table.Y, table.Height)
	}
	if !reflect.DeepEqual(table.Table.Header, []string{"KONUSMACI", "KONUSMA SURESI (s)", "CINSIYET"}) {
		t.Fatalf("table header = %q", table.Table.Header)
	}
	wantRows := [][]string{{"SPEAKER_00", "61.3", "ERKEK"}, {"SPEAKER_01", "36.95", "KADIN"}}
	if !reflect.DeepEqual(table.Table.Rows, wantRows) {
		t.Fatalf("table rows = %q", table.Table.Rows)
	}
	if doc.Count(layout.KindLabel) != 0 {
		t.Fatal("dialogue disabled but labels emitted")
	}
}

func TestCompileWithoutFoldKeepsDiacritics(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeDialogue = false
	opts.FoldASCII = false

	doc, err := Compile(testsupport.SampleResult(t), opts)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if doc.Title != "TOPLANTI ANALİZ RAPORU" {
		t.Fatalf("title = %q", doc.Title)
	}
}

func TestCompileDialogueFollowsTimeline(t *testing.T) {
	doc, err := Compile(testsupport.SampleResult(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	texts := instructionsOf(doc, layout.KindText)
	heading := texts[7]
	if heading.Text != "SOHBET AKISI" || heading.Y != 114 || heading.Style != layout.StyleHeading {
		t.Fatalf("unexpected heading %+v", heading)
	}

	labels := instructionsOf(doc, layout.KindLabel)
	want := []struct {
		text  string
		y     float64
		color string
	}{
		{"SPEAKER_00:", 120, "#90caf9"},
		{"SPEAKER_01:", 127, "#ffab91"},
		{"SPEAKER_00:", 134, "#90caf9"},
		{"SPEAKER_01:", 141, "#ffab91"},
	}
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(labels))
	}
	for i, w := range want {
		if labels[i].Text != w.text || labels[i].Y != w.y || labels[i].Color != w.color {
			t.Errorf("label %d = %+v, want %+v", i, labels[i], w)
		}
		if labels[i].X != 7 {
			t.Errorf("label %d at x=%v", i, labels[i].X)
		}
	}

	first := texts[8]
	if first.X != 34 || !reflect.DeepEqual(first.Lines, []string{"Merhaba, toplantiya hos geldiniz."}) {
		t.Fatalf("unexpected first block %+v", first)
	}
}

func TestCompileShowTimestampsAddsCaption(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowTimestamps = true

	doc, err := Compile(testsupport.SampleResult(t), opts)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	captions := instructionsOf(doc, layout.KindCaption)
	if len(captions) != 4 {
		t.Fatalf("expected 4 captions, got %d", len(captions))
	}
	if captions[0].Text != "[0.00 - 4.20 sn]" || captions[0].Y != 127 {
		t.Fatalf("unexpected caption %+v", captions[0])
	}
	labels := instructionsOf(doc, layout.KindLabel)
	if labels[1].Y != 134 {
		t.Fatalf("caption should push the next block down, got y=%v", labels[1].Y)
	}
}

func oneLineTimeline(n int) []transcript.Segment {
	timeline := make([]transcript.Segment, 0, n)
	for i := range n {
		timeline = append(timeline, transcript.Segment{
			Speaker: "SPEAKER_00",
			Start:   float64(i),
			End:     float64(i) + 0.5,
			Text:    fmt.Sprintf("line %d", i),
			Line:    i,
		})
	}
	return timeline
}

func TestDialoguePaginationBoundary(t *testing.T) {
	g := layout.Geometry{PageHeight: 280, TopMargin: 20, LineHeight: 7, ContentWidth: 160, TableRowHeight: 8}
	opts := DefaultOptions()
	opts.Geometry = g

	f := layout.NewFlow(g)
	f.MoveTo(28)
	// 36 one-line blocks from y=28 end exactly at 280.
	flowDialogue(f, oneLineTimeline(37), palette.New([]string{"SPEAKER_00"}, 8), opts.withDefaults(), false)

	pages := f.Pages()
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	var lastOnFirst layout.Instruction
	labelsOnFirst := 0
	for _, ins := range pages[0].Instructions {
		if ins.Kind == layout.KindLabel {
			labelsOnFirst++
			lastOnFirst = ins
		}
	}
	if labelsOnFirst != 36 {
		t.Fatalf("expected 36 blocks on page 1, got %d", labelsOnFirst)
	}
	if lastOnFirst.Y != 273 || lastOnFirst.Bottom() != 280 {
		t.Fatalf("last block on page 1 at y=%v", lastOnFirst.Y)
	}
	next := pages[1].Instructions[0]
	if next.Kind != layout.KindLabel || next.Y != 20 || next.Text != "SPEAKER_00:" {
		t.Fatalf("expected block 37 at the top of page 2, got %+v", next)
	}
	if f.Cursor() != (layout.Cursor{Page: 1, Y: 27}) {
		t.Fatalf("cursor = %+v", f.Cursor())
	}
}

func TestDialogueNeverSplitsBlocks(t *testing.T) {
	words := strings.Fields("toplanti gundemi butce planlama takvim karar aksiyon sorumluluk rapor ozet")
	var lines []string
	for i := range 60 {
		n := 3 + (i*7)%45
		var text []string
		for j := range n {
			text = append(text, words[(i+j)%len(words)])
		}
		lines = append(lines, fmt.Sprintf("%d-%d: %s", i*10, i*10+5, strings.Join(text, " ")))
	}
	res := testsupport.Result(testsupport.Speaker("SPEAKER_00", analysis.GenderMale, 100, lines...))

	doc, err := Compile(res, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(doc.Pages) < 2 {
		t.Fatalf("expected the dialogue to span pages, got %d", len(doc.Pages))
	}
	if overflow := doc.Overflows(); len(overflow) != 0 {
		t.Fatalf("instructions cross the bottom margin: %+v", overflow)
	}
	if got := doc.Count(layout.KindLabel); got != 60 {
		t.Fatalf("expected one label per segment, got %d", got)
	}
	for _, p := range doc.Pages {
		for _, ins := range p.Instructions {
			if ins.Continued {
				t.Fatalf("block split across pages on page %d: %+v", p.Number, ins)
			}
		}
	}
}

func TestOversizedBlockContinuesOnNextPage(t *testing.T) {
	g := layout.Geometry{PageHeight: 100, TopMargin: 10, BottomMargin: 10, LineHeight: 10, ContentWidth: 20, TableRowHeight: 10}
	opts := DefaultOptions()
	opts.Geometry = g
	opts.Measurer = layout.CellMeasurer{Advance: 1}

	timeline := []transcript.Segment{
		{Speaker: "A", Start: 0, End: 1, Text: "hi"},
		// 40 words, four per line: ten lines against eight per page.
		{Speaker: "B", Start: 1, End: 9, Text: strings.TrimSpace(strings.Repeat("word ", 40))},
	}
	pages, cursor := RenderDialogue(timeline, palette.New([]string{"A", "B"}, 8), opts)

	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	first := pages[0].Instructions
	if len(first) != 4 {
		t.Fatalf("expected 4 instructions on page 1, got %d", len(first))
	}
	clipped := first[3]
	if clipped.Y != 20 || len(clipped.Lines) != 7 || clipped.Bottom() != 90 {
		t.Fatalf("expected the block clipped to 7 lines at y=20, got %+v", clipped)
	}

	second := pages[1].Instructions
	if len(second) != 2 {
		t.Fatalf("expected continuation label and text on page 2, got %d", len(second))
	}
	if !second[0].Continued || second[0].Text != "B:" || second[0].Color != "#ffab91" || second[0].Y != 10 {
		t.Fatalf("unexpected continuation label %+v", second[0])
	}
	if !second[1].Continued || len(second[1].Lines) != 3 {
		t.Fatalf("unexpected continuation text %+v", second[1])
	}
	if cursor != (layout.Cursor{Page: 1, Y: 40}) {
		t.Fatalf("cursor = %+v", cursor)
	}

	doc := &layout.Document{Geometry: g, Pages: pages}
	if overflow := doc.Overflows(); len(overflow) != 0 {
		t.Fatalf("unexpected overflow %+v", overflow)
	}
}

func TestDialogueHeadingTravelsWithFirstBlock(t *testing.T) {
	g := layout.Geometry{PageHeight: 100, TopMargin: 10, BottomMargin: 10, LineHeight: 10, ContentWidth: 20, TableRowHeight: 10}
	opts := DefaultOptions()
	opts.Geometry = g
	opts.Measurer = layout.CellMeasurer{Advance: 1}
	timeline := []transcript.Segment{
		// Sixteen words, four per line: a four line block.
		{Speaker: "A", Start: 0, End: 4, Text: strings.TrimSpace(strings.Repeat("word ", 16))},
		{Speaker: "B", Start: 4, End: 5, Text: "ok"},
	}

	tests := []struct {
		name        string
		start       float64
		headingPage int
	}{
		// Heading and a single line fit at 54, the four line block does not.
		{"first block does not fit", 50, 1},
		{"first block fits", 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := layout.NewFlow(g)
			f.MoveTo(tt.start)
			FlowDialogue(f, timeline, palette.New([]string{"A", "B"}, 8), opts)

			pages := f.Pages()
			page := pages[tt.headingPage].Instructions
			if len(page) < 3 || page[0].Style != layout.StyleHeading {
				t.Fatalf("expected heading on page %d, got %+v", tt.headingPage+1, page)
			}
			if page[1].Kind != layout.KindLabel || page[1].Text != "A:" || page[1].Y != page[0].Bottom() {
				t.Fatalf("expected first block directly under the heading, got %+v", page[1])
			}
			if tt.headingPage > 0 && len(pages[0].Instructions) != 0 {
				t.Fatalf("heading left content behind on page 1: %+v", pages[0].Instructions)
			}
			for _, p := range pages {
				for _, ins := range p.Instructions {
					if ins.Continued {
						t.Fatalf("first block should not be split: %+v", ins)
					}
				}
			}
		})
	}
}

func TestUnknownSpeakerUsesFirstSwatch(t *testing.T) {
	timeline := []transcript.Segment{
		{Speaker: "SPEAKER_01", Start: 0, End: 1, Text: "bilinen"},
		{Speaker: "SPEAKER_09", Start: 1, End: 2, Text: "bilinmeyen"},
	}
	pages, _ := RenderDialogue(timeline, palette.New([]string{"SPEAKER_00", "SPEAKER_01"}, 8), DefaultOptions())
	doc := &layout.Document{Pages: pages}
	labels := instructionsOf(doc, layout.KindLabel)
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	if labels[0].Color == "#90caf9" {
		t.Fatalf("rostered speaker should use its own swatch, got %s", labels[0].Color)
	}
	if labels[1].Text != "SPEAKER_09:" || labels[1].Color != "#90caf9" {
		t.Fatalf("unknown speaker label = %+v", labels[1])
	}
}

func TestEmptyTimelineEmitsPlaceholder(t *testing.T) {
	pages, cursor := RenderDialogue(nil, palette.New(nil, 8), DefaultOptions())
	if len(pages) != 1 || len(pages[0].Instructions) != 1 {
		t.Fatalf("expected a single placeholder, got %+v", pages)
	}
	ph := pages[0].Instructions[0]
	if ph.Kind != layout.KindPlaceholder || ph.Text != "Transcript bulunamadi." {
		t.Fatalf("unexpected placeholder %+v", ph)
	}
	if cursor != (layout.Cursor{Page: 0, Y: 27}) {
		t.Fatalf("cursor = %+v", cursor)
	}

	res := testsupport.Result(
		testsupport.Speaker("SPEAKER_00", analysis.GenderMale, 10, "garbage", "also garbage"),
		testsupport.Speaker("SPEAKER_01", analysis.GenderFemale, 5),
	)
	doc, err := Compile(res, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("placeholder must not add pages, got %d", len(doc.Pages))
	}
	if doc.Count(layout.KindPlaceholder) != 1 || doc.Count(layout.KindLabel) != 0 {
		t.Fatalf("expected exactly one placeholder and no blocks")
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	res := testsupport.SampleResult(t)
	first, err := Compile(res, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	second, err := Compile(res, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("recompiling the same result produced a different document")
	}
}

func TestPaletteWrapsInDocument(t *testing.T) {
	var speakers []analysis.SpeakerRecord
	for i := range 10 {
		id := fmt.Sprintf("S%d", i)
		speakers = append(speakers, testsupport.Speaker(id, analysis.GenderMale, 1, fmt.Sprintf("%d-%d: turn", i, i+1)))
	}
	doc, err := Compile(testsupport.Result(speakers...), DefaultOptions())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	labels := instructionsOf(doc, layout.KindLabel)
	if len(labels) != 10 {
		t.Fatalf("expected 10 labels, got %d", len(labels))
	}
	if labels[8].Color != labels[0].Color || labels[9].Color != labels[1].Color {
		t.Fatal("expected palette to wrap after eight speakers")
	}
	if labels[7].Color == labels[0].Color {
		t.Fatal("expected distinct colours within the palette size")
	}
}

func TestCompileTableSplitsAcrossPages(t *testing.T) {
	var speakers []analysis.SpeakerRecord
	for i := range 40 {
		speakers = append(speakers, testsupport.Speaker(fmt.Sprintf("S%02d", i), analysis.GenderFemale, 1))
	}
	opts := DefaultOptions()
	opts.IncludeDialogue = false

	doc, err := Compile(testsupport.Result(speakers...), opts)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	tables := instructionsOf(doc, layout.KindTable)
	if len(tables) != 2 {
		t.Fatalf("expected table split in two, got %d", len(tables))
	}
	if len(tables[0].Table.Rows) != 26 || tables[0].Continued {
		t.Fatalf("unexpected first fragment: %d rows continued=%v", len(tables[0].Table.Rows), tables[0].Continued)
	}
	if len(tables[1].Table.Rows) != 14 || !tables[1].Continued || tables[1].Y != 20 {
		t.Fatalf("unexpected second fragment %+v", tables[1])
	}
	if !reflect.DeepEqual(tables[0].Table.Header, tables[1].Table.Header) {
		t.Fatal("expected the header row to repeat")
	}
	if tables[1].Table.Rows[0][0] != "S26" {
		t.Fatalf("rows out of order: %q", tables[1].Table.Rows[0])
	}
	if len(doc.Pages) != 2 || len(doc.Overflows()) != 0 {
		t.Fatalf("pages=%d overflows=%d", len(doc.Pages), len(doc.Overflows()))
	}
}

func TestCompileRejectsBadInput(t *testing.T) {
	if _, err := Compile(nil, DefaultOptions()); !errors.Is(err, analysis.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}

	opts := DefaultOptions()
	opts.Geometry.LineHeight = -1
	if _, err := Compile(testsupport.SampleResult(t), opts); err == nil {
		t.Fatal("expected geometry error")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLanguage("en"), testsupport.WithoutDialogue())
	cfg.Report.ShowTimestamps = true
	cfg.Layout.GlyphAdvance = 1.5

	opts := OptionsFromConfig(cfg, nil)
	if opts.IncludeDialogue || !opts.ShowTimestamps || !opts.FoldASCII {
		t.Fatalf("unexpected flags %+v", opts)
	}
	if opts.Labels.Title != "MEETING ANALYSIS REPORT" {
		t.Fatalf("unexpected labels %q", opts.Labels.Title)
	}
	if opts.Geometry != layout.DefaultGeometry() {
		t.Fatalf("unexpected geometry %+v", opts.Geometry)
	}
	if m, ok := opts.Measurer.(layout.CellMeasurer); !ok || m.Advance != 1.5 {
		t.Fatalf("unexpected measurer %#v", opts.Measurer)
	}
}
