package media

import "testing"

func adaptive(id string, height, fps int, ext string) VideoFormat {
	return VideoFormat{
		FormatID: id,
		Ext:      ext,
		Height:   IntPtr(height),
		FPS:      IntPtr(fps),
		VCodec:   "avc1",
		ACodec:   CodecNone,
	}
}

func TestFilterAdaptiveVideoOnly(t *testing.T) {
	tests := []struct {
		name   string
		format VideoFormat
		keep   bool
	}{
		{name: "video only", format: VideoFormat{FormatID: "137", VCodec: "avc1", ACodec: "none"}, keep: true},
		{name: "muxed", format: VideoFormat{FormatID: "22", VCodec: "avc1", ACodec: "mp4a"}, keep: false},
		{name: "audio only", format: VideoFormat{FormatID: "140", VCodec: "none", ACodec: "mp4a"}, keep: false},
		{name: "no tracks", format: VideoFormat{FormatID: "0", VCodec: "none", ACodec: "none"}, keep: false},
	}
	for _, tt := range tests {
		got := FilterAdaptiveVideoOnly([]VideoFormat{tt.format})
		if kept := len(got) == 1; kept != tt.keep {
			t.Errorf("%s: kept=%v want=%v", tt.name, kept, tt.keep)
		}
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := FilterAdaptiveVideoOnly(nil); len(got) != 0 {
		t.Fatalf("FilterAdaptiveVideoOnly(nil) returned %d formats, want 0", len(got))
	}
}

func TestDeduplicateFirstOccurrenceWins(t *testing.T) {
	first := adaptive("1", 1080, 30, "mp4")
	second := adaptive("2", 1080, 30, "mp4")

	got := DeduplicateFormats([]VideoFormat{first, second})
	if len(got) != 1 {
		t.Fatalf("got %d formats, want 1", len(got))
	}
	if got[0].FormatID != "1" {
		t.Fatalf("surviving format is %q, want %q", got[0].FormatID, "1")
	}
}

func TestDeduplicateMissingFieldsAreNotZero(t *testing.T) {
	// A nil height must not collide with an explicit height of 0.
	noHeight := VideoFormat{FormatID: "a", Ext: "mp4", VCodec: "avc1", ACodec: CodecNone}
	zeroHeight := VideoFormat{FormatID: "b", Ext: "mp4", Height: IntPtr(0), VCodec: "avc1", ACodec: CodecNone}

	got := DeduplicateFormats([]VideoFormat{noHeight, zeroHeight})
	if len(got) != 2 {
		t.Fatalf("got %d formats, want 2 (nil and 0 heights are distinct keys)", len(got))
	}
}

func TestDeduplicateBothMissingCollapse(t *testing.T) {
	a := VideoFormat{FormatID: "a", Ext: "mp4", VCodec: "avc1", ACodec: CodecNone}
	b := VideoFormat{FormatID: "b", Ext: "mp4", VCodec: "vp9", ACodec: CodecNone}

	got := DeduplicateFormats([]VideoFormat{a, b})
	if len(got) != 1 || got[0].FormatID != "a" {
		t.Fatalf("got %+v, want single format with id \"a\"", got)
	}
}

func TestDeduplicatePreservesOrder(t *testing.T) {
	in := []VideoFormat{
		adaptive("1", 720, 30, "mp4"),
		adaptive("2", 1080, 30, "mp4"),
		adaptive("3", 720, 30, "mp4"),
		adaptive("4", 480, 30, "webm"),
	}
	got := DeduplicateFormats(in)
	want := []string{"1", "2", "4"}
	if len(got) != len(want) {
		t.Fatalf("got %d formats, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].FormatID != id {
			t.Errorf("position %d: got %q want %q", i, got[i].FormatID, id)
		}
	}
}

func TestSortOrdersByResolutionThenFPSThenContainer(t *testing.T) {
	in := []VideoFormat{
		adaptive("480", 480, 30, "mp4"),
		adaptive("1080-webm", 1080, 30, "webm"),
		adaptive("1080-60", 1080, 60, "webm"),
		adaptive("1080-mp4", 1080, 30, "mp4"),
		adaptive("720", 720, 30, "mp4"),
	}
	got := SortFormats(in)
	want := []string{"1080-60", "1080-mp4", "1080-webm", "720", "480"}
	for i, id := range want {
		if got[i].FormatID != id {
			t.Fatalf("position %d: got %q want %q (full order %v)", i, got[i].FormatID, id, ids(got))
		}
	}
}

func TestSortMissingHeightSortsLast(t *testing.T) {
	unknown := VideoFormat{FormatID: "unknown", Ext: "mp4", VCodec: "avc1", ACodec: CodecNone}
	in := []VideoFormat{unknown, adaptive("144", 144, 15, "webm")}

	got := SortFormats(in)
	if got[len(got)-1].FormatID != "unknown" {
		t.Fatalf("unknown-resolution format sorted at %v, want last", ids(got))
	}
}

func TestSortMissingFPSSortsAfterKnownAtSameHeight(t *testing.T) {
	noFPS := VideoFormat{FormatID: "nofps", Ext: "mp4", Height: IntPtr(1080), VCodec: "avc1", ACodec: CodecNone}
	in := []VideoFormat{noFPS, adaptive("24fps", 1080, 24, "mp4")}

	got := SortFormats(in)
	if got[0].FormatID != "24fps" {
		t.Fatalf("got order %v, want known-fps format first", ids(got))
	}
}

func TestSortIsStableForIdenticalKeys(t *testing.T) {
	in := []VideoFormat{
		adaptive("first", 1080, 30, "mp4"),
		adaptive("second", 1080, 30, "mp4"),
	}
	got := SortFormats(in)
	if got[0].FormatID != "first" || got[1].FormatID != "second" {
		t.Fatalf("identical-key formats reordered: %v", ids(got))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := []VideoFormat{
		adaptive("low", 480, 30, "mp4"),
		adaptive("high", 1080, 30, "mp4"),
	}
	SortFormats(in)
	if in[0].FormatID != "low" {
		t.Fatal("SortFormats mutated its input slice")
	}
}

func TestSelectAdaptiveFormatsMP4TieBreak(t *testing.T) {
	in := []VideoFormat{
		{FormatID: "137", Ext: "mp4", Height: IntPtr(1080), FPS: IntPtr(30), VCodec: "avc1", ACodec: "none"},
		{FormatID: "248", Ext: "webm", Height: IntPtr(1080), FPS: IntPtr(30), VCodec: "vp9", ACodec: "none"},
	}
	got := SelectAdaptiveFormats(in)
	want := []string{"137", "248"}
	if len(got) != 2 || got[0].FormatID != want[0] || got[1].FormatID != want[1] {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
}

func TestSelectAdaptiveFormatsMuxedOnlyYieldsEmpty(t *testing.T) {
	in := []VideoFormat{
		{FormatID: "22", Ext: "mp4", Height: IntPtr(720), VCodec: "avc1", ACodec: "mp4a"},
	}
	if got := SelectAdaptiveFormats(in); len(got) != 0 {
		t.Fatalf("got %v, want empty selection", ids(got))
	}
}

func TestSelectAdaptiveFormatsIdempotent(t *testing.T) {
	in := []VideoFormat{
		adaptive("a", 1080, 60, "webm"),
		adaptive("b", 1080, 30, "mp4"),
		adaptive("c", 720, 30, "mp4"),
		{FormatID: "muxed", Ext: "mp4", Height: IntPtr(360), VCodec: "avc1", ACodec: "mp4a"},
	}
	once := SelectAdaptiveFormats(in)
	twice := SelectAdaptiveFormats(once)

	if len(once) != len(twice) {
		t.Fatalf("lengths differ: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].FormatID != twice[i].FormatID {
			t.Fatalf("pass 2 reordered: %v vs %v", ids(once), ids(twice))
		}
	}
}

func ids(formats []VideoFormat) []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = f.FormatID
	}
	return out
}
