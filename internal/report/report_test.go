package report

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msbee/msbee/internal/task"
)

var sample = []task.Task{
	{Text: "Buy milk start: 2024-01-01", Start: "2024-01-01", Source: filepath.Join("/vault", "a.md"), Line: 1},
	{Text: "Water plants", Source: filepath.Join("/vault", "home", "b.md"), Line: 7},
}

func TestText(t *testing.T) {
	want := "found 2 tasks that are not done and not scheduled for later:\n" +
		"- [ ] Buy milk start: 2024-01-01 (start: 2024-01-01)\n" +
		"- [ ] Water plants (start: no date)\n"
	if got := Text(sample); got != want {
		t.Errorf("Text() =\n%q\nwant\n%q", got, want)
	}
}

func TestTextEmpty(t *testing.T) {
	want := "found 0 tasks that are not done and not scheduled for later:\n"
	if got := Text(nil); got != want {
		t.Errorf("Text(nil) = %q, want %q", got, want)
	}
}

func TestMarkdown(t *testing.T) {
	got := Markdown(sample)
	if !strings.HasPrefix(got, Summary(2)+"\n\n- [ ] ") {
		t.Errorf("Markdown() should separate summary and list, got %q", got)
	}
}

func TestHTML(t *testing.T) {
	got := HTML(sample)
	for _, want := range []string{"<ul>", "<li>", "Water plants (start: no date)", "found 2 tasks"} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() missing %q in %q", want, got)
		}
	}
}

func TestHTMLTaskTextIsLiteral(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []string
		notWant []string
	}{
		{
			name:    "raw html",
			text:    `<script>alert(1)</script> and <b>bold</b>`,
			want:    []string{"bold"},
			notWant: []string{"<script>", "<b>"},
		},
		{
			name:    "dashes",
			text:    "call mom -- then dad --- later",
			want:    []string{"call mom -- then dad --- later"},
			notWant: []string{"&ndash;", "&mdash;"},
		},
		{
			name:    "quotes and fractions",
			text:    `read "Dune" 1/2 done`,
			want:    []string{"Dune", "1/2"},
			notWant: []string{"&ldquo;", "&rdquo;", "&frac12;"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HTML([]task.Task{{Text: tt.text, Source: "/vault/a.md", Line: 1}})
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("HTML() missing %q in %q", want, got)
				}
			}
			for _, bad := range tt.notWant {
				if strings.Contains(got, bad) {
					t.Errorf("HTML() contains %q in %q", bad, got)
				}
			}
		})
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sample, "/vault"); err != nil {
		t.Fatalf("JSON error: %v", err)
	}

	var got struct {
		Count int `json:"count"`
		Tasks []struct {
			Text   string  `json:"text"`
			Done   bool    `json:"done"`
			Start  *string `json:"start"`
			Source string `json:"source"`
			Line   int    `json:"line"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if got.Count != 2 || len(got.Tasks) != 2 {
		t.Fatalf("got %+v", got)
	}
	if got.Tasks[0].Start == nil || *got.Tasks[0].Start != "2024-01-01" {
		t.Errorf("first start = %v", got.Tasks[0].Start)
	}
	if got.Tasks[1].Start != nil {
		t.Errorf("second start = %v, want null", *got.Tasks[1].Start)
	}
	if got.Tasks[1].Source != "home/b.md" || got.Tasks[1].Line != 7 {
		t.Errorf("second location = %s:%d", got.Tasks[1].Source, got.Tasks[1].Line)
	}
	if !strings.Contains(buf.String(), `"start": null`) {
		t.Errorf("absent start should encode as null: %s", buf.String())
	}
}

func TestJSONEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, nil, ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"tasks": []`) {
		t.Errorf("empty report should have an empty array: %s", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("ParseFormat(yaml) should fail")
	}
}

func TestDailySection(t *testing.T) {
	want := "- Buy milk start: 2024-01-01 (in a.md)\n- Water plants (in home/b.md)\n"
	if got := DailySection(sample, "/vault"); got != want {
		t.Errorf("DailySection() = %q, want %q", got, want)
	}
	if tasks := task.Parse(DailySection(sample, "/vault")); len(tasks) != 0 {
		t.Errorf("daily section lines parse as tasks: %+v", tasks)
	}
	if got := DailySection(nil, "/vault"); got == "" {
		t.Error("DailySection(nil) should say there is nothing to do")
	}
}

func TestRelPath(t *testing.T) {
	tests := []struct {
		root, path, want string
	}{
		{"/vault", "/vault/a.md", "a.md"},
		{"/vault", "/vault/x/y.md", "x/y.md"},
		{"/vault", "/elsewhere/z.md", "/elsewhere/z.md"},
		{"", "/vault/a.md", "/vault/a.md"},
	}
	for _, tt := range tests {
		root := filepath.FromSlash(tt.root)
		path := filepath.FromSlash(tt.path)
		if got := RelPath(root, path); got != tt.want {
			t.Errorf("RelPath(%q, %q) = %q, want %q", tt.root, tt.path, got, tt.want)
		}
	}
}
