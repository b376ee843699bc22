package tips

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	sections, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sections) < 3 {
		t.Fatalf("got %d sections, want at least 3", len(sections))
	}
	for _, s := range sections {
		if s.Title == "" {
			t.Error("section with empty title")
		}
		if len(s.Items) == 0 {
			t.Errorf("section %q has no items", s.Title)
		}
	}
}

func TestParseSections(t *testing.T) {
	source := []byte(`# Title

## First

- one
- two

## Second

- three
`)
	sections, err := parse(source)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Title != "First" || len(sections[0].Items) != 2 {
		t.Errorf("unexpected first section: %+v", sections[0])
	}
	if !strings.Contains(sections[1].Items[0], "three") {
		t.Errorf("unexpected item: %q", sections[1].Items[0])
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := parse([]byte("just text, no headings")); err == nil {
		t.Error("parse of sectionless document succeeded, want error")
	}
}
