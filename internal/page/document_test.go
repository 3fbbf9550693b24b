package page

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNewDocument_Empty(t *testing.T) {
	d := NewDocument()
	if d.Title() != "" {
		t.Errorf("new document title = %q, want empty", d.Title())
	}
	if _, ok := d.Meta(MetaDescription); ok {
		t.Error("new document should have no description meta field")
	}
}

func TestUpsertMeta_CreatesWhenAbsent(t *testing.T) {
	d := NewDocument()
	d.UpsertMeta(MetaDescription, "first")
	got, ok := d.Meta(MetaDescription)
	if !ok {
		t.Fatal("meta field should exist after upsert")
	}
	if got != "first" {
		t.Errorf("meta content = %q, want %q", got, "first")
	}
}

func TestUpsertMeta_UpdatesInPlace(t *testing.T) {
	d := NewDocument()
	d.UpsertMeta(MetaDescription, "first")
	d.UpsertMeta(MetaDescription, "second")
	got, _ := d.Meta(MetaDescription)
	if got != "second" {
		t.Errorf("meta content after second upsert = %q, want %q", got, "second")
	}
}

func TestUpsertMeta_NilMapSafe(t *testing.T) {
	var d Document
	d.UpsertMeta("keywords", "blockchain")
	if got, _ := d.Meta("keywords"); got != "blockchain" {
		t.Errorf("meta content = %q, want %q", got, "blockchain")
	}
}

func TestApplyMetadata_SetsLiterals(t *testing.T) {
	d := NewDocument()
	ApplyMetadata(d)

	if d.Title() != "Timothé Fardella | First Blockchain Portfolio Coming Soon" {
		t.Errorf("title = %q", d.Title())
	}
	desc, ok := d.Meta(MetaDescription)
	if !ok {
		t.Fatal("description meta field missing after ApplyMetadata")
	}
	if desc != "My new blockchain portfolio website is currently under construction. Coming soon." {
		t.Errorf("description = %q", desc)
	}
}

func TestApplyMetadata_Idempotent(t *testing.T) {
	once := NewDocument()
	ApplyMetadata(once)

	twice := NewDocument()
	ApplyMetadata(twice)
	ApplyMetadata(twice)

	if once.Title() != twice.Title() {
		t.Errorf("titles differ: %q vs %q", once.Title(), twice.Title())
	}
	d1, _ := once.Meta(MetaDescription)
	d2, _ := twice.Meta(MetaDescription)
	if d1 != d2 {
		t.Errorf("descriptions differ: %q vs %q", d1, d2)
	}
}

func TestFooter_ContainsYearAndOwner(t *testing.T) {
	year := time.Now().Year()
	footer := Footer(year)
	if !strings.Contains(footer, fmt.Sprintf("%d", year)) {
		t.Errorf("footer %q missing year %d", footer, year)
	}
	if !strings.Contains(footer, Owner) {
		t.Errorf("footer %q missing owner %q", footer, Owner)
	}
}

func TestLinkURL_Fixed(t *testing.T) {
	if LinkURL != "https://github.com/teamssUTXO" {
		t.Errorf("LinkURL = %q", LinkURL)
	}
}
