package report

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReportKeepsInsertionOrder(t *testing.T) {
	r := &Report{}
	r.Set("zeta", 1)
	r.Set("alpha", "a")
	r.Set("mid", nil)
	r.Set("zeta", 2.5)

	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, r.Keys()); diff != "" {
		t.Fatal(diff)
	}
	if r.Len() != 3 {
		t.Fatal("unexpected length", r.Len())
	}
	value, found := r.Get("zeta")
	if !found || value != 2.5 {
		t.Fatal("unexpected value", value, found)
	}
	if _, found := r.Get("nonexistent"); found {
		t.Fatal("expected not found")
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"zeta":2.5,"alpha":"a","mid":null}` {
		t.Fatal("unexpected JSON", string(data))
	}
}

func TestEmptyReport(t *testing.T) {
	r := &Report{}
	if _, found := r.Get("x"); found {
		t.Fatal("expected not found")
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{}` {
		t.Fatal("unexpected JSON", string(data))
	}
}

func TestReportMarshalFailure(t *testing.T) {
	r := &Report{}
	r.Set("bad", math.Inf(1))
	if _, err := json.Marshal(r); err == nil {
		t.Fatal("expected an error")
	}
}

func TestEntriesReturnsACopy(t *testing.T) {
	r := &Report{}
	r.Set("a", 1)
	entries := r.Entries()
	entries[0].Value = 2
	if value, _ := r.Get("a"); value != 1 {
		t.Fatal("the report was modified")
	}
}
