package memory

import (
	"context"
	"testing"

	"pendingboard/internal/core"
)

func TestPublishTable(t *testing.T) {
	s := New()
	table := core.Table{Name: "Summary", Columns: []string{"Sr No."}, Rows: [][]any{{1}}}

	ref, err := s.PublishTable(context.Background(), table)
	if err != nil || ref != "mem:1" {
		t.Fatalf("publish: ref=%q err=%v", ref, err)
	}
	ref, err = s.PublishTable(context.Background(), table)
	if err != nil || ref != "mem:2" {
		t.Fatalf("second publish: ref=%q err=%v", ref, err)
	}

	got := s.Published()
	if len(got) != 2 || got[0].Name != "Summary" {
		t.Fatalf("published = %+v", got)
	}
}
