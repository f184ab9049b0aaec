package core_test

import (
	"testing"

	"deli-pos/internal/core"
)

func TestPushDraft_Order(t *testing.T) {
	var queue []core.SaleDraft
	queue = core.PushDraft(queue, core.SaleDraft{Kind: core.DraftNew, CustomerName: "A"})
	queue = core.PushDraft(queue, core.SaleDraft{Kind: core.DraftNew, CustomerName: "B"})

	if len(queue) != 2 || queue[0].CustomerName != "A" || queue[1].CustomerName != "B" {
		t.Fatalf("queue order wrong: %+v", queue)
	}
}

func TestTakeDraft_ExactlyOnce(t *testing.T) {
	queue := []core.SaleDraft{
		{Kind: core.DraftNew, CustomerName: "A"},
		{Kind: core.DraftEditingExisting, OriginalSaleID: "s-1", CustomerName: "B"},
		{Kind: core.DraftNew, CustomerName: "C"},
	}

	remaining, draft := core.TakeDraft(queue, 1)
	if draft == nil || draft.CustomerName != "B" {
		t.Fatalf("took wrong draft: %+v", draft)
	}
	if draft.OriginalSaleID != "s-1" {
		t.Errorf("draft lost its original sale link")
	}
	if len(remaining) != 2 || remaining[0].CustomerName != "A" || remaining[1].CustomerName != "C" {
		t.Errorf("remaining queue wrong: %+v", remaining)
	}

	// Taking the same position again now yields a different draft; the
	// original can never be consumed twice.
	_, again := core.TakeDraft(remaining, 1)
	if again == nil || again.CustomerName != "C" {
		t.Errorf("expected C at position 1 after removal, got %+v", again)
	}
}

func TestTakeDraft_OutOfRange(t *testing.T) {
	queue := []core.SaleDraft{{Kind: core.DraftNew, CustomerName: "A"}}

	for _, idx := range []int{-1, 1, 99} {
		remaining, draft := core.TakeDraft(queue, idx)
		if draft != nil {
			t.Errorf("index %d returned a draft", idx)
		}
		if len(remaining) != 1 {
			t.Errorf("index %d shrank the queue", idx)
		}
	}
}
