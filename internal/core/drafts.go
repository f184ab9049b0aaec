package core

// PushDraft minimizes an in-progress sale onto the drafts queue. Queue order
// is insertion order.
func PushDraft(queue []SaleDraft, draft SaleDraft) []SaleDraft {
	out := make([]SaleDraft, 0, len(queue)+1)
	out = append(out, queue...)
	return append(out, draft)
}

// TakeDraft removes the draft at the given position and returns it together
// with the shrunken queue. A position outside the queue returns nil and the
// queue untouched, so a draft can only ever be consumed once.
func TakeDraft(queue []SaleDraft, index int) ([]SaleDraft, *SaleDraft) {
	if index < 0 || index >= len(queue) {
		return queue, nil
	}
	draft := queue[index]
	out := make([]SaleDraft, 0, len(queue)-1)
	out = append(out, queue[:index]...)
	out = append(out, queue[index+1:]...)
	return out, &draft
}
