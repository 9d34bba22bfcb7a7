package listview

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type item struct {
	ID   string
	Name string
}

// fixture wires a controller against an in-memory backend whose behavior
// each test can script.
type fixture struct {
	items      []item
	fetchErr   error
	fetchCalls int

	deletedOne  []string
	deletedMany [][]string
	deleteErr   error
}

func (f *fixture) controller(pageSizes ...int) *Controller[item] {
	return New(Config[item]{
		Fetch: func(ctx context.Context) ([]item, error) {
			f.fetchCalls++
			if f.fetchErr != nil {
				return nil, f.fetchErr
			}
			return append([]item(nil), f.items...), nil
		},
		ID:          func(i item) string { return i.ID },
		MatchFields: func(i item) []string { return []string{i.Name} },
		DeleteOne: func(ctx context.Context, id string) error {
			if f.deleteErr != nil {
				return f.deleteErr
			}
			f.deletedOne = append(f.deletedOne, id)
			f.remove(id)
			return nil
		},
		DeleteMany: func(ctx context.Context, ids []string) error {
			if f.deleteErr != nil {
				return f.deleteErr
			}
			f.deletedMany = append(f.deletedMany, append([]string(nil), ids...))
			for _, id := range ids {
				f.remove(id)
			}
			return nil
		},
		PageSizes: pageSizes,
	})
}

func (f *fixture) remove(id string) {
	kept := f.items[:0]
	for _, it := range f.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	f.items = kept
}

func nItems(n int) []item {
	items := make([]item, n)
	for i := range items {
		items[i] = item{ID: fmt.Sprintf("id-%02d", i), Name: fmt.Sprintf("name %02d", i)}
	}
	return items
}

func TestLoadSuccess(t *testing.T) {
	f := &fixture{items: nItems(3)}
	c := f.controller()
	c.Load(context.Background(), false)

	if len(c.Items()) != 3 || len(c.Filtered()) != 3 {
		t.Errorf("expected 3 items, got %d/%d", len(c.Items()), len(c.Filtered()))
	}
	if c.Loading() {
		t.Error("loading should be false after load")
	}
}

func TestLoadFailureClearsEverything(t *testing.T) {
	f := &fixture{items: nItems(3)}
	c := f.controller()
	c.Load(context.Background(), false)

	f.fetchErr = errors.New("no response from server")
	c.Load(context.Background(), false)

	if len(c.Items()) != 0 || len(c.Filtered()) != 0 {
		t.Error("failed load must not leave stale data visible")
	}
	n := c.Notice()
	if n == nil || n.Kind != NoticeError || n.Message != "no response from server" {
		t.Errorf("expected error notice with fetch message, got %+v", n)
	}
}

func TestFilterIsSubsetAndPure(t *testing.T) {
	f := &fixture{items: []item{
		{ID: "a", Name: "Paris Weekend"},
		{ID: "b", Name: "Bosphorus Week"},
		{ID: "c", Name: "Aurora Hunt"},
	}}
	c := f.controller()
	c.Load(context.Background(), false)

	c.SetQuery("week")
	if got := len(c.Filtered()); got != 2 {
		t.Errorf("expected 2 matches, got %d", got)
	}
	if len(c.Items()) != 3 {
		t.Error("filtering must never mutate items")
	}

	// Case-insensitive.
	c.SetQuery("AURORA")
	if got := c.Filtered(); len(got) != 1 || got[0].ID != "c" {
		t.Errorf("expected aurora match, got %+v", got)
	}

	// Empty query restores identity.
	c.SetQuery("")
	if len(c.Filtered()) != len(c.Items()) {
		t.Error("empty query must show everything")
	}

	// No match yields empty view, not an error.
	c.SetQuery("zanzibar")
	if len(c.Filtered()) != 0 {
		t.Error("expected empty result for non-matching query")
	}
	if c.Notice() != nil {
		t.Error("a non-matching filter is not an error")
	}
}

func TestQueryResetsPage(t *testing.T) {
	f := &fixture{items: nItems(25)}
	c := f.controller()
	c.Load(context.Background(), false)

	c.SetPage(3)
	if c.CurrentPage() != 3 {
		t.Fatalf("setup: expected page 3, got %d", c.CurrentPage())
	}
	c.SetQuery("name")
	if c.CurrentPage() != 1 {
		t.Errorf("query change must reset to page 1, got %d", c.CurrentPage())
	}
}

func TestPageClamping(t *testing.T) {
	f := &fixture{items: nItems(12)} // default size 5 -> 3 pages
	c := f.controller()
	c.Load(context.Background(), false)

	c.SetPage(99)
	if c.CurrentPage() != 3 {
		t.Errorf("expected clamp to last page 3, got %d", c.CurrentPage())
	}
	c.SetPage(-4)
	if c.CurrentPage() != 1 {
		t.Errorf("expected clamp to first page, got %d", c.CurrentPage())
	}

	// An empty view still has one page.
	c.SetQuery("nothing-matches")
	if c.TotalPages() != 1 || c.CurrentPage() != 1 {
		t.Errorf("empty view should be page 1/1, got %d/%d", c.CurrentPage(), c.TotalPages())
	}
}

func TestPageItemsWindow(t *testing.T) {
	f := &fixture{items: nItems(12)}
	c := f.controller()
	c.Load(context.Background(), false)

	c.SetPage(3)
	got := c.PageItems()
	if len(got) != 2 {
		t.Fatalf("expected 2 items on the last page, got %d", len(got))
	}
	if got[0].ID != "id-10" || got[1].ID != "id-11" {
		t.Errorf("unexpected window: %+v", got)
	}
}

func TestSetPageSizeValidatesOptions(t *testing.T) {
	f := &fixture{items: nItems(30)}
	c := f.controller()
	c.Load(context.Background(), false)
	c.SetPage(2)

	c.SetPageSize(7) // not in the option set
	if c.PageSize() != DefaultPageSizes[0] {
		t.Errorf("invalid size must be ignored, got %d", c.PageSize())
	}
	if c.CurrentPage() != 2 {
		t.Error("ignored size change must not reset the page")
	}

	c.SetPageSize(10)
	if c.PageSize() != 10 {
		t.Errorf("expected size 10, got %d", c.PageSize())
	}
	if c.CurrentPage() != 1 {
		t.Error("size change must reset to page 1")
	}
}

func TestSelectionIntersectsFilter(t *testing.T) {
	f := &fixture{items: []item{
		{ID: "a", Name: "Paris"},
		{ID: "b", Name: "Istanbul"},
		{ID: "c", Name: "Reykjavik"},
	}}
	c := f.controller()
	c.Load(context.Background(), false)

	c.ToggleSelect("a")
	c.ToggleSelect("b")
	if got := c.SelectedIDs(); len(got) != 2 {
		t.Fatalf("expected 2 selected, got %v", got)
	}

	// "a" stays in the set but is hidden by the filter, so not actionable.
	c.SetQuery("istanbul")
	if got := c.SelectedIDs(); len(got) != 1 || got[0] != "b" {
		t.Errorf("expected only visible selection actionable, got %v", got)
	}

	// Clearing the filter restores it.
	c.SetQuery("")
	if got := c.SelectedIDs(); len(got) != 2 {
		t.Errorf("expected both actionable again, got %v", got)
	}
}

func TestReloadDropsVanishedSelection(t *testing.T) {
	f := &fixture{items: nItems(3)}
	c := f.controller()
	c.Load(context.Background(), false)

	c.ToggleSelect("id-00")
	c.ToggleSelect("id-01")
	f.items = f.items[1:] // id-00 deleted elsewhere
	c.Load(context.Background(), true)

	if got := c.SelectedIDs(); len(got) != 1 || got[0] != "id-01" {
		t.Errorf("expected vanished id dropped from selection, got %v", got)
	}
}

func TestToggleSelectAll(t *testing.T) {
	f := &fixture{items: nItems(8)} // page size 5
	c := f.controller()
	c.Load(context.Background(), false)

	c.ToggleSelectAll()
	if got := c.SelectedIDs(); len(got) != 5 {
		t.Errorf("expected current page selected, got %v", got)
	}
	c.ToggleSelectAll()
	if got := c.SelectedIDs(); len(got) != 0 {
		t.Errorf("expected selection cleared, got %v", got)
	}
}

func TestConfirmDeleteSingle(t *testing.T) {
	f := &fixture{items: nItems(3)}
	c := f.controller()
	c.Load(context.Background(), false)
	loads := f.fetchCalls

	c.RequestDelete("id-01")
	if got := c.PendingDeleteIDs(); len(got) != 1 || got[0] != "id-01" {
		t.Fatalf("expected pending id-01, got %v", got)
	}
	c.ConfirmDelete(context.Background())

	if len(f.deletedOne) != 1 || f.deletedOne[0] != "id-01" {
		t.Errorf("expected single delete of id-01, got %v", f.deletedOne)
	}
	if f.fetchCalls != loads+1 {
		t.Error("expected a silent reload after successful delete")
	}
	if len(c.Items()) != 2 {
		t.Errorf("expected 2 items after reload, got %d", len(c.Items()))
	}
	if n := c.Notice(); n == nil || n.Kind != NoticeSuccess {
		t.Errorf("expected success notice, got %+v", n)
	}
}

func TestCancelDelete(t *testing.T) {
	f := &fixture{items: nItems(3)}
	c := f.controller()
	c.Load(context.Background(), false)

	c.RequestDelete("id-01")
	c.CancelDelete()
	c.ConfirmDelete(context.Background())

	if len(f.deletedOne) != 0 {
		t.Errorf("cancelled delete must not reach the backend, got %v", f.deletedOne)
	}
	if len(c.Items()) != 3 {
		t.Error("expected all items untouched")
	}
}

func TestBulkDeleteSendsExactActionableIDs(t *testing.T) {
	f := &fixture{items: []item{
		{ID: "a", Name: "Paris"},
		{ID: "b", Name: "Istanbul"},
		{ID: "c", Name: "Paris Nord"},
	}}
	c := f.controller()
	c.Load(context.Background(), false)

	c.ToggleSelect("a")
	c.ToggleSelect("b")
	c.SetQuery("paris") // b hidden, not actionable

	c.RequestDeleteSelected()
	c.ConfirmDelete(context.Background())

	if len(f.deletedMany) != 1 {
		t.Fatalf("expected exactly one bulk request, got %d", len(f.deletedMany))
	}
	if ids := f.deletedMany[0]; len(ids) != 1 || ids[0] != "a" {
		t.Errorf("expected only actionable ids, got %v", ids)
	}
	if got := c.SelectedIDs(); len(got) != 0 {
		t.Errorf("expected selection cleared after bulk delete, got %v", got)
	}
}

func TestRequestDeleteSelectedEmptyDoesNotArm(t *testing.T) {
	f := &fixture{items: nItems(2)}
	c := f.controller()
	c.Load(context.Background(), false)

	c.RequestDeleteSelected()
	if c.PendingDeleteIDs() != nil {
		t.Error("empty selection must not arm the confirmation step")
	}
}

func TestDeleteFailureKeepsListState(t *testing.T) {
	f := &fixture{items: nItems(3)}
	c := f.controller()
	c.Load(context.Background(), false)
	loads := f.fetchCalls

	f.deleteErr = errors.New("destination is referenced by a package")
	c.RequestDelete("id-00")
	c.ConfirmDelete(context.Background())

	if len(c.Items()) != 3 {
		t.Error("failed delete must leave items untouched")
	}
	if f.fetchCalls != loads {
		t.Error("failed delete must not trigger a reload")
	}
	if n := c.Notice(); n == nil || n.Kind != NoticeError {
		t.Errorf("expected error notice, got %+v", n)
	}
}

func TestDeleteLastItemOfLastPageClamps(t *testing.T) {
	f := &fixture{items: nItems(6)} // pages: 5 + 1
	c := f.controller()
	c.Load(context.Background(), false)
	c.SetPage(2)

	c.RequestDelete("id-05")
	c.ConfirmDelete(context.Background())

	if c.CurrentPage() != 1 {
		t.Errorf("expected page clamped to 1 after last page emptied, got %d", c.CurrentPage())
	}
	if len(c.PageItems()) != 5 {
		t.Errorf("expected full first page, got %d", len(c.PageItems()))
	}
}

func TestTransitionReloadsInsteadOfMutating(t *testing.T) {
	f := &fixture{items: nItems(2)}
	c := f.controller()
	c.Load(context.Background(), false)
	loads := f.fetchCalls

	called := ""
	op := func(ctx context.Context, id string) error {
		called = id
		return nil
	}
	c.Transition(context.Background(), "id-01", op, "paid")

	if called != "id-01" {
		t.Errorf("expected op called with id-01, got %q", called)
	}
	if f.fetchCalls != loads+1 {
		t.Error("expected silent reload after successful transition")
	}
	if n := c.Notice(); n == nil || n.Kind != NoticeSuccess || n.Message != "paid" {
		t.Errorf("expected success notice, got %+v", n)
	}
}

func TestTransitionFailure(t *testing.T) {
	f := &fixture{items: nItems(2)}
	c := f.controller()
	c.Load(context.Background(), false)
	loads := f.fetchCalls

	op := func(ctx context.Context, id string) error {
		return errors.New("ticket already cancelled")
	}
	c.Transition(context.Background(), "id-01", op, "cancelled")

	if f.fetchCalls != loads {
		t.Error("failed transition must not reload")
	}
	if n := c.Notice(); n == nil || n.Kind != NoticeError {
		t.Errorf("expected error notice, got %+v", n)
	}
}

func TestClearNotice(t *testing.T) {
	f := &fixture{items: nItems(1)}
	c := f.controller()
	c.Load(context.Background(), false)
	c.Transition(context.Background(), "id-00", func(ctx context.Context, id string) error { return nil }, "done")

	if c.Notice() == nil {
		t.Fatal("setup: expected a notice")
	}
	c.ClearNotice()
	if c.Notice() != nil {
		t.Error("expected notice cleared")
	}
}
