// Package listview implements the list page state machine shared by the
// destinations, packages, flight tickets, bookings and consultations views:
// fetch-all, in-memory text filter, pagination, multi-select and
// confirmation-gated single/bulk delete with a silent reload after every
// successful mutation.
package listview

import (
	"context"
	"strings"
	"sync"
)

// NoticeKind discriminates the transient notification shown after an action.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the single toast produced by each mutating action.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// DefaultPageSizes is the fixed set of page size options.
var DefaultPageSizes = []int{5, 10, 20, 50}

// Config parameterizes a controller for one resource type.
type Config[T any] struct {
	// Fetch loads all items from the collaborator.
	Fetch func(ctx context.Context) ([]T, error)
	// ID extracts the stable identifier of an item.
	ID func(T) string
	// MatchFields extracts the display fields the text filter searches.
	MatchFields func(T) []string
	// DeleteOne deletes a single item.
	DeleteOne func(ctx context.Context, id string) error
	// DeleteMany deletes all given ids in one request.
	DeleteMany func(ctx context.Context, ids []string) error
	// PageSizes overrides DefaultPageSizes.
	PageSizes []int
}

type pendingDelete struct {
	ids    []string
	single bool
}

// Controller holds the state of one list view.
type Controller[T any] struct {
	cfg Config[T]

	mu       sync.Mutex
	items    []T
	filtered []T
	query    string
	page     int
	pageSize int
	selected map[string]struct{}
	loading  bool
	pending  *pendingDelete
	notice   *Notice
}

// New creates a controller with the first configured page size.
func New[T any](cfg Config[T]) *Controller[T] {
	if len(cfg.PageSizes) == 0 {
		cfg.PageSizes = DefaultPageSizes
	}
	return &Controller[T]{
		cfg:      cfg,
		page:     1,
		pageSize: cfg.PageSizes[0],
		selected: make(map[string]struct{}),
	}
}

// Load fetches all items. Success replaces items and the filtered view;
// failure empties both and records the collaborator's message. silent
// suppresses the loading flag only, for background refreshes.
func (c *Controller[T]) Load(ctx context.Context, silent bool) {
	if !silent {
		c.mu.Lock()
		c.loading = true
		c.mu.Unlock()
	}

	items, err := c.cfg.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		// Fail closed: never show stale data next to an error.
		c.items = nil
		c.filtered = nil
		c.notice = &Notice{Kind: NoticeError, Message: err.Error()}
		return
	}
	c.items = items
	c.refilterLocked()
	c.dropStaleSelectionLocked()
}

// SetQuery updates the text filter, recomputes the filtered view and resets
// to the first page. Items are never mutated.
func (c *Controller[T]) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
	c.refilterLocked()
	c.page = 1
}

// Query returns the current filter text.
func (c *Controller[T]) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Items returns the unfiltered item set.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Filtered returns the filtered view.
func (c *Controller[T]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filtered
}

// Loading reports whether a non-silent load is in progress.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// SetPage stores the requested page. The effective page is clamped on
// every read, so deleting the last item of the last page can never leave
// the view pointing past the end.
func (c *Controller[T]) SetPage(p int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = p
}

// SetPageSize picks a size from the configured option set; values outside
// it are ignored. Changing the size resets to the first page.
func (c *Controller[T]) SetPageSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, opt := range c.cfg.PageSizes {
		if opt == size {
			c.pageSize = size
			c.page = 1
			return
		}
	}
}

// PageSize returns the active page size.
func (c *Controller[T]) PageSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageSize
}

// CurrentPage returns the clamped current page.
func (c *Controller[T]) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clampedPageLocked()
}

// TotalPages returns the page count for the filtered view, at least 1.
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPagesLocked()
}

// PageItems returns the slice of the filtered view for the current page.
func (c *Controller[T]) PageItems() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	page := c.clampedPageLocked()
	start := (page - 1) * c.pageSize
	end := start + c.pageSize
	if start >= len(c.filtered) {
		return nil
	}
	if end > len(c.filtered) {
		end = len(c.filtered)
	}
	return c.filtered[start:end]
}

// ToggleSelect adds or removes one id from the selection.
func (c *Controller[T]) ToggleSelect(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
	} else {
		c.selected[id] = struct{}{}
	}
}

// ToggleSelectAll toggles between an empty selection and all ids on the
// current page.
func (c *Controller[T]) ToggleSelectAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.selected) > 0 {
		c.selected = make(map[string]struct{})
		return
	}
	page := c.clampedPageLocked()
	start := (page - 1) * c.pageSize
	end := start + c.pageSize
	if end > len(c.filtered) {
		end = len(c.filtered)
	}
	for i := start; i < end && i >= 0; i++ {
		c.selected[c.cfg.ID(c.filtered[i])] = struct{}{}
	}
}

// SelectedIDs returns the ids bulk actions operate on: the selection
// intersected with the currently filtered items. Ids hidden by the filter
// are never actionable even if still in the set.
func (c *Controller[T]) SelectedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.actionableLocked()
}

// RequestDelete arms the confirmation step for a single item.
func (c *Controller[T]) RequestDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = &pendingDelete{ids: []string{id}, single: true}
}

// RequestDeleteSelected arms the confirmation step for the actionable
// selection. With nothing actionable it does not arm.
func (c *Controller[T]) RequestDeleteSelected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := c.actionableLocked()
	if len(ids) == 0 {
		return
	}
	c.pending = &pendingDelete{ids: ids}
}

// PendingDeleteIDs returns the ids awaiting confirmation, or nil.
func (c *Controller[T]) PendingDeleteIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return nil
	}
	return append([]string(nil), c.pending.ids...)
}

// CancelDelete disarms the confirmation step.
func (c *Controller[T]) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}

// ConfirmDelete performs the armed delete. Success clears the involved
// selection and triggers a silent reload; failure leaves the list state
// untouched. Either way exactly one notice is recorded.
func (c *Controller[T]) ConfirmDelete(ctx context.Context) {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()
	if pending == nil {
		return
	}

	var err error
	if pending.single {
		err = c.cfg.DeleteOne(ctx, pending.ids[0])
	} else {
		err = c.cfg.DeleteMany(ctx, pending.ids)
	}

	if err != nil {
		c.mu.Lock()
		c.notice = &Notice{Kind: NoticeError, Message: err.Error()}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	if pending.single {
		delete(c.selected, pending.ids[0])
	} else {
		c.selected = make(map[string]struct{})
	}
	c.notice = &Notice{Kind: NoticeSuccess, Message: "deleted"}
	c.mu.Unlock()

	c.Load(ctx, true)
}

// Transition runs a resource-specific single-field transition (status
// toggle, mark-as-paid). The displayed state always comes from the next
// authoritative reload, never from an optimistic local write.
func (c *Controller[T]) Transition(ctx context.Context, id string, op func(ctx context.Context, id string) error, successMsg string) {
	if err := op(ctx, id); err != nil {
		c.mu.Lock()
		c.notice = &Notice{Kind: NoticeError, Message: err.Error()}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.notice = &Notice{Kind: NoticeSuccess, Message: successMsg}
	c.mu.Unlock()

	c.Load(ctx, true)
}

// Notice returns the last recorded notice, or nil.
func (c *Controller[T]) Notice() *Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

// ClearNotice drops the last notice once the shell has shown it.
func (c *Controller[T]) ClearNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = nil
}

func (c *Controller[T]) refilterLocked() {
	q := strings.ToLower(strings.TrimSpace(c.query))
	if q == "" {
		c.filtered = c.items
		return
	}
	filtered := make([]T, 0, len(c.items))
	for _, item := range c.items {
		for _, field := range c.cfg.MatchFields(item) {
			if strings.Contains(strings.ToLower(field), q) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	c.filtered = filtered
}

func (c *Controller[T]) dropStaleSelectionLocked() {
	present := make(map[string]struct{}, len(c.items))
	for _, item := range c.items {
		present[c.cfg.ID(item)] = struct{}{}
	}
	for id := range c.selected {
		if _, ok := present[id]; !ok {
			delete(c.selected, id)
		}
	}
}

func (c *Controller[T]) actionableLocked() []string {
	var ids []string
	for _, item := range c.filtered {
		id := c.cfg.ID(item)
		if _, ok := c.selected[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (c *Controller[T]) totalPagesLocked() int {
	if c.pageSize <= 0 {
		return 1
	}
	pages := (len(c.filtered) + c.pageSize - 1) / c.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

func (c *Controller[T]) clampedPageLocked() int {
	page := c.page
	if page < 1 {
		page = 1
	}
	if total := c.totalPagesLocked(); page > total {
		page = total
	}
	return page
}
