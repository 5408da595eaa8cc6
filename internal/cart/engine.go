package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/wildmart/wildmart-go/internal/api"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
	"github.com/wildmart/wildmart-go/pkg/logger"
	"go.uber.org/multierr"
)

// ErrRemoveConfirmationRequired routes a quantity-zero update to the
// remove-confirmation flow instead of mutating anything. The caller shows
// the dialog and invokes Remove on confirm.
var ErrRemoveConfirmationRequired = pkgerrors.New(pkgerrors.CodeValidation, "removal must be confirmed")

type cartAPI interface {
	GetCart(ctx context.Context) (*api.CartPayload, error)
	UpdateCartItem(ctx context.Context, itemID int64, quantity int) error
	RemoveCartItem(ctx context.Context, itemID int64) error
}

// Engine owns the cart view state: the mirrored line items, the selection
// set, and per-line optimistic-update states. Methods are driven from a
// single goroutine, matching the event-loop model of the app; only
// BulkRemove fans out internally and joins before returning.
type Engine struct {
	api cartAPI
	log *logger.Logger

	items     []Item
	selection Selection
	states    map[int64]LineState
}

// NewEngine builds the cart engine.
func NewEngine(client cartAPI, log *logger.Logger) (*Engine, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api client is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Engine{
		api:       client,
		log:       log,
		selection: NewSelection(),
		states:    make(map[int64]LineState),
	}, nil
}

// Fetch replaces the mirrored cart from the API. On failure the prior
// state is kept and nothing is retried; the user reloads. A successful
// fetch prunes the selection of ids that vanished or went out of stock.
func (e *Engine) Fetch(ctx context.Context) error {
	payload, err := e.api.GetCart(ctx)
	if err != nil {
		e.log.Error(ctx, "fetch cart failed", err)
		return err
	}
	e.items = ItemsFromPayload(payload)
	e.states = make(map[int64]LineState)
	e.pruneSelection()
	return nil
}

// Items returns the mirrored cart lines in server order.
func (e *Engine) Items() []Item {
	return e.items
}

// Item looks up one line by id.
func (e *Engine) Item(id int64) (Item, bool) {
	for _, item := range e.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// InStockItems returns the lines with available stock, in order.
func (e *Engine) InStockItems() []Item {
	items := make([]Item, 0, len(e.items))
	for _, item := range e.items {
		if !OutOfStock(item) {
			items = append(items, item)
		}
	}
	return items
}

// OutOfStockItems returns the unavailable lines, in order.
func (e *Engine) OutOfStockItems() []Item {
	items := make([]Item, 0)
	for _, item := range e.items {
		if OutOfStock(item) {
			items = append(items, item)
		}
	}
	return items
}

// Grouped partitions all lines by seller.
func (e *Engine) Grouped() []SellerGroup {
	return GroupBySeller(e.items)
}

// GroupedInStock partitions only the in-stock lines by seller.
func (e *Engine) GroupedInStock() []SellerGroup {
	return GroupBySeller(e.InStockItems())
}

// LineState reports the optimistic-update state of a line.
func (e *Engine) LineState(id int64) LineState {
	if state, ok := e.states[id]; ok {
		return state
	}
	return StateClean
}

// CanIncrement reports whether the line's quantity may grow. The increment
// control is disabled at the stock bound; quantities are never clamped
// silently.
func (e *Engine) CanIncrement(id int64) bool {
	item, ok := e.Item(id)
	if !ok || OutOfStock(item) {
		return false
	}
	return item.Quantity < item.Product.QuantityAvailable
}

// UpdateQuantity applies an optimistic local patch and persists it.
// Zero routes to the remove-confirmation flow, negatives are a no-op.
// On persistence failure the optimistic patch is discarded by re-fetching
// the authoritative cart.
func (e *Engine) UpdateQuantity(ctx context.Context, id int64, newQuantity int) error {
	if newQuantity < 0 {
		return nil
	}
	if newQuantity == 0 {
		return ErrRemoveConfirmationRequired
	}

	idx := e.indexOf(id)
	if idx < 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	item := e.items[idx]
	if newQuantity > item.Product.QuantityAvailable {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("only %d available in stock", item.Product.QuantityAvailable))
	}

	previous := item.Quantity
	e.items[idx].Quantity = newQuantity
	e.states[id] = StatePending

	if err := e.api.UpdateCartItem(ctx, id, newQuantity); err != nil {
		e.log.Error(ctx, "persist quantity failed, reconciling from server", err)
		if fetchErr := e.Fetch(ctx); fetchErr != nil {
			// Server truth is unreachable; at least undo the local patch.
			if idx := e.indexOf(id); idx >= 0 {
				e.items[idx].Quantity = previous
			}
		}
		e.states[id] = StateRolledBack
		return err
	}

	e.states[id] = StateConfirmed
	return nil
}

// Remove deletes one line after the user confirmed, then refreshes.
func (e *Engine) Remove(ctx context.Context, id int64) error {
	if err := e.api.RemoveCartItem(ctx, id); err != nil {
		return err
	}
	e.selection.remove(id)
	return e.Fetch(ctx)
}

// ToggleSelect flips one line's membership in the selection. Out-of-stock
// lines are rejected; their ids must never enter the selection set.
func (e *Engine) ToggleSelect(id int64) error {
	item, ok := e.Item(id)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	if OutOfStock(item) {
		return pkgerrors.New(pkgerrors.CodeValidation, "out-of-stock items cannot be selected")
	}
	if e.selection.Has(id) {
		e.selection.remove(id)
	} else {
		e.selection.add(id)
	}
	return nil
}

// SelectAll toggles: when the selection already equals the full in-stock
// id set it clears; otherwise it replaces the selection with that set.
func (e *Engine) SelectAll() {
	inStock := e.inStockIDs()
	if e.selection.Equals(inStock) {
		e.selection = NewSelection()
		return
	}
	e.selection = NewSelection()
	for _, id := range inStock {
		e.selection.add(id)
	}
}

// SelectAllForSeller toggles the in-stock lines of one seller group: all
// selected clears them, anything else selects them all.
func (e *Engine) SelectAllForSeller(sellerKey string) {
	ids := make([]int64, 0)
	for _, item := range e.items {
		if item.Product.SellerKey == sellerKey && !OutOfStock(item) {
			ids = append(ids, item.ID)
		}
	}
	allSelected := len(ids) > 0
	for _, id := range ids {
		if !e.selection.Has(id) {
			allSelected = false
			break
		}
	}
	for _, id := range ids {
		if allSelected {
			e.selection.remove(id)
		} else {
			e.selection.add(id)
		}
	}
}

// Selected returns the selected ids in ascending order.
func (e *Engine) Selected() []int64 {
	return e.selection.IDs()
}

// ClearSelection empties the selection set.
func (e *Engine) ClearSelection() {
	e.selection = NewSelection()
}

// BulkRemove issues one remove per selected id concurrently and joins on
// all of them. The selection is cleared only after every request succeeds;
// any failure surfaces one aggregate error and leaves the selection
// untouched. The cart is refreshed either way so the view shows server
// truth.
func (e *Engine) BulkRemove(ctx context.Context) error {
	ids := e.selection.IDs()
	if len(ids) == 0 {
		return nil
	}

	failures := make([]error, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(slot int, itemID int64) {
			defer wg.Done()
			if err := e.api.RemoveCartItem(ctx, itemID); err != nil {
				failures[slot] = fmt.Errorf("item %d: %w", itemID, err)
			}
		}(i, id)
	}
	wg.Wait()

	combined := multierr.Combine(failures...)
	if combined != nil {
		e.log.Error(ctx, "bulk remove partially failed", combined)
		if err := e.Fetch(ctx); err != nil {
			e.log.Warn(ctx, "cart refresh after failed bulk remove also failed")
		}
		return pkgerrors.Wrap(pkgerrors.CodeBusiness, combined, "some items could not be removed")
	}

	e.selection = NewSelection()
	return e.Fetch(ctx)
}

// EligibleCheckoutSelection resolves what checkout operates on: the
// selection filtered to in-stock ids, or all in-stock ids when the
// filtered selection is empty. With no in-stock items at all checkout is
// refused.
func (e *Engine) EligibleCheckoutSelection() ([]int64, error) {
	eligible := make([]int64, 0, e.selection.Len())
	for _, item := range e.items {
		if OutOfStock(item) {
			continue
		}
		if e.selection.Has(item.ID) {
			eligible = append(eligible, item.ID)
		}
	}
	if len(eligible) == 0 {
		eligible = e.inStockIDs()
	}
	if len(eligible) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no in-stock items to check out")
	}
	return eligible, nil
}

// AssertSingleSeller refuses a checkout selection spanning more than one
// distinct seller. One order can only contain one seller's items.
func (e *Engine) AssertSingleSeller(ids []int64) error {
	sellers := make(map[string]struct{})
	for _, id := range ids {
		if item, ok := e.Item(id); ok {
			sellers[item.Product.SellerKey] = struct{}{}
		}
	}
	if len(sellers) > 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "an order can only contain items from a single seller")
	}
	return nil
}

// CheckoutItems resolves the eligible selection, enforces the
// single-seller rule, and returns the items to hand to the checkout view.
func (e *Engine) CheckoutItems() ([]Item, error) {
	ids, err := e.EligibleCheckoutSelection()
	if err != nil {
		return nil, err
	}
	if err := e.AssertSingleSeller(ids); err != nil {
		return nil, err
	}
	selected := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}
	items := make([]Item, 0, len(ids))
	for _, item := range e.items {
		if _, ok := selected[item.ID]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// Total sums the in-stock lines only.
func (e *Engine) Total() decimal.Decimal {
	return Total(e.items)
}

// SelectedTotal sums the selected in-stock lines; zero for an empty
// selection.
func (e *Engine) SelectedTotal() decimal.Decimal {
	return SelectedTotal(e.items, e.selection)
}

func (e *Engine) indexOf(id int64) int {
	for i, item := range e.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) inStockIDs() []int64 {
	ids := make([]int64, 0, len(e.items))
	for _, item := range e.items {
		if !OutOfStock(item) {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

func (e *Engine) pruneSelection() {
	pruned := NewSelection()
	for _, item := range e.items {
		if !OutOfStock(item) && e.selection.Has(item.ID) {
			pruned.add(item.ID)
		}
	}
	e.selection = pruned
}
