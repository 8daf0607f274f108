// Package browse models one storefront browsing session as an explicit state
// machine: a single snapshot with pure transition functions per user action
// instead of scattered mutable view fields. Each transition that triggers a
// catalog query issues a monotonic token for its view; results may only be
// delivered with the newest token, so a slow superseded request can never
// overwrite newer data (last user intent wins).
package browse

import "springshop/models"

// View is the storefront's current screen.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewCategory  View = "category"
	ViewSearch    View = "search"
)

// Token identifies one issued in-flight query for a view.
type Token struct {
	view View
	seq  uint64
}

// State is a snapshot of one browsing session. Transition methods take the
// receiver by value and return the successor state; a State is never mutated
// in place.
type State struct {
	View             View                 `json:"view"`
	SelectedCategory *models.Category     `json:"selectedCategory,omitempty"`
	Filters          models.ProductFilter `json:"filters"`
	CategoryProducts []models.Product     `json:"categoryProducts"`
	SearchResults    []models.Product     `json:"searchResults"`

	categorySeq uint64
	searchSeq   uint64
}

// NewState returns the initial dashboard state.
func NewState() State {
	return State{View: ViewDashboard}
}

// SelectCategory switches to the category view, resets the filters and issues
// a token for the category-products query this action triggers. Any earlier
// in-flight category query is superseded.
func (s State) SelectCategory(cat models.Category) (State, Token) {
	s.View = ViewCategory
	s.SelectedCategory = &cat
	s.Filters = models.ProductFilter{}
	s.categorySeq++
	return s, Token{view: ViewCategory, seq: s.categorySeq}
}

// ApplyFilters switches to the search view and issues a token for the search
// query. A category selected beforehand scopes the filter unless the filter
// names its own category.
func (s State) ApplyFilters(f models.ProductFilter) (State, Token) {
	if f.CategoryID == nil && s.SelectedCategory != nil {
		id := s.SelectedCategory.CategoryID
		f.CategoryID = &id
	}
	s.View = ViewSearch
	s.Filters = f
	s.searchSeq++
	return s, Token{view: ViewSearch, seq: s.searchSeq}
}

// GoHome returns to the dashboard, clearing the selection and filters. Both
// sequence counters advance so results still in flight for the abandoned
// views are discarded on delivery.
func (s State) GoHome() State {
	s.View = ViewDashboard
	s.SelectedCategory = nil
	s.Filters = models.ProductFilter{}
	s.categorySeq++
	s.searchSeq++
	return s
}

// DeliverCategoryProducts applies a finished category query. The results are
// dropped unless the token is still the newest one issued for the category
// view; the second return value reports whether they were applied.
func (s State) DeliverCategoryProducts(tok Token, products []models.Product) (State, bool) {
	if tok.view != ViewCategory || tok.seq != s.categorySeq {
		return s, false
	}
	s.CategoryProducts = products
	return s, true
}

// DeliverSearchResults applies a finished search query under the same
// newest-token rule.
func (s State) DeliverSearchResults(tok Token, products []models.Product) (State, bool) {
	if tok.view != ViewSearch || tok.seq != s.searchSeq {
		return s, false
	}
	s.SearchResults = products
	return s, true
}
