package catalog

// State holds the list view's query state between evaluations. Changing
// either filter resets the current page to 1, so a narrower result set can
// never leave the view stranded on a page past the end.
type State struct {
	name       string
	categoryID int
	page       int
}

func NewState() *State {
	return &State{page: 1}
}

// SetNameFilter updates the name keyword. A changed keyword resets the
// current page.
func (s *State) SetNameFilter(name string) {
	if name != s.name {
		s.name = name
		s.page = 1
	}
}

// SetCategoryFilter updates the category filter (0 clears it). A changed
// filter resets the current page.
func (s *State) SetCategoryFilter(id int) {
	if id != s.categoryID {
		s.categoryID = id
		s.page = 1
	}
}

// SetPage navigates to the given 1-indexed page. Values below 1 are ignored.
func (s *State) SetPage(page int) {
	if page >= 1 {
		s.page = page
	}
}

func (s *State) Page() int {
	return s.page
}

// Query materializes the current state for the engine.
func (s *State) Query(pageSize int) Query {
	return Query{
		Name:       s.name,
		CategoryID: s.categoryID,
		Page:       s.page,
		PageSize:   pageSize,
	}
}
