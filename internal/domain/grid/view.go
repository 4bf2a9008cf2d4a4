package grid

// Column describes one table column. Render, when set, formats the raw field
// value for display; otherwise the value passes through unchanged.
type Column[T Record] struct {
	Key      string
	Label    string
	Sortable bool
	Render   func(value string, rec T) string
}

// Header is the serialized column descriptor sent to the table control.
type Header struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
}

// Row is one rendered table row, cell values keyed by column.
type Row map[string]string

// Card is one rendered card. The per-view renderer decides what goes where;
// the adapter only carries it.
type Card struct {
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle,omitempty"`
	Status   string            `json:"status,omitempty"`
	Details  map[string]string `json:"details,omitempty"`
}

// ViewState is shared by table and card views. Loading and Error are mutually
// exclusive with data display and short-circuit rendering entirely.
type ViewState struct {
	Loading      bool   `json:"loading"`
	Error        string `json:"error,omitempty"`
	EmptyMessage string `json:"emptyMessage,omitempty"`
}

// TableView is the displayable result of mapping a page through columns.
type TableView struct {
	ViewState
	Headers []Header `json:"headers,omitempty"`
	Rows    []Row    `json:"rows,omitempty"`
}

// CardView is the card-layout counterpart of TableView.
type CardView struct {
	ViewState
	Cards []Card `json:"cards,omitempty"`
}

// Table renders the current page as rows. Each record passes through each
// column renderer exactly once per call. A loading or error state suppresses
// rows and headers; an empty page carries only the empty message.
func Table[T Record](page Page[T], columns []Column[T], state ViewState) TableView {
	view := TableView{ViewState: state}
	if state.Loading || state.Error != "" {
		view.EmptyMessage = ""
		return view
	}
	if len(page.Records) == 0 {
		return view
	}

	view.EmptyMessage = ""
	view.Headers = make([]Header, 0, len(columns))
	for _, col := range columns {
		view.Headers = append(view.Headers, Header{Key: col.Key, Label: col.Label, Sortable: col.Sortable})
	}
	view.Rows = make([]Row, 0, len(page.Records))
	for _, rec := range page.Records {
		row := make(Row, len(columns))
		for _, col := range columns {
			value, _ := rec.Field(col.Key)
			if col.Render != nil {
				value = col.Render(value, rec)
			}
			row[col.Key] = value
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// Cards renders the current page through the caller-supplied card renderer,
// invoked exactly once per visible record. State handling matches Table.
func Cards[T Record](page Page[T], render func(T) Card, state ViewState) CardView {
	view := CardView{ViewState: state}
	if state.Loading || state.Error != "" {
		view.EmptyMessage = ""
		return view
	}
	if len(page.Records) == 0 {
		return view
	}

	view.EmptyMessage = ""
	view.Cards = make([]Card, 0, len(page.Records))
	for _, rec := range page.Records {
		view.Cards = append(view.Cards, render(rec))
	}
	return view
}
