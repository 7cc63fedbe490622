package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Element is one row of the periodic table sample.
type Element struct {
	Position int
	Name     string
	Weight   float64
	Symbol   string
}

// SampleElements are the first ten elements.
var SampleElements = []Element{
	{1, "Hydrogen", 1.0079, "H"},
	{2, "Helium", 4.0026, "He"},
	{3, "Lithium", 6.941, "Li"},
	{4, "Beryllium", 9.0122, "Be"},
	{5, "Boron", 10.811, "B"},
	{6, "Carbon", 12.0107, "C"},
	{7, "Nitrogen", 14.0067, "N"},
	{8, "Oxygen", 15.9994, "O"},
	{9, "Fluorine", 18.9984, "F"},
	{10, "Neon", 20.1797, "Ne"},
}

// ElementsTable renders elements with a bubbles table that follows the pane
// size.
type ElementsTable struct {
	table table.Model
}

// NewElementsTable builds the table over elements.
func NewElementsTable(elements []Element) *ElementsTable {
	rows := make([]table.Row, 0, len(elements))
	for _, e := range elements {
		rows = append(rows, table.Row{
			strconv.Itoa(e.Position),
			e.Name,
			strconv.FormatFloat(e.Weight, 'f', 4, 64),
			e.Symbol,
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(elementColumns(40)),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithStyles(styles),
	)
	return &ElementsTable{table: t}
}

// Rows returns the number of elements shown.
func (e *ElementsTable) Rows() int {
	return len(e.table.Rows())
}

// Render resizes the table and draws it.
func (e *ElementsTable) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	e.table.SetColumns(elementColumns(width))
	e.table.SetWidth(width)
	e.table.SetHeight(height)
	return fit(e.table.View(), width, height)
}

// elementColumns shares width between the four columns. Each column has one
// cell of padding on both sides.
func elementColumns(width int) []table.Column {
	const padding = 2 * 4
	usable := width - padding
	if usable < 4 {
		usable = 4
	}

	position := max(1, usable*10/100)
	weight := max(1, usable*25/100)
	symbol := max(1, usable*15/100)
	name := max(1, usable-position-weight-symbol)

	return []table.Column{
		{Title: "#", Width: position},
		{Title: "Name", Width: name},
		{Title: "Weight", Width: weight},
		{Title: "Symbol", Width: symbol},
	}
}
