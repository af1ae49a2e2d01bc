package tui

import (
	"fmt"
	"strconv"
	"strings"

	"food-dashboard/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldDescription
	fieldPrice
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Description", "Price", "Image URL"}

// foodForm backs both the add and the edit modal.
type foodForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	// original is the food being edited; nil for the add form.
	original  *model.Food
	available bool
	err       string
}

func newFoodForm(original *model.Food) foodForm {
	var f foodForm
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.Width = 48
		in.Placeholder = fieldLabels[i]
		f.inputs[i] = in
	}
	f.inputs[fieldPrice].CharLimit = 12

	if original != nil {
		food := *original
		f.original = &food
		f.inputs[fieldName].SetValue(food.Name)
		f.inputs[fieldDescription].SetValue(food.Description)
		f.inputs[fieldPrice].SetValue(strconv.FormatFloat(food.Price, 'f', -1, 64))
		f.inputs[fieldImage].SetValue(food.Image)
		f.available = food.Available
	}

	f.inputs[fieldName].Focus()
	return f
}

func (f *foodForm) value(field int) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

func (f *foodForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

func (f *foodForm) next() { f.setFocus(f.focus + 1) }
func (f *foodForm) prev() { f.setFocus(f.focus - 1) }

// toggleAvailable flips availability on the edit form. It reports false on the add form.
func (f *foodForm) toggleAvailable() bool {
	if f.original == nil {
		return false
	}
	f.available = !f.available
	return true
}

func (f *foodForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *foodForm) price() (float64, error) {
	raw := strings.Replace(f.value(fieldPrice), ",", ".", 1)
	if raw == "" {
		return 0, nil
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("price %q is not a number", f.value(fieldPrice))
	}
	if price < 0 {
		return 0, fmt.Errorf("price must not be negative")
	}
	return price, nil
}

// draft reads the add form.
func (f *foodForm) draft() (model.FoodDraft, error) {
	if f.value(fieldName) == "" {
		return model.FoodDraft{}, fmt.Errorf("name is required")
	}
	price, err := f.price()
	if err != nil {
		return model.FoodDraft{}, err
	}
	return model.FoodDraft{
		Name:        f.value(fieldName),
		Description: f.value(fieldDescription),
		Price:       price,
		Image:       f.value(fieldImage),
	}, nil
}

// patch reads the edit form, keeping only the fields that differ from the original.
func (f *foodForm) patch() (model.FoodPatch, error) {
	var p model.FoodPatch
	if f.original == nil {
		return p, fmt.Errorf("no food selected")
	}
	if f.value(fieldName) == "" {
		return p, fmt.Errorf("name is required")
	}
	price, err := f.price()
	if err != nil {
		return p, err
	}

	if name := f.value(fieldName); name != f.original.Name {
		p.Name = &name
	}
	if desc := f.value(fieldDescription); desc != f.original.Description {
		p.Description = &desc
	}
	if price != f.original.Price {
		p.Price = &price
	}
	if img := f.value(fieldImage); img != f.original.Image {
		p.Image = &img
	}
	if f.available != f.original.Available {
		available := f.available
		p.Available = &available
	}
	return p, nil
}
