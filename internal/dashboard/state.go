package dashboard

import "food-dashboard/internal/model"

// ModalState says which form, if any, is on screen. Only one can be open at a time.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalAdding
	ModalEditing
)

func (m ModalState) String() string {
	switch m {
	case ModalAdding:
		return "adding"
	case ModalEditing:
		return "editing"
	default:
		return "closed"
	}
}

// State is everything the dashboard renders.
type State struct {
	// Items is in server order, with created foods appended.
	Items []model.Food
	// Editing is the food picked for the edit form; nil when nothing is picked.
	Editing *model.Food
	Modal   ModalState
}

// AddModalOpen reports whether the add form is open.
func (s State) AddModalOpen() bool { return s.Modal == ModalAdding }

// EditModalOpen reports whether the edit form is open.
func (s State) EditModalOpen() bool { return s.Modal == ModalEditing }

// Find returns the item with the given id.
func (s State) Find(id string) (model.Food, bool) {
	if i := indexOf(s.Items, id); i >= 0 {
		return s.Items[i], true
	}
	return model.Food{}, false
}

// clone returns a copy that shares no memory with s.
func (s State) clone() State {
	out := State{Modal: s.Modal}
	if s.Items != nil {
		out.Items = make([]model.Food, len(s.Items))
		copy(out.Items, s.Items)
	}
	if s.Editing != nil {
		editing := *s.Editing
		out.Editing = &editing
	}
	return out
}

// Action is a state transition. Every Action is applied through Reduce.
type Action interface {
	isAction()
}

// Loaded replaces the whole list.
type Loaded struct{ Items []model.Food }

// Added records a food the server created.
type Added struct{ Food model.Food }

// Updated records the server's copy of an edited food.
type Updated struct{ Food model.Food }

// Removed records a delete the server acknowledged.
type Removed struct{ ID string }

// Selected picks a food for editing and opens the edit form.
type Selected struct{ Food model.Food }

// AddModalToggled opens or closes the add form.
type AddModalToggled struct{}

// EditModalToggled opens or closes the edit form.
type EditModalToggled struct{}

func (Loaded) isAction()           {}
func (Added) isAction()            {}
func (Updated) isAction()          {}
func (Removed) isAction()          {}
func (Selected) isAction()         {}
func (AddModalToggled) isAction()  {}
func (EditModalToggled) isAction() {}

// Reduce returns the state that follows s after a. It never mutates s.
func Reduce(s State, a Action) State {
	next := s.clone()

	switch a := a.(type) {
	case Loaded:
		next.Items = make([]model.Food, 0, len(a.Items))
		for _, f := range a.Items {
			if indexOf(next.Items, f.ID) >= 0 {
				continue
			}
			next.Items = append(next.Items, f)
		}

	case Added:
		if i := indexOf(next.Items, a.Food.ID); i >= 0 {
			next.Items[i] = a.Food
		} else {
			next.Items = append(next.Items, a.Food)
		}

	case Updated:
		if i := indexOf(next.Items, a.Food.ID); i >= 0 {
			next.Items[i] = a.Food
		}
		if next.Editing != nil && next.Editing.ID == a.Food.ID {
			updated := a.Food
			next.Editing = &updated
		}

	case Removed:
		if i := indexOf(next.Items, a.ID); i >= 0 {
			next.Items = append(next.Items[:i], next.Items[i+1:]...)
		}
		if next.Editing != nil && next.Editing.ID == a.ID {
			next.Editing = nil
			if next.Modal == ModalEditing {
				next.Modal = ModalClosed
			}
		}

	case Selected:
		food := a.Food
		next.Editing = &food
		next.Modal = ModalEditing

	case AddModalToggled:
		if next.Modal == ModalAdding {
			next.Modal = ModalClosed
		} else {
			next.Modal = ModalAdding
		}

	case EditModalToggled:
		if next.Modal == ModalEditing {
			next.Modal = ModalClosed
		} else {
			next.Modal = ModalEditing
		}
	}

	return next
}

func indexOf(items []model.Food, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
