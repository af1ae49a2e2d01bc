package dashboard

import (
	"testing"

	"food-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cake  = model.Food{ID: "1", Name: "Cake", Description: "Chocolate", Price: 10, Available: true, Image: "http://img/cake.png"}
	pie   = model.Food{ID: "2", Name: "Pie", Description: "Apple", Price: 5, Available: true, Image: "http://img/pie.png"}
	pasta = model.Food{ID: "3", Name: "Pasta", Price: 19.9, Available: false}
)

func TestReduce_Loaded(t *testing.T) {
	s := Reduce(State{Items: []model.Food{pasta}}, Loaded{Items: []model.Food{cake, pie, cake}})

	assert.Equal(t, []model.Food{cake, pie}, s.Items)
}

func TestReduce_Added(t *testing.T) {
	t.Run("Appends after prior entries", func(t *testing.T) {
		s := Reduce(State{Items: []model.Food{cake, pie}}, Added{Food: pasta})

		assert.Equal(t, []model.Food{cake, pie, pasta}, s.Items)
	})

	t.Run("Known id appears once", func(t *testing.T) {
		changed := pie
		changed.Price = 7

		s := Reduce(State{Items: []model.Food{cake, pie}}, Added{Food: changed})

		assert.Equal(t, []model.Food{cake, changed}, s.Items)
	})
}

func TestReduce_Updated(t *testing.T) {
	cheaper := cake
	cheaper.Price = 8

	t.Run("Replaces only the matching entry", func(t *testing.T) {
		s := Reduce(State{Items: []model.Food{cake, pie, pasta}}, Updated{Food: cheaper})

		assert.Equal(t, []model.Food{cheaper, pie, pasta}, s.Items)
	})

	t.Run("Unknown id is ignored", func(t *testing.T) {
		ghost := model.Food{ID: "404", Name: "Ghost"}

		s := Reduce(State{Items: []model.Food{cake, pie}}, Updated{Food: ghost})

		assert.Equal(t, []model.Food{cake, pie}, s.Items)
	})

	t.Run("Refreshes the selection", func(t *testing.T) {
		editing := cake
		s := Reduce(State{Items: []model.Food{cake}, Editing: &editing, Modal: ModalEditing}, Updated{Food: cheaper})

		require.NotNil(t, s.Editing)
		assert.Equal(t, cheaper, *s.Editing)
		assert.Equal(t, ModalEditing, s.Modal)
	})
}

func TestReduce_Removed(t *testing.T) {
	t.Run("Drops only the matching entry", func(t *testing.T) {
		s := Reduce(State{Items: []model.Food{cake, pie, pasta}}, Removed{ID: "2"})

		assert.Equal(t, []model.Food{cake, pasta}, s.Items)
	})

	t.Run("Unknown id is ignored", func(t *testing.T) {
		s := Reduce(State{Items: []model.Food{cake}}, Removed{ID: "404"})

		assert.Equal(t, []model.Food{cake}, s.Items)
	})

	t.Run("Removing the selected food closes the edit form", func(t *testing.T) {
		editing := pie
		s := Reduce(State{Items: []model.Food{cake, pie}, Editing: &editing, Modal: ModalEditing}, Removed{ID: "2"})

		assert.Nil(t, s.Editing)
		assert.Equal(t, ModalClosed, s.Modal)
	})
}

func TestReduce_Selected(t *testing.T) {
	s := Reduce(State{Modal: ModalAdding}, Selected{Food: cake})

	require.NotNil(t, s.Editing)
	assert.Equal(t, cake, *s.Editing)
	assert.True(t, s.EditModalOpen())
	assert.False(t, s.AddModalOpen())
}

func TestReduce_ModalToggles(t *testing.T) {
	tests := []struct {
		name     string
		start    ModalState
		action   Action
		expected ModalState
	}{
		{name: "Open add", start: ModalClosed, action: AddModalToggled{}, expected: ModalAdding},
		{name: "Close add", start: ModalAdding, action: AddModalToggled{}, expected: ModalClosed},
		{name: "Add replaces edit", start: ModalEditing, action: AddModalToggled{}, expected: ModalAdding},
		{name: "Open edit", start: ModalClosed, action: EditModalToggled{}, expected: ModalEditing},
		{name: "Close edit", start: ModalEditing, action: EditModalToggled{}, expected: ModalClosed},
		{name: "Edit replaces add", start: ModalAdding, action: EditModalToggled{}, expected: ModalEditing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(State{Modal: tt.start}, tt.action)

			assert.Equal(t, tt.expected, s.Modal)
			assert.False(t, s.AddModalOpen() && s.EditModalOpen())
		})
	}
}

func TestReduce_ToggleAddTwiceRestoresAddModal(t *testing.T) {
	for _, start := range []ModalState{ModalClosed, ModalAdding, ModalEditing} {
		s := State{Modal: start}

		twice := Reduce(Reduce(s, AddModalToggled{}), AddModalToggled{})

		assert.Equal(t, s.AddModalOpen(), twice.AddModalOpen(), "start=%s", start)
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	editing := cake
	original := State{Items: []model.Food{cake, pie}, Editing: &editing}

	changed := cake
	changed.Name = "Changed"
	_ = Reduce(original, Updated{Food: changed})
	_ = Reduce(original, Removed{ID: "1"})

	assert.Equal(t, []model.Food{cake, pie}, original.Items)
	assert.Equal(t, "Cake", original.Editing.Name)
}

func TestState_Find(t *testing.T) {
	s := State{Items: []model.Food{cake, pie}}

	found, ok := s.Find("2")
	assert.True(t, ok)
	assert.Equal(t, pie, found)

	_, ok = s.Find("404")
	assert.False(t, ok)
}

func TestModalState_String(t *testing.T) {
	assert.Equal(t, "closed", ModalClosed.String())
	assert.Equal(t, "adding", ModalAdding.String())
	assert.Equal(t, "editing", ModalEditing.String())
}
