package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"food-dashboard/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFoodAPI is a mock implementation of FoodAPI.
type MockFoodAPI struct {
	mock.Mock
}

func (m *MockFoodAPI) ListFoods(ctx context.Context) ([]model.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Food), args.Error(1)
}

func (m *MockFoodAPI) CreateFood(ctx context.Context, draft model.FoodDraft) (model.Food, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(model.Food), args.Error(1)
}

func (m *MockFoodAPI) UpdateFood(ctx context.Context, id string, food model.Food) (model.Food, error) {
	args := m.Called(ctx, id, food)
	return args.Get(0).(model.Food), args.Error(1)
}

func (m *MockFoodAPI) DeleteFood(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func float(v float64) *float64 { return &v }

func newLoadedController(t *testing.T, api *MockFoodAPI, items ...model.Food) *Controller {
	t.Helper()

	api.On("ListFoods", mock.Anything).Return(items, nil).Once()

	c := NewController(api, zerolog.Nop())
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestController_InitialState(t *testing.T) {
	s := NewController(new(MockFoodAPI), zerolog.Nop()).State()

	assert.NotNil(t, s.Items)
	assert.Empty(t, s.Items)
	assert.Nil(t, s.Editing)
	assert.Equal(t, ModalClosed, s.Modal)
}

func TestController_Load(t *testing.T) {
	t.Run("Shows server response", func(t *testing.T) {
		api := new(MockFoodAPI)
		c := newLoadedController(t, api, cake)

		s := c.State()
		require.Len(t, s.Items, 1)
		assert.Equal(t, "Cake", s.Items[0].Name)
	})

	t.Run("Failure leaves list empty", func(t *testing.T) {
		api := new(MockFoodAPI)
		api.On("ListFoods", mock.Anything).Return(nil, errors.New("connection refused"))

		c := NewController(api, zerolog.Nop())
		err := c.Load(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "load foods")
		assert.Empty(t, c.State().Items)
	})
}

func TestController_Add(t *testing.T) {
	draft := model.FoodDraft{Name: "Pie", Description: "Apple", Price: 5, Image: "http://img/pie.png"}

	t.Run("Appends created food", func(t *testing.T) {
		api := new(MockFoodAPI)
		c := newLoadedController(t, api, cake)
		api.On("CreateFood", mock.Anything, draft).Return(pie, nil)

		created, err := c.Add(context.Background(), draft)

		require.NoError(t, err)
		assert.Equal(t, pie, created)
		assert.Equal(t, []model.Food{cake, pie}, c.State().Items)
		api.AssertExpectations(t)
	})

	t.Run("Failure leaves state unchanged", func(t *testing.T) {
		api := new(MockFoodAPI)
		c := newLoadedController(t, api, cake)
		api.On("CreateFood", mock.Anything, draft).Return(model.Food{}, errors.New("timeout"))
		before := c.State()

		_, err := c.Add(context.Background(), draft)

		require.Error(t, err)
		assert.Equal(t, before, c.State())
	})
}

func TestController_Update(t *testing.T) {
	t.Run("Merges patch over selection", func(t *testing.T) {
		api := new(MockFoodAPI)
		c := newLoadedController(t, api, cake, pie)

		expected := cake
		expected.Price = 12
		api.On("UpdateFood", mock.Anything, "1", expected).Return(expected, nil)

		c.SelectForEdit(cake)
		updated, err := c.Update(context.Background(), model.FoodPatch{Price: float(12)})

		require.NoError(t, err)
		assert.Equal(t, expected, updated)
		assert.Equal(t, []model.Food{expected, pie}, c.State().Items)
		api.AssertExpectations(t)
	})

	t.Run("Uses the server representation", func(t *testing.T) {
		api := new(MockFoodAPI)
		c := newLoadedController(t, api, cake, pie)

		serverCopy := cake
		serverCopy.Price = 12
		serverCopy.Name = "Cake (normalised)"
		api.On("UpdateFood", mock.Anything, "1", mock.AnythingOfType("model.Food")).Return(serverCopy, nil)

		c.SelectForEdit(cake)
		_, err := c.Update(context.Background(), model.FoodPatch{Price: float(12)})

		require.NoError(t, err)
		assert.Equal(t, "Cake (normalised)", c.State().Items[0].Name)
	})

	t.Run("No selection sends nothing", func(t *testing.T) {
		api := new(MockFoodAPI)
		c := newLoadedController(t, api, cake)

		_, err := c.Update(context.Background(), model.FoodPatch{Price: float(12)})

		assert.ErrorIs(t, err, ErrNoItemSelected)
		api.AssertNotCalled(t, "UpdateFood", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure leaves state unchanged", func(t *testing.T) {
		api := new(MockFoodAPI)
		c := newLoadedController(t, api, cake, pie)
		api.On("UpdateFood", mock.Anything, "1", mock.Anything).Return(model.Food{}, errors.New("502"))

		c.SelectForEdit(cake)
		before := c.State()
		_, err := c.Update(context.Background(), model.FoodPatch{Price: float(12)})

		require.Error(t, err)
		assert.Equal(t, before, c.State())
	})
}

func TestController_Remove(t *testing.T) {
	t.Run("Drops confirmed delete", func(t *testing.T) {
		api := new(MockFoodAPI)
		c := newLoadedController(t, api, cake, pie, pasta)
		api.On("DeleteFood", mock.Anything, "2").Return(nil)

		require.NoError(t, c.Remove(context.Background(), "2"))

		assert.Equal(t, []model.Food{cake, pasta}, c.State().Items)
	})

	t.Run("Failure keeps the item", func(t *testing.T) {
		api := new(MockFoodAPI)
		c := newLoadedController(t, api, cake, pie)
		api.On("DeleteFood", mock.Anything, "2").Return(errors.New("forbidden"))

		err := c.Remove(context.Background(), "2")

		require.Error(t, err)
		assert.Equal(t, []model.Food{cake, pie}, c.State().Items)
	})

	t.Run("No removal before the server answers", func(t *testing.T) {
		api := new(MockFoodAPI)
		c := newLoadedController(t, api, cake, pie)

		api.On("DeleteFood", mock.Anything, "2").Run(func(args mock.Arguments) {
			assert.Len(t, c.State().Items, 2)
		}).Return(nil)

		require.NoError(t, c.Remove(context.Background(), "2"))
		assert.Len(t, c.State().Items, 1)
	})
}

func TestController_Toggles(t *testing.T) {
	c := NewController(new(MockFoodAPI), zerolog.Nop())

	assert.True(t, c.ToggleAddModal().AddModalOpen())
	assert.False(t, c.ToggleAddModal().AddModalOpen())

	s := c.SelectForEdit(pie)
	assert.True(t, s.EditModalOpen())
	assert.Equal(t, pie, *s.Editing)

	s = c.ToggleEditModal()
	assert.False(t, s.EditModalOpen())
	require.NotNil(t, s.Editing, "closing the form keeps the selection")
}

func TestController_StateIsSnapshot(t *testing.T) {
	api := new(MockFoodAPI)
	c := newLoadedController(t, api, cake)

	s := c.State()
	s.Items[0].Name = "Mutated"

	assert.Equal(t, "Cake", c.State().Items[0].Name)
}

// Walks through load, add, edit and delete against one controller.
func TestController_Scenario(t *testing.T) {
	ctx := context.Background()
	api := new(MockFoodAPI)
	c := newLoadedController(t, api, cake)

	require.Len(t, c.State().Items, 1)
	assert.Equal(t, "Cake", c.State().Items[0].Name)

	draft := model.FoodDraft{Name: "Pie", Description: "Apple", Price: 5, Image: "http://img/pie.png"}
	api.On("CreateFood", mock.Anything, draft).Return(pie, nil)
	_, err := c.Add(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, []model.Food{cake, pie}, c.State().Items)

	repriced := cake
	repriced.Price = 12
	api.On("UpdateFood", mock.Anything, "1", repriced).Return(repriced, nil)
	c.SelectForEdit(cake)
	_, err = c.Update(ctx, model.FoodPatch{Price: float(12)})
	require.NoError(t, err)

	s := c.State()
	require.Len(t, s.Items, 2)
	assert.Equal(t, 12.0, s.Items[0].Price)
	assert.Equal(t, pie, s.Items[1])

	api.On("DeleteFood", mock.Anything, "2").Return(nil)
	require.NoError(t, c.Remove(ctx, "2"))
	assert.Equal(t, []model.Food{repriced}, c.State().Items)

	api.AssertExpectations(t)
}

func TestController_ConcurrentAdds(t *testing.T) {
	api := new(MockFoodAPI)
	c := newLoadedController(t, api)

	const n = 20
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		draft := model.FoodDraft{Name: id}
		api.On("CreateFood", mock.Anything, draft).Return(model.Food{ID: id, Name: id, Available: true}, nil)
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := c.Add(context.Background(), model.FoodDraft{Name: string(rune('a' + i))})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	items := c.State().Items
	assert.Len(t, items, n)

	seen := map[string]bool{}
	for _, f := range items {
		assert.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true
	}
}
