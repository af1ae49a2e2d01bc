// Package dashboard keeps the admin panel's food list in step with the catalogue API.
//
// The list only changes after the API confirms an operation. Modal and selection
// state live in the same State value and every change goes through Reduce.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"food-dashboard/internal/model"

	"github.com/rs/zerolog"
)

// ErrNoItemSelected is returned by Update when no food was picked with SelectForEdit.
var ErrNoItemSelected = errors.New("no food selected for editing")

// FoodAPI is the remote catalogue the controller synchronises with.
type FoodAPI interface {
	ListFoods(ctx context.Context) ([]model.Food, error)
	CreateFood(ctx context.Context, draft model.FoodDraft) (model.Food, error)
	UpdateFood(ctx context.Context, id string, food model.Food) (model.Food, error)
	DeleteFood(ctx context.Context, id string) error
}

// Controller mediates between the dashboard forms and the catalogue API.
// It is safe for concurrent use; API calls run without holding the state lock.
type Controller struct {
	api    FoodAPI
	logger zerolog.Logger

	mu    sync.Mutex
	state State
}

// NewController creates a controller with an empty list and every modal closed.
func NewController(api FoodAPI, logger zerolog.Logger) *Controller {
	return &Controller{
		api:    api,
		logger: logger.With().Str("component", "dashboard").Logger(),
		state:  State{Items: []model.Food{}},
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *Controller) dispatch(a Action) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, a)
	return c.state.clone()
}

// Load fetches the catalogue and replaces the list. On failure the list is left as it was.
func (c *Controller) Load(ctx context.Context) error {
	foods, err := c.api.ListFoods(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to load foods")
		return fmt.Errorf("load foods: %w", err)
	}

	c.dispatch(Loaded{Items: foods})
	c.logger.Debug().Int("count", len(foods)).Msg("foods loaded")
	return nil
}

// Add creates draft as an available food and appends the server's copy to the list.
func (c *Controller) Add(ctx context.Context, draft model.FoodDraft) (model.Food, error) {
	created, err := c.api.CreateFood(ctx, draft)
	if err != nil {
		c.logger.Error().Err(err).Str("name", draft.Name).Msg("failed to add food")
		return model.Food{}, fmt.Errorf("add food: %w", err)
	}

	c.dispatch(Added{Food: created})
	c.logger.Info().Str("food_id", created.ID).Str("name", created.Name).Msg("food added")
	return created, nil
}

// Update merges patch over the selected food and saves it under the selected id.
// The list entry whose id matches the response is replaced in place.
func (c *Controller) Update(ctx context.Context, patch model.FoodPatch) (model.Food, error) {
	c.mu.Lock()
	editing := c.state.Editing
	var target model.Food
	if editing != nil {
		target = *editing
	}
	c.mu.Unlock()

	if editing == nil || target.ID == "" {
		c.logger.Warn().Msg("update requested with no food selected")
		return model.Food{}, ErrNoItemSelected
	}

	merged := patch.Apply(target)

	updated, err := c.api.UpdateFood(ctx, target.ID, merged)
	if err != nil {
		c.logger.Error().Err(err).Str("food_id", target.ID).Msg("failed to update food")
		return model.Food{}, fmt.Errorf("update food %s: %w", target.ID, err)
	}

	c.dispatch(Updated{Food: updated})
	c.logger.Info().Str("food_id", updated.ID).Msg("food updated")
	return updated, nil
}

// Remove deletes the food and drops it from the list once the server confirms.
func (c *Controller) Remove(ctx context.Context, id string) error {
	if err := c.api.DeleteFood(ctx, id); err != nil {
		c.logger.Error().Err(err).Str("food_id", id).Msg("failed to remove food")
		return fmt.Errorf("remove food %s: %w", id, err)
	}

	c.dispatch(Removed{ID: id})
	c.logger.Info().Str("food_id", id).Msg("food removed")
	return nil
}

// SelectForEdit picks food for the edit form and opens it.
func (c *Controller) SelectForEdit(food model.Food) State {
	return c.dispatch(Selected{Food: food})
}

// ToggleAddModal opens the add form, or closes it when it is open.
func (c *Controller) ToggleAddModal() State {
	return c.dispatch(AddModalToggled{})
}

// ToggleEditModal opens the edit form, or closes it when it is open.
func (c *Controller) ToggleEditModal() State {
	return c.dispatch(EditModalToggled{})
}
