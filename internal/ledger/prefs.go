package ledger

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pocketledger/pocketledger/internal/common"
	"github.com/pocketledger/pocketledger/internal/model"
)

// PrefsPersister is the storage surface for user preferences.
type PrefsPersister interface {
	LoadTheme(ctx context.Context) (model.ThemeMode, error)
	SaveTheme(ctx context.Context, mode model.ThemeMode) error
	LoadQuickAddCategoryIDs(ctx context.Context) ([]string, error)
	SaveQuickAddCategoryIDs(ctx context.Context, ids []string) error
}

// Preferences owns the theme and quick-add settings, following the same
// load/mutate/write-through pattern as Store.
type Preferences struct {
	persist  PrefsPersister
	theme    model.ThemeMode
	quickAdd []string
	mu       sync.Mutex
}

// NewPreferences creates a preferences store with the default theme and an
// empty quick-add list.
func NewPreferences(persist PrefsPersister) *Preferences {
	return &Preferences{
		persist:  persist,
		theme:    model.ThemeLight,
		quickAdd: []string{},
	}
}

// Load hydrates both preferences from persistence. Unlike the seeded
// collections, the theme always takes the loaded value: the adapter already
// substitutes the light default for absent or unknown tokens.
func (p *Preferences) Load(ctx context.Context) error {
	var (
		theme    model.ThemeMode
		quickAdd []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		theme, err = p.persist.LoadTheme(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		quickAdd, err = p.persist.LoadQuickAddCategoryIDs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = theme
	if len(quickAdd) > 0 {
		p.quickAdd = quickAdd
	}
	return nil
}

// Theme returns the current theme preference.
func (p *Preferences) Theme() model.ThemeMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}

// SetTheme updates and persists the theme preference.
func (p *Preferences) SetTheme(ctx context.Context, mode model.ThemeMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: unknown theme %q", common.ErrInvalidInput, mode)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = mode
	if err := p.persist.SaveTheme(ctx, mode); err != nil {
		common.LogWarn("failed to persist theme", common.Fields{"error": err})
	}
	return nil
}

// QuickAddCategoryIDs returns a copy of the quick-add category id list.
func (p *Preferences) QuickAddCategoryIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.quickAdd))
	copy(out, p.quickAdd)
	return out
}

// SetQuickAddCategoryIDs replaces the whole quick-add list and persists it.
func (p *Preferences) SetQuickAddCategoryIDs(ctx context.Context, ids []string) {
	if ids == nil {
		ids = []string{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.quickAdd = ids
	if err := p.persist.SaveQuickAddCategoryIDs(ctx, ids); err != nil {
		common.LogWarn("failed to persist quick-add list", common.Fields{"error": err})
	}
}

// ToggleQuickAddCategory adds the id when absent and removes it when
// present, returning whether it is now enabled.
func (p *Preferences) ToggleQuickAddCategory(ctx context.Context, id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, existing := range p.quickAdd {
		if existing == id {
			p.quickAdd = append(p.quickAdd[:i:i], p.quickAdd[i+1:]...)
			p.saveQuickAddLocked(ctx)
			return false
		}
	}
	p.quickAdd = append(p.quickAdd, id)
	p.saveQuickAddLocked(ctx)
	return true
}

func (p *Preferences) saveQuickAddLocked(ctx context.Context) {
	if err := p.persist.SaveQuickAddCategoryIDs(ctx, p.quickAdd); err != nil {
		common.LogWarn("failed to persist quick-add list", common.Fields{"error": err})
	}
}
