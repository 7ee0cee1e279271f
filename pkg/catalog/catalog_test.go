package catalog

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopDemo(w io.Writer) error { return nil }

func entry(name, category string) Entry {
	return Entry{
		Name:     name,
		Title:    name,
		Category: category,
		Summary:  "summary for " + name,
		Demo:     noopDemo,
	}
}

func TestRegistryRegister(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr error
	}{
		{
			name:  "valid entry",
			entry: entry("observer", CategoryBehavioral),
		},
		{
			name:    "missing name",
			entry:   Entry{Title: "X", Category: CategoryCreational, Summary: "s", Demo: noopDemo},
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "missing demo",
			entry:   Entry{Name: "x", Title: "X", Category: CategoryCreational, Summary: "s"},
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "missing summary",
			entry:   Entry{Name: "x", Title: "X", Category: CategoryCreational, Demo: noopDemo},
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "unknown category",
			entry:   Entry{Name: "x", Title: "X", Category: "architectural", Summary: "s", Demo: noopDemo},
			wantErr: ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tt.entry)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, r.Len())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, r.Len())
			}
		})
	}
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(entry("proxy", CategoryStructural)))

	err := r.Register(entry("proxy", CategoryStructural))
	assert.ErrorIs(t, err, ErrDuplicatePattern)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(entry("builder", CategoryCreational)))

	got, err := r.Get("builder")
	require.NoError(t, err)
	assert.Equal(t, "builder", got.Name)
	assert.Equal(t, CategoryCreational, got.Category)

	_, err = r.Get("monostate")
	assert.ErrorIs(t, err, ErrPatternNotFound)
}

func TestRegistryListOrdersByCategoryThenName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(entry("visitor", CategoryBehavioral)))
	require.NoError(t, r.Register(entry("adapter", CategoryStructural)))
	require.NoError(t, r.Register(entry("builder", CategoryCreational)))
	require.NoError(t, r.Register(entry("abstract-factory", CategoryCreational)))
	require.NoError(t, r.Register(entry("bridge", CategoryStructural)))

	names := r.Names()
	assert.Equal(t, []string{"abstract-factory", "builder", "adapter", "bridge", "visitor"}, names)
}

func TestRegistryByCategory(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(entry("state", CategoryBehavioral)))
	require.NoError(t, r.Register(entry("command", CategoryBehavioral)))
	require.NoError(t, r.Register(entry("facade", CategoryStructural)))

	behavioral, err := r.ByCategory(CategoryBehavioral)
	require.NoError(t, err)
	require.Len(t, behavioral, 2)
	assert.Equal(t, "command", behavioral[0].Name)
	assert.Equal(t, "state", behavioral[1].Name)

	_, err = r.ByCategory("decorational")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{CategoryCreational, CategoryStructural, CategoryBehavioral}, Categories())
	for _, c := range Categories() {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("behavioural"))
}
