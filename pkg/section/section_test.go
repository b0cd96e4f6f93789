package section_test

import (
	"testing"

	"github.com/eishro/merchantaccess/pkg/section"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() []section.Node {
	return []section.Node{
		{ID: "overview", Label: "Overview", Required: true},
		{
			ID:    "orders-group",
			Label: "Orders",
			Children: []section.Node{
				{ID: "orders-all"},
				{ID: "orders-manual"},
			},
		},
		{
			ID: "catalog-group",
			Children: []section.Node{
				{ID: "catalog-products"},
				{ID: "catalog-categories"},
			},
		},
		{ID: "logout", Required: true},
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("depth first in array order", func(t *testing.T) {
		t.Parallel()
		flat := section.Flatten(testTree())
		ids := make([]string, len(flat))
		for i, s := range flat {
			ids[i] = s.ID
		}
		assert.Equal(t, []string{
			"overview",
			"orders-group", "orders-all", "orders-manual",
			"catalog-group", "catalog-products", "catalog-categories",
			"logout",
		}, ids)
	})

	t.Run("nodes without id are dropped", func(t *testing.T) {
		t.Parallel()
		tree := []section.Node{
			{Label: "group with no id", Children: []section.Node{
				{ID: "child-a"},
				{ID: "child-b"},
			}},
		}
		flat := section.Flatten(tree)
		require.Len(t, flat, 2)
		assert.Equal(t, "child-a", flat[0].ID)
		assert.Equal(t, "child-b", flat[1].ID)
	})

	t.Run("empty tree", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, section.Flatten(nil))
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	reg := section.NewRegistry(testTree())

	t.Run("required set", func(t *testing.T) {
		t.Parallel()
		assert.True(t, reg.IsRequired("overview"))
		assert.True(t, reg.IsRequired("logout"))
		assert.False(t, reg.IsRequired("orders-all"))
		assert.False(t, reg.IsRequired("unknown"))

		required := reg.RequiredIDs()
		assert.Len(t, required, 2)
		assert.Contains(t, required, "overview")
		assert.Contains(t, required, "logout")
	})

	t.Run("lookup", func(t *testing.T) {
		t.Parallel()
		assert.True(t, reg.Has("catalog-products"))
		assert.False(t, reg.Has("catalog-unknown"))
		assert.Equal(t, 8, reg.Len())
	})

	t.Run("duplicate ids keep first occurrence", func(t *testing.T) {
		t.Parallel()
		dup := section.NewRegistry([]section.Node{
			{ID: "a", Required: true},
			{ID: "a"},
			{ID: "b"},
		})
		assert.Equal(t, 2, dup.Len())
		assert.True(t, dup.IsRequired("a"))
	})

	t.Run("sections returns a copy", func(t *testing.T) {
		t.Parallel()
		first := reg.Sections()
		first[0].ID = "mutated"
		assert.Equal(t, "overview", reg.Sections()[0].ID)
	})
}

func TestLoadTree(t *testing.T) {
	t.Parallel()

	t.Run("loads from disk", func(t *testing.T) {
		t.Parallel()
		tree, err := section.LoadTree("testdata/sections.yaml")
		require.NoError(t, err)

		reg := section.NewRegistry(tree)
		assert.Equal(t, 9, reg.Len())
		assert.True(t, reg.IsRequired("overview"))
		assert.True(t, reg.Has("orders-abandoned"))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := section.LoadTree("testdata/no-such-file.yaml")
		assert.ErrorIs(t, err, section.ErrInvalidTree)
	})
}

func TestParseTree(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		content := []byte(`
sections:
  - id: overview
    label: Overview
    required: true
  - id: orders-group
    children:
      - id: orders-all
      - id: orders-manual
`)
		tree, err := section.ParseTree(content)
		require.NoError(t, err)
		require.Len(t, tree, 2)
		assert.True(t, tree[0].Required)
		assert.Len(t, tree[1].Children, 2)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := section.ParseTree([]byte("sections: [unclosed"))
		assert.ErrorIs(t, err, section.ErrInvalidTree)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		_, err := section.ParseTree([]byte("sections: []"))
		assert.ErrorIs(t, err, section.ErrEmptyTree)
	})
}
