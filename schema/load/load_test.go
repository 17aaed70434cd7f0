package load_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoistdb/hoist"
	"github.com/hoistdb/hoist/schema/load"
)

const bookstoreDoc = `
types:
  - name: Author
    navigations:
      - {name: Books, target: Book, rel: to-many}
  - name: Book
    navigations:
      - {name: Reviews, target: Review, rel: to-many}
      - {name: Tags, target: Tag, rel: many-to-many}
  - name: Review
  - name: Tag
    navigations:
      - {name: Books, target: Book, rel: many-to-many, ref: Tags}
`

// TestDecode tests decoding and resolving a full document.
func TestDecode(t *testing.T) {
	t.Parallel()

	g, err := load.Decode(strings.NewReader(bookstoreDoc))
	require.NoError(t, err)

	paths, err := hoist.ResolvePaths(g, "Author")
	require.NoError(t, err)
	assert.Equal(t, []string{"Books", "Books.Reviews", "Books.Tags"}, paths)

	book, err := g.Lookup("Book")
	require.NoError(t, err)
	navs := book.Navigations()
	require.Len(t, navs, 2)
	assert.Equal(t, hoist.O2M, navs[0].Rel())
	assert.Equal(t, hoist.M2M, navs[1].Rel())
	require.NotNil(t, navs[1].Inverse())
	assert.Equal(t, "Books", navs[1].Inverse().Name())
}

// TestDecodeShortRels tests the o2o/o2m/m2m spellings and the to-many
// default.
func TestDecodeShortRels(t *testing.T) {
	t.Parallel()

	doc := `
types:
  - name: User
    navigations:
      - {name: Profile, target: Profile, rel: o2o}
      - {name: Posts, target: Post}
      - {name: Groups, target: Group, rel: m2m}
  - name: Profile
  - name: Post
  - name: Group
`
	g, err := load.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	user, err := g.Lookup("User")
	require.NoError(t, err)
	navs := user.Navigations()
	require.Len(t, navs, 3)
	assert.Equal(t, hoist.O2O, navs[0].Rel())
	assert.Equal(t, hoist.O2M, navs[1].Rel())
	assert.Equal(t, hoist.M2M, navs[2].Rel())
}

// TestDecodeErrors tests decode and validation failures.
func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{
			name: "bad_yaml",
			doc:  "types: [",
			msg:  "decode schema document",
		},
		{
			name: "unknown_field",
			doc:  "kinds: []",
			msg:  "decode schema document",
		},
		{
			name: "empty_type_name",
			doc:  "types:\n  - navigations: []",
			msg:  "type with empty name",
		},
		{
			name: "empty_nav_name",
			doc:  "types:\n  - name: User\n    navigations:\n      - {target: Post}",
			msg:  "navigation with empty name",
		},
		{
			name: "bad_rel",
			doc:  "types:\n  - name: User\n    navigations:\n      - {name: Posts, target: Post, rel: has-many}",
			msg:  `unknown rel "has-many"`,
		},
		{
			name: "unknown_target",
			doc:  "types:\n  - name: User\n    navigations:\n      - {name: Posts, target: Post}",
			msg:  "unknown target type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := load.Decode(strings.NewReader(tt.doc))
			assert.Nil(t, g)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

// TestFile tests reading a document from disk.
func TestFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bookstoreDoc), 0o644))

	g, err := load.File(path)
	require.NoError(t, err)
	_, err = g.Lookup("Author")
	assert.NoError(t, err)

	_, err = load.File(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
