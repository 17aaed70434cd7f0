package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoistdb/hoist"
	"github.com/hoistdb/hoist/schema"
)

// TestBuilderBuild tests graph construction and navigation ordering.
func TestBuilderBuild(t *testing.T) {
	t.Parallel()

	b := schema.New()
	b.Type("Book").ManyToMany("Tags", "Tag")
	b.Type("Book").ToMany("Reviews", "Review")
	b.Type("Book").ToOne("Author", "Author")
	b.Type("Tag")
	b.Type("Review")
	b.Type("Author")
	g, err := b.Build()
	require.NoError(t, err)

	typ, err := g.Lookup("Book")
	require.NoError(t, err)
	assert.Equal(t, "Book", typ.Name())

	// Regular navigations precede M2M ones regardless of declaration
	// order; within each group declaration order holds.
	navs := typ.Navigations()
	require.Len(t, navs, 3)
	assert.Equal(t, "Reviews", navs[0].Name())
	assert.Equal(t, hoist.O2M, navs[0].Rel())
	assert.Equal(t, "Author", navs[1].Name())
	assert.Equal(t, hoist.O2O, navs[1].Rel())
	assert.Equal(t, "Tags", navs[2].Name())
	assert.Equal(t, hoist.M2M, navs[2].Rel())
}

// TestBuilderTypeIdempotent tests that re-declaring a type returns the
// same builder.
func TestBuilderTypeIdempotent(t *testing.T) {
	t.Parallel()

	b := schema.New()
	first := b.Type("User")
	second := b.Type("User")
	assert.Same(t, first, second)

	g, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, g.Types(), 1)
}

// TestBuilderInverseLinking tests that Ref pairs both directions.
func TestBuilderInverseLinking(t *testing.T) {
	t.Parallel()

	b := schema.New()
	b.Type("Book").ManyToMany("Tags", "Tag")
	b.Type("Tag").ManyToMany("Books", "Book").Ref("Tags")
	g, err := b.Build()
	require.NoError(t, err)

	book, err := g.Lookup("Book")
	require.NoError(t, err)
	tag, err := g.Lookup("Tag")
	require.NoError(t, err)

	tags := book.Navigations()[0]
	books := tag.Navigations()[0]
	require.NotNil(t, tags.Inverse())
	require.NotNil(t, books.Inverse())
	assert.Equal(t, "Books", tags.Inverse().Name())
	assert.Equal(t, "Tags", books.Inverse().Name())
}

// TestBuilderNoInverseInference tests that structurally symmetric edges
// are not paired unless declared.
func TestBuilderNoInverseInference(t *testing.T) {
	t.Parallel()

	b := schema.New()
	b.Type("User").ToMany("Posts", "Post")
	b.Type("Post").ToOne("Writer", "User")
	g, err := b.Build()
	require.NoError(t, err)

	user, err := g.Lookup("User")
	require.NoError(t, err)
	post, err := g.Lookup("Post")
	require.NoError(t, err)
	assert.Nil(t, user.Navigations()[0].Inverse())
	assert.Nil(t, post.Navigations()[0].Inverse())
}

// TestBuilderValidation tests the Build failure modes.
func TestBuilderValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() *schema.Builder
		msg   string
	}{
		{
			name: "duplicate_navigation",
			build: func() *schema.Builder {
				b := schema.New()
				b.Type("User").ToMany("Posts", "Post")
				b.Type("User").ToOne("Posts", "Post")
				b.Type("Post")
				return b
			},
			msg: "duplicate navigation name",
		},
		{
			name: "unknown_target",
			build: func() *schema.Builder {
				b := schema.New()
				b.Type("User").ToMany("Posts", "Post")
				return b
			},
			msg: "unknown target type",
		},
		{
			name: "unknown_ref",
			build: func() *schema.Builder {
				b := schema.New()
				b.Type("User").ToMany("Posts", "Post")
				b.Type("Post").ToOne("Writer", "User").Ref("Articles")
				return b
			},
			msg: "ref to unknown navigation",
		},
		{
			name: "ref_wrong_direction",
			build: func() *schema.Builder {
				b := schema.New()
				b.Type("User").ToMany("Posts", "Post")
				b.Type("Post").ToMany("Comments", "Comment")
				b.Type("Comment").ToOne("Writer", "User").Ref("Comments")
				return b
			},
			msg: "does not point back",
		},
		{
			name: "ref_self",
			build: func() *schema.Builder {
				b := schema.New()
				b.Type("Node").ToOne("Next", "Node").Ref("Next")
				return b
			},
			msg: "cannot be its own inverse",
		},
		{
			name: "ref_already_paired",
			build: func() *schema.Builder {
				b := schema.New()
				b.Type("User").ToMany("Posts", "Post")
				b.Type("Post").ToOne("Writer", "User").Ref("Posts")
				b.Type("Post").ToOne("Editor", "User").Ref("Posts")
				return b
			},
			msg: "already paired",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := tt.build().Build()
			assert.Nil(t, g)
			require.Error(t, err)
			assert.True(t, hoist.IsSchemaError(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

// TestGraphLookupUnknown tests the unknown-type failure.
func TestGraphLookupUnknown(t *testing.T) {
	t.Parallel()

	g := schema.New().MustBuild()
	typ, err := g.Lookup("Ghost")
	assert.Nil(t, typ)
	assert.True(t, hoist.IsUnknownType(err))
}
