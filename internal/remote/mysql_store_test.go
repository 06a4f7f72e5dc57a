package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelect(t *testing.T) {
	tests := []struct {
		name     string
		q        Query
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "guestbook newest first",
			q:        Query{Collection: "portfolio_guestbook", OrderBy: "created_at"},
			wantSQL:  "SELECT * FROM portfolio_guestbook ORDER BY created_at DESC",
			wantArgs: nil,
		},
		{
			name: "published projects summary",
			q: Query{
				Collection: "portfolio_projects",
				Filters:    []Filter{{Column: "is_published", Value: true}},
				OrderBy:    "sort_order",
				Ascending:  true,
				Limit:      4,
			},
			wantSQL:  "SELECT * FROM portfolio_projects WHERE is_published = ? ORDER BY sort_order ASC LIMIT 4",
			wantArgs: []any{true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelect(tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildSelectRejectsBadIdentifiers(t *testing.T) {
	_, _, err := buildSelect(Query{Collection: "portfolio_projects", OrderBy: "1; --"})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestBuildInsert(t *testing.T) {
	query, args, err := buildInsert("portfolio_guestbook", Row{
		"message":     "hi",
		"author_name": "익명",
		"email":       nil,
	})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO portfolio_guestbook (author_name,email,message) VALUES (?,?,?)", query)
	assert.Equal(t, []any{"익명", nil, "hi"}, args)

	_, _, err = buildInsert("portfolio_guestbook", nil)
	assert.ErrorIs(t, err, ErrInvalidQuery)
}
