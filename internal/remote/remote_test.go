package remote

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Query
		wantErr bool
	}{
		{name: "ok", q: Query{Collection: "portfolio_projects", OrderBy: "sort_order", Filters: []Filter{{Column: "is_published", Value: true}}}},
		{name: "no order", q: Query{Collection: "portfolio_guestbook"}},
		{name: "empty collection", q: Query{}, wantErr: true},
		{name: "injection in collection", q: Query{Collection: "t; DROP TABLE x"}, wantErr: true},
		{name: "bad order column", q: Query{Collection: "t", OrderBy: "sort_order desc"}, wantErr: true},
		{name: "bad filter column", q: Query{Collection: "t", Filters: []Filter{{Column: "a-b"}}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQuery)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateInsert(t *testing.T) {
	assert.NoError(t, validateInsert("portfolio_guestbook", Row{"message": "hi"}))
	assert.ErrorIs(t, validateInsert("portfolio_guestbook", Row{}), ErrInvalidQuery)
	assert.ErrorIs(t, validateInsert("bad name", Row{"message": "hi"}), ErrInvalidQuery)
	assert.ErrorIs(t, validateInsert("t", Row{"message)": "hi"}), ErrInvalidQuery)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := wrap("query", "portfolio_projects", cause)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "query", rerr.Op)
	assert.Equal(t, "portfolio_projects", rerr.Collection)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "remote query portfolio_projects: connection refused", err.Error())

	assert.NoError(t, wrap("insert", "t", nil))
}
