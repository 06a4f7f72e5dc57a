package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKoDate(t *testing.T) {
	assert.Equal(t, "2025년 3월 1일", KoDate(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)))
	// (UTC 15시 이후는 한국 날짜로 다음 날)
	assert.Equal(t, "2025년 3월 2일", KoDate(time.Date(2025, 3, 1, 16, 0, 0, 0, time.UTC)))
	assert.Empty(t, KoDate(time.Time{}))
}

func TestEngineLoadsViews(t *testing.T) {
	engine := NewEngine()
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	err := engine.Render(&buf, "partials/empty", map[string]any{"Message": "없음"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "없음")
}

func TestPublicServesAssets(t *testing.T) {
	f, err := Public().Open("js/app.js")
	require.NoError(t, err)
	defer f.Close()
}

func TestDict(t *testing.T) {
	m, err := Dict("Message", "hi", "Count", 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Message": "hi", "Count": 2}, m)

	_, err = Dict("odd")
	assert.Error(t, err)
	_, err = Dict(1, 2)
	assert.Error(t, err)
}
