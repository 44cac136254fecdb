package main

import (
	"testing"

	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	"github.com/chronicle-sim/chronicle/internal/spatial"
	"github.com/chronicle-sim/chronicle/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver map[string]uint32

func (f fakeResolver) Entity(tag string) ecs.EntityID {
	if idx, ok := f[tag]; ok {
		return ecs.NewEntityID(idx, 1)
	}
	return ecs.Null
}

func (f fakeResolver) Site(tag string) (spatial.NodeID, bool) {
	idx, ok := f[tag]
	return spatial.NodeID(idx), ok
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want command
	}{
		{"", command{empty: true}},
		{"# comment", command{empty: true}},
		{"quit", command{quit: true}},
		{"tick", command{verb: verbTick}},
		{"end", command{verb: verbEnd}},
		{"active urien", command{verb: verbActive, tag: "urien"}},
		{"act 2", command{verb: verbAct, index: 2}},
		{"select caer", command{verb: verbSelectEntity, tag: "caer"}},
		{"select site isura", command{verb: verbSelectSite, tag: "isura"}},
		{"select global", command{verb: verbSelectGlobal}},
		{"select none", command{verb: verbSelectNone}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	for _, line := range []string{"fly", "act", "act two", "active", "select", "select site"} {
		_, err := parseCommand(line)
		assert.Error(t, err, line)
	}
}

func TestCommandRequest(t *testing.T) {
	r := fakeResolver{"caer": 3, "isura": 7}

	req, err := command{verb: verbEnd}.request(r)
	require.NoError(t, err)
	assert.True(t, req.EndTurn)

	req, err = command{verb: verbSelectEntity, tag: "caer"}.request(r)
	require.NoError(t, err)
	require.NotNil(t, req.InteractedWith)
	assert.Equal(t, view.EntityID(ecs.NewEntityID(3, 1)), *req.InteractedWith)

	req, err = command{verb: verbSelectSite, tag: "isura"}.request(r)
	require.NoError(t, err)
	assert.Equal(t, view.SiteID(7), *req.InteractedWith)

	req, err = command{verb: verbAct, index: 1}.request(r)
	require.NoError(t, err)
	assert.Equal(t, view.ActionID(1), *req.InteractedWith)

	_, err = command{verb: verbActive, tag: "nobody"}.request(r)
	assert.Error(t, err)
	_, err = command{verb: verbSelectSite, tag: "atlantis"}.request(r)
	assert.Error(t, err)
}
