package main

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newTestBrowser(t *testing.T) *browserModel {
	m, err := describeModule(testModule())
	require.NoError(t, err)
	return newBrowserModel("test.wasm", m, newStyles(newRenderer(io.Discard, colorNever)))
}

func TestBrowser(t *testing.T) {
	b := newTestBrowser(t)
	require.Nil(t, b.Init())
	require.Equal(t, "Loading...", b.View())

	_, cmd := b.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.Nil(t, cmd)
	view := b.View()
	require.Contains(t, view, "test.wasm (version 1)")
	require.Contains(t, view, "> type")
	require.Contains(t, view, "type 0: (func (param i32 i32) (result i32))")

	b.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, b.selected)
	require.Contains(t, b.View(), "env::m: memory initial=1, max=2")

	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	b.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, b.selected)
}

func TestBrowser_LastSection(t *testing.T) {
	b := newTestBrowser(t)
	b.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	for i := 0; i < 20; i++ {
		b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	require.Equal(t, len(b.module.Sections)-1, b.selected)
	require.Contains(t, b.View(), "01 02 03")
}

func TestBrowser_Quit(t *testing.T) {
	b := newTestBrowser(t)
	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}
