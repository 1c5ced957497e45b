package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func TestHeader_View(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)
	h.SetPanelTitle("Pipeline")
	h.SetChannelState(ChannelLive)

	out := ansi.Strip(h.View())
	if !strings.HasPrefix(out, " codestudio › Pipeline") {
		t.Errorf("header should start with title and panel, got %q", out)
	}
	if !strings.HasSuffix(out, "● live ") {
		t.Errorf("header should end with channel state, got %q", out)
	}
	if w := runewidth.StringWidth(out); w != 80 {
		t.Errorf("header width = %d, want 80", w)
	}
}

func TestHeader_ChannelStates(t *testing.T) {
	tests := []struct {
		state ChannelState
		want  string
	}{
		{ChannelOff, "○ offline"},
		{ChannelConnecting, "◌ connecting"},
		{ChannelLive, "● live"},
	}
	for _, tt := range tests {
		h := NewHeader()
		h.SetWidth(60)
		h.SetChannelState(tt.state)
		if out := ansi.Strip(h.View()); !strings.Contains(out, tt.want) {
			t.Errorf("state %d: %q does not contain %q", tt.state, out, tt.want)
		}
	}
}

func TestHeader_APIURLOnlyWhenWide(t *testing.T) {
	h := NewHeader()
	h.SetAPIURL("http://localhost:8000")

	h.SetWidth(120)
	if !strings.Contains(ansi.Strip(h.View()), "http://localhost:8000") {
		t.Error("wide header should show the API URL")
	}

	h.SetWidth(30)
	out := ansi.Strip(h.View())
	if strings.Contains(out, "localhost") {
		t.Errorf("narrow header should drop the API URL, got %q", out)
	}
	if w := runewidth.StringWidth(out); w > 30 {
		t.Errorf("narrow header width = %d, want <= 30", w)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#7C3AED", 0x7C, 0x3A, 0xED},
		{"#000000", 0, 0, 0},
		{"7C3AED", 0, 0, 0},
		{"", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := parseHexColor(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d", tt.in, r, g, b)
		}
	}
}
