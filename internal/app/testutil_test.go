package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abapcodestudio/codestudio/internal/client"
	"github.com/abapcodestudio/codestudio/internal/config"
	"github.com/abapcodestudio/codestudio/internal/keys"
	"github.com/abapcodestudio/codestudio/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// testConfig creates a minimal in-memory config for testing.
func testConfig() *config.Config {
	return &config.Config{
		APIURL:     config.DefaultAPIURL,
		Theme:      config.DefaultTheme,
		StartPanel: config.DefaultStartPanel,
	}
}

// testModel creates an offline model that talks to baseURL.
func testModel(cfg *config.Config, baseURL string) *Model {
	m := New(Options{
		Config:  cfg,
		Client:  client.New(baseURL, "test-token"),
		Offline: true,
	})
	return m
}

// testModelWithSize creates a test model and sets its size.
func testModelWithSize(cfg *config.Config, width, height int) *Model {
	m := testModel(cfg, "")
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// testServer starts an httptest server and a model pointed at it.
func testServer(t *testing.T, handler http.HandlerFunc) *Model {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := testConfig()
	cfg.APIURL = srv.URL
	m := testModel(cfg, srv.URL)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	t.Cleanup(m.Close)
	return m
}

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlB:
		return tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the command.
func sendKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText sends each character of text as a key press.
func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(keyPress(string(r)))
	}
}

// deliver runs cmd and feeds its message back into the model. Only use it
// for commands that return a single message without sleeping.
func deliver(m *Model, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	_, next := m.Update(msg)
	return next
}
