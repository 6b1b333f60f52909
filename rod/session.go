// Package rod provides Chrome browser automation: a rendering Fetcher
// for script-heavy pages and the transcript panel scraper used as the
// last caption acquisition tier.
package rod

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// session owns one launched browser process and its connection. Every
// session must be released with close; the launcher runs leakless so
// the process dies with us even on a crash.
type session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// newSession launches a headless Chrome with stability flags and
// connects to it.
func newSession() (*session, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &session{browser: browser, launcher: lnchr}, nil
}

// close shuts down the browser and kills the launcher process. Safe to
// call once per session.
func (s *session) close() error {
	var err error
	if s.browser != nil {
		err = s.browser.Close()
		s.browser = nil
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher = nil
	}
	return err
}
