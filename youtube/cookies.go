package youtube

import (
	"bufio"
	"net/http"
	"os"
	"strings"
)

// httpOnlyPrefix marks HttpOnly cookies in Netscape exports; the
// cookie is still valid, the prefix is metadata.
const httpOnlyPrefix = "#HttpOnly_"

// ParseCookieFile reads a Netscape-format cookie file as exported by
// browser extensions and download tools. Comment and blank lines are
// skipped; malformed lines are ignored.
func ParseCookieFile(path string) ([]*http.Cookie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cookies []*http.Cookie
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") && !strings.HasPrefix(line, httpOnlyPrefix) {
			continue
		}
		line = strings.TrimPrefix(line, httpOnlyPrefix)

		// domain, include-subdomains, path, secure, expiry, name, value
		fields := strings.Split(line, "\t")
		if len(fields) < 7 {
			continue
		}
		cookies = append(cookies, &http.Cookie{
			Name:   fields[5],
			Value:  fields[6],
			Domain: fields[0],
			Path:   fields[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cookies, nil
}

// cookieHeader renders cookies as a single Cookie header value.
func cookieHeader(cookies []*http.Cookie) string {
	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	return strings.Join(pairs, "; ")
}
