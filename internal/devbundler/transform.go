package devbundler

import (
	"context"
	"path"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const (
	viteClientPath   = "@vite/client"
	reactRefreshPath = "@react-refresh"
)

var (
	headOpenRe    = regexp.MustCompile(`(?i)<head(\s[^>]*)?>`)
	htmlOpenRe    = regexp.MustCompile(`(?i)<html(\s[^>]*)?>`)
	doctypeRe     = regexp.MustCompile(`(?i)<!doctype[^>]*>`)
	relativeRefRe = regexp.MustCompile(`(\s(?:src|href)\s*=\s*["'])\./`)
)

// TransformTemplate applies the development transform to the HTML shell
// requested at url. The result depends only on url and template.
func (c *Client) TransformTemplate(ctx context.Context, url, template string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.lg.Debug("transform html shell", zap.String("url", url))
	return TransformIndexHTML(url, template, c.base, c.reactRefresh), nil
}

// TransformIndexHTML injects the bundler client (and the React refresh
// preamble when enabled) at the top of <head> and resolves "./" references
// against the directory of url.
func TransformIndexHTML(url, template, base string, reactRefresh bool) string {
	dir := urlDir(url)
	html := relativeRefRe.ReplaceAllString(template, "${1}"+strings.ReplaceAll(dir, "$", "$$"))

	tags := devTags(base, reactRefresh)
	for _, re := range []*regexp.Regexp{headOpenRe, htmlOpenRe, doctypeRe} {
		if loc := re.FindStringIndex(html); loc != nil {
			return html[:loc[1]] + "\n" + tags + html[loc[1]:]
		}
	}
	return tags + "\n" + html
}

func devTags(base string, reactRefresh bool) string {
	var b strings.Builder
	b.WriteString(`<script type="module" src="` + base + viteClientPath + `"></script>`)

	if reactRefresh {
		b.WriteString("\n")
		b.WriteString(`<script type="module">
import { injectIntoGlobalHook } from "` + base + reactRefreshPath + `";
injectIntoGlobalHook(window);
window.$RefreshReg$ = () => {};
window.$RefreshSig$ = () => (type) => type;
</script>`)
	}
	return b.String()
}

// urlDir returns the directory part of the URL path, with a trailing slash.
func urlDir(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	if url == "" || !strings.HasPrefix(url, "/") {
		return "/"
	}
	if strings.HasSuffix(url, "/") {
		return url
	}

	dir := path.Dir(url)
	if dir == "/" {
		return dir
	}
	return dir + "/"
}
