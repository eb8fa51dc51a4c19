package serverdebug

import (
	"html/template"

	"github.com/labstack/echo/v4"

	"github.com/zestagio/spa-server/internal/logger"
)

type page struct {
	Path        string
	Description string
}

type indexPage struct {
	mode  string
	pages []page
}

func newIndexPage(mode string) *indexPage {
	return &indexPage{mode: mode}
}

func (i *indexPage) addPage(path string, description string) {
	i.pages = append(i.pages, page{path, description})
}

func (i indexPage) handler(eCtx echo.Context) error {
	return template.Must(
		template.New("index").Parse(
			`<html>
	<title>SPA Server Debug</title>
<body>
	<h2>SPA Server Debug</h2>
	<p>Mode: {{.Mode}}</p>
	<ul>
		{{range .Pages}}
		<li><a href="{{.Path}}">{{.Path}}</a> {{.Description}}</li>
		{{end}}
	</ul>

	<h2>Log Level</h2>
	<form onSubmit="putLogLevel()">
		<select id="log-level-select">
			<option{{ if eq .LogLevel "DEBUG" }} selected{{ end }}>DEBUG</option>
			<option{{ if eq .LogLevel "INFO" }} selected{{ end }}>INFO</option>
			<option{{ if eq .LogLevel "WARN" }} selected{{ end }}>WARN</option>
			<option{{ if eq .LogLevel "ERROR" }} selected{{ end }}>ERROR</option>
		</select>
		<input type="submit" value="Change"></input>
	</form>

	<script>
		function putLogLevel() {
			const req = new XMLHttpRequest();
			req.open('PUT', '/log/level', false);
			req.setRequestHeader('Content-Type', 'application/json');
			req.onload = function() { window.location.reload(); };
			req.send(JSON.stringify({"level": document.getElementById('log-level-select').value}));
		};
	</script>
</body>
</html>
`,
		),
	).Execute(
		eCtx.Response(), struct {
			Mode     string
			Pages    []page
			LogLevel string
		}{
			Mode:     i.mode,
			Pages:    i.pages,
			LogLevel: logger.Level.Level().CapitalString(),
		},
	)
}
