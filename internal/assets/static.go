package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

const indexPage = "index.html"

//go:generate options-gen -out-filename=static_options.gen.go -from-struct=StaticOptions
type StaticOptions struct {
	root string `option:"mandatory" validate:"required"`
}

// StaticDir serves the build output of the client bundle.
type StaticDir struct {
	root string
	fsys fs.FS
}

func NewStaticDir(opts StaticOptions) (*StaticDir, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	return &StaticDir{
		root: opts.root,
		fsys: os.DirFS(opts.root),
	}, nil
}

func (s *StaticDir) Root() string {
	return s.root
}

// Resolve writes the file the request path points to. It reports false
// without touching the response when there is no such file, so the caller
// can fall through.
func (s *StaticDir) Resolve(eCtx echo.Context) (bool, error) {
	req := eCtx.Request()
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return false, nil
	}

	name, ok, err := s.lookup(req.URL.Path)
	if err != nil || !ok {
		return false, err
	}

	if err := echo.StaticFileHandler(name, s.fsys)(eCtx); err != nil {
		return true, fmt.Errorf("serve static file %q: %w", name, err)
	}
	return true, nil
}

// lookup maps a URL path onto a regular file name inside the root.
func (s *StaticDir) lookup(urlPath string) (string, bool, error) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = "."
	}

	for _, segment := range strings.Split(name, "/") {
		if segment != "." && strings.HasPrefix(segment, ".") {
			return "", false, nil
		}
	}

	info, err := fs.Stat(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("stat %q: %v", name, err)
	}

	if info.IsDir() {
		name = path.Join(name, indexPage)
		if info, err = fs.Stat(s.fsys, name); err != nil || info.IsDir() {
			return "", false, nil //nolint:nilerr // directory without index is a miss
		}
	}

	if !info.Mode().IsRegular() {
		return "", false, nil
	}
	return name, true, nil
}
