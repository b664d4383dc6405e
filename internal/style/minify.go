package style

import (
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"

	"github.com/unkn0wn-root/hurlhtml/internal/errdef"
)

const cssMediaType = "text/css"

var (
	minifier     *minify.M
	minifierOnce sync.Once
)

func getMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.AddFunc(cssMediaType, css.Minify)
	})
	return minifier
}

// Minify compacts a stylesheet.
func Minify(stylesheet string) (string, error) {
	out, err := getMinifier().String(cssMediaType, stylesheet)
	if err != nil {
		return "", errdef.Wrap(errdef.CodeTheme, err, "minify stylesheet")
	}
	return out, nil
}
