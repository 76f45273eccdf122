package httpapi

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DevProxy forwards requests whose first path segment is a known backend
// prefix to the backend origin, rewriting the Host header.
type DevProxy struct {
	target   *url.URL
	prefixes map[string]bool
	proxy    *httputil.ReverseProxy
}

func NewDevProxy(backendURL string, prefixes []string, logger zerolog.Logger) (*DevProxy, error) {
	target, err := url.Parse(backendURL)
	if err != nil {
		return nil, err
	}
	p := &DevProxy{target: target, prefixes: map[string]bool{}}
	for _, prefix := range prefixes {
		p.prefixes[prefix] = true
	}
	p.proxy = &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Warn().Err(err).Str("path", r.URL.Path).Msg("dev proxy upstream error")
			w.WriteHeader(http.StatusBadGateway)
		},
	}
	return p, nil
}

// Matches reports whether path starts with a proxied segment, e.g.
// "/llamadas-por-dia?pin=1" for the "llamadas-por-dia" prefix.
func (p *DevProxy) Matches(path string) bool {
	seg := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	return seg != "" && p.prefixes[seg]
}

func (p *DevProxy) Handle(c *gin.Context) {
	if !p.Matches(c.Request.URL.Path) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{"code": "NOT_FOUND", "message": "Route not found", "details": nil},
		})
		return
	}
	p.proxy.ServeHTTP(c.Writer, c.Request)
}
