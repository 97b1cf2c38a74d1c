package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"citylaw/internal/digest"
	"citylaw/internal/domain"
	"citylaw/internal/inventory"
	"citylaw/internal/services/pages"
	"citylaw/internal/services/routes"
	"citylaw/internal/services/sitemap"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeXML  = "application/xml; charset=utf-8"
)

func (s *Server) healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) home(c *gin.Context) {
	s.page(c, routes.Route{Path: routes.PathHome, Class: routes.ClassHome})
}

func (s *Server) hub(c *gin.Context) {
	s.page(c, routes.Route{Path: routes.PathHub, Class: routes.ClassHub})
}

func (s *Server) static(c *gin.Context) {
	s.page(c, routes.Route{Path: c.FullPath(), Class: routes.ClassPolicy})
}

func (s *Server) city(c *gin.Context) {
	slug := domain.Slug(c.Param("city"))
	s.page(c, routes.Route{Path: routes.CityPath(slug), Class: routes.ClassCity, Slug: slug.String()})
}

func (s *Server) cluster(c *gin.Context) {
	id := domain.ClusterID(c.Param("cluster"))
	c.Header("X-Robots-Tag", "noindex, follow")
	s.page(c, routes.Route{Path: routes.ClusterPath(id), Class: routes.ClassCluster, Slug: id.String()})
}

func (s *Server) page(c *gin.Context, r routes.Route) {
	b, err := s.deps.Pages.Render(r)
	switch {
	case errors.Is(err, pages.ErrNotFound):
		s.notFound(c)
	case err != nil:
		s.fail(c, r, err)
	default:
		s.respond(c, http.StatusOK, contentTypeHTML, b)
	}
}

func (s *Server) notFound(c *gin.Context) {
	b, err := s.deps.Pages.NotFound()
	if err != nil {
		s.deps.Logger.Error("render not found page", "error", err)
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	c.Data(http.StatusNotFound, contentTypeHTML, b)
}

func (s *Server) fail(c *gin.Context, r routes.Route, err error) {
	kind := "internal"
	if k, ok := inventory.KindOf(err); ok {
		kind = k.String()
	}
	s.deps.Logger.Error("render page", "path", r.Path, "slug", r.Slug, "kind", kind, "error", err)
	c.String(http.StatusInternalServerError, "500 internal server error")
}

func (s *Server) sitemap(c *gin.Context) {
	entries, err := s.deps.Sitemap.Generate(s.now())
	if err == nil {
		var b []byte
		if b, err = sitemap.Marshal(entries); err == nil {
			c.Data(http.StatusOK, contentTypeXML, b)
			return
		}
	}
	s.fail(c, routes.Route{Path: "/sitemap.xml"}, err)
}

func (s *Server) robots(c *gin.Context) {
	c.String(http.StatusOK, sitemap.Robots(s.deps.BaseURL))
}

// respond writes b with a content ETag, answering 304 when the client
// already holds the same representation.
func (s *Server) respond(c *gin.Context, status int, contentType string, b []byte) {
	etag := digest.ETag(b)
	c.Header("ETag", etag)
	c.Header("Cache-Control", "no-cache")
	if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(status, contentType, b)
}
