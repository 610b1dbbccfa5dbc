// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"emojiverse/internal/cache"
	"emojiverse/internal/markdown"
	"emojiverse/internal/models"
)

// pageTmpl is the minimal server-rendered shell for CMS pages, used by
// crawlers and by links shared outside the single-page front end.
var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Page.Title}} · {{.Site.SiteName}}</title>
{{if .Site.FaviconURL}}<link rel="icon" href="{{.Site.FaviconURL}}">{{end}}
</head>
<body>
<header><a href="/">{{if .Site.LogoURL}}<img src="{{.Site.LogoURL}}" alt="{{.Site.SiteName}}" height="32">{{else}}{{.Site.SiteName}}{{end}}</a></header>
<main>
<article>
{{.Body}}
</article>
</main>
<footer>
<nav>{{range .Footer.Navigation}}<a href="{{.URL}}">{{.Label}}</a> {{end}}</nav>
<nav>{{range .Footer.Legal}}<a href="{{.URL}}">{{.Label}}</a> {{end}}</nav>
</footer>
</body>
</html>
`))

type pageData struct {
	Lang   string
	Page   models.Page
	Body   template.HTML
	Site   models.SiteSettings
	Footer models.FooterContent
}

// pageResponse is the JSON form of a published page.
type pageResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	HTML      string    `json:"html"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageJSON returns a published page with its Markdown rendered.
func (p *Public) PageJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	key := cache.PageKey(slug) + ".json"

	if cached, ok := p.cache.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached)
		return
	}

	page, ok := p.stores.Pages.FindBySlug(slug, true)
	if !ok {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}
	html, err := markdown.ToHTML(page.Content)
	if err != nil {
		slog.Error("render page markdown failed", "error", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "could not render page")
		return
	}

	body, err := json.Marshal(pageResponse{
		ID:        page.ID.String(),
		Title:     page.Title,
		Slug:      page.Slug,
		Content:   page.Content,
		HTML:      html,
		UpdatedAt: page.UpdatedAt,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not encode page")
		return
	}
	body = append(body, '\n')
	p.cache.Set(ctx, key, body)
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// PageHTML renders a published page as a standalone HTML document.
func (p *Public) PageHTML(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	lang := p.lang(r)
	key := cache.PageKey(slug) + "." + lang + ".html"

	if cached, ok := p.cache.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	page, ok := p.stores.Pages.FindBySlug(slug, true)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	html, err := markdown.ToHTML(page.Content)
	if err != nil {
		slog.Error("render page markdown failed", "error", err, "slug", slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = pageTmpl.Execute(&buf, pageData{
		Lang:   lang,
		Page:   page,
		Body:   template.HTML(html), // sanitized by markdown.ToHTML
		Site:   p.stores.Settings.Get(),
		Footer: p.stores.Footer.Get(),
	})
	if err != nil {
		slog.Error("render page template failed", "error", err, "slug", slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.cache.Set(ctx, key, buf.Bytes())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap lists every entry and category in every supported language plus
// the published pages.
func (p *Public) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if cached, ok := p.cache.Get(ctx, cache.SitemapKey); ok {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Write(cached)
		return
	}

	base := strings.TrimRight(p.opts.SiteURL, "/")
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, lang := range p.bundle.Supported() {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + "/" + lang + "/"})
		for _, c := range p.stores.Categories.List() {
			set.URLs = append(set.URLs, sitemapURL{Loc: base + "/" + lang + "/category/" + c.ID})
		}
		for _, e := range p.stores.Emojis.List() {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:     base + "/" + lang + "/emoji/" + e.ID,
				LastMod: e.CreatedAt.UTC().Format("2006-01-02"),
			})
		}
	}
	for _, pg := range p.stores.Pages.ListPublished() {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     base + "/p/" + pg.Slug,
			LastMod: pg.UpdatedAt.UTC().Format("2006-01-02"),
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		slog.Error("encode sitemap failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	buf.WriteByte('\n')

	p.cache.Set(ctx, cache.SitemapKey, buf.Bytes())
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(buf.Bytes())
}
