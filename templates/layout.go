package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

const siteTitle = "AGYAL - Fixed Income Opportunity Search"

// html accumulates the first write error so components can emit markup
// without checking every call.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) attr(name, value string) {
	h.raw(" " + name + `="`)
	h.text(value)
	h.raw(`"`)
}

func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// Layout wraps body in the shared document shell: head, navbar and footer.
func Layout(title string, year int, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		if title == "" {
			title = siteTitle
		}
		h.raw(`<!doctype html><html lang="en"><head><meta charset="UTF-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		h.raw(`<meta name="description" content="Find and compare fixed income opportunities easily">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><script src="https://cdn.tailwindcss.com"></script></head>`)
		h.raw(`<body class="font-sans text-slate-800 bg-white">`)
		h.render(ctx, navbar())
		h.raw(`<div class="pt-16 min-h-screen flex flex-col">`)
		h.render(ctx, body)
		h.render(ctx, footer(year))
		h.raw(`</div></body></html>`)
		return h.err
	})
}

func navbar() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<nav class="fixed top-0 inset-x-0 h-16 z-20 bg-white/90 border-b flex items-center">`)
		h.raw(`<div class="container mx-auto px-4 flex justify-between items-center">`)
		h.raw(`<a href="/" class="text-xl font-bold text-emerald-700">AGYAL</a>`)
		h.raw(`<div class="flex gap-6 text-sm">`)
		h.raw(`<a href="/" class="hover:text-emerald-700">Home</a>`)
		h.raw(`<a href="/management-team" class="hover:text-emerald-700">Our Team</a>`)
		h.raw(`</div></div></nav>`)
		return h.err
	})
}

func footer(year int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<footer class="w-full py-6 px-4 border-t mt-auto">`)
		h.raw(`<div class="container mx-auto flex flex-col sm:flex-row justify-between items-center">`)
		h.raw(`<p class="text-xs text-slate-500">© `)
		h.text(strconv.Itoa(year))
		h.raw(` AGYAL. All rights reserved.</p>`)
		h.raw(`<nav class="flex gap-4 sm:gap-6 mt-2 sm:mt-0">`)
		h.raw(`<a class="text-xs hover:text-emerald-700" href="#">Terms of Service</a>`)
		h.raw(`<a class="text-xs hover:text-emerald-700" href="#">Privacy</a>`)
		h.raw(`</nav></div></footer>`)
		return h.err
	})
}

// NotFound is the page for unknown paths.
func NotFound(year int) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<main class="flex-1 container mx-auto px-4 py-16 text-center">`)
		h.raw(`<h1 class="text-3xl font-bold mb-4">Page not found</h1>`)
		h.raw(`<a href="/" class="text-emerald-700 underline">Back to the home page</a>`)
		h.raw(`</main>`)
		return h.err
	})
	return Layout("Not found - AGYAL", year, body)
}
