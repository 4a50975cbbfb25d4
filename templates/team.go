package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Team(data TeamPageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<main class="flex-1 container mx-auto px-4 py-8">`)
		h.raw(`<h1 class="text-3xl font-bold mb-6">Our Team</h1>`)
		h.raw(`<p class="mb-8 text-lg">Meet the financial experts behind AGYAL&#39;s success. `)
		h.raw(`Our leadership team brings together decades of experience in finance, technology, and Islamic banking `)
		h.raw(`to provide you with the best fixed income opportunities.</p>`)
		h.raw(`<div class="grid gap-6 md:grid-cols-2">`)
		for _, m := range data.Members {
			h.raw(`<article class="team-member flex flex-col h-full border rounded-xl p-6">`)
			h.raw(`<h2 class="text-xl font-bold mb-4">`)
			h.text(m.Name)
			h.raw(`</h2><p class="font-semibold mb-2">`)
			h.text(m.Role)
			h.raw(`</p><p>`)
			h.text(m.Bio)
			h.raw(`</p></article>`)
		}
		h.raw(`</div></main>`)
		return h.err
	})
	return Layout("Our Team - AGYAL", data.Year, body)
}
