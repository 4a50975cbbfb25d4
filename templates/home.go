package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Home renders the landing page: hero copy and the yield comparison.
func Home(data HomePageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<main class="flex-1 flex flex-col bg-gradient-to-br from-white to-emerald-50">`)
		h.render(ctx, hero())
		h.raw(`<section id="comparison" class="w-full py-12 md:py-20 flex items-center justify-center bg-slate-50">`)
		h.raw(`<div class="container px-4 sm:px-6">`)
		h.render(ctx, Comparison(data))
		h.raw(`</div></section></main>`)
		return h.err
	})
	return Layout(siteTitle, data.Year, body)
}

func hero() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<section class="w-full py-12 md:py-20 flex items-center justify-center">`)
		h.raw(`<div class="container px-4 sm:px-6"><div class="flex flex-col items-center space-y-6 text-center">`)
		h.raw(`<h1 class="text-3xl sm:text-4xl md:text-5xl lg:text-6xl font-bold tracking-tighter">`)
		h.raw(`Your Gateway to <span class="text-emerald-700">Fixed Income Opportunities</span></h1>`)
		h.raw(`<p class="max-w-[700px] text-slate-500 text-sm sm:text-base md:text-lg">`)
		h.raw(`Discover access to exclusive fixed-income securities and Sharia-compliant options with higher yields `)
		h.raw(`than traditional banks. AGYAL offers a unique platform for global investment opportunities.</p>`)
		h.raw(`<div class="w-full max-w-sm"><a href="#comparison" `)
		h.raw(`class="block w-full text-lg py-4 bg-emerald-700 hover:bg-emerald-800 text-white shadow-lg rounded-full">`)
		h.raw(`Explore Opportunities</a></div>`)
		h.raw(`<p class="text-xs sm:text-sm text-slate-500 mt-4">Access higher yields through our efficient, low-cost solution</p>`)
		h.raw(`</div></div></section>`)
		return h.err
	})
}

// Comparison renders the country dropdown and the two rate cards. The form
// submits on change; the button covers clients without scripts.
func Comparison(data HomePageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div class="w-full max-w-4xl mx-auto bg-white rounded-2xl shadow p-6">`)
		h.raw(`<h2 class="text-xl sm:text-2xl font-bold text-center mb-6">Global Yield Comparison</h2>`)
		h.raw(`<div class="space-y-4">`)

		h.raw(`<form method="get" action="/#comparison" class="flex gap-2 items-end">`)
		h.raw(`<div class="flex-1"><label for="country-select" class="block text-sm font-medium text-slate-700 mb-1">Select Country</label>`)
		h.raw(`<select id="country-select" name="country" onchange="this.form.submit()" class="w-full p-3 border rounded-md">`)
		for _, g := range data.Groups {
			h.raw(`<optgroup`)
			h.attr("label", g.Name)
			h.raw(`>`)
			for _, c := range g.Countries {
				h.raw(`<option`)
				h.attr("value", c)
				if c == data.Selected {
					h.raw(` selected`)
				}
				h.raw(`>`)
				h.text(c)
				h.raw(`</option>`)
			}
			h.raw(`</optgroup>`)
		}
		h.raw(`</select></div>`)
		h.raw(`<noscript><button type="submit" class="px-4 py-3 bg-emerald-700 text-white rounded-md">Compare</button></noscript>`)
		h.raw(`</form>`)

		if data.Unavailable {
			h.raw(`<div id="yield-unavailable" class="p-6 border rounded-xl text-center text-slate-500">`)
			h.raw(`Yield data is unavailable for `)
			h.text(data.Selected)
			h.raw(`.</div>`)
		} else {
			h.raw(`<div class="grid grid-cols-1 sm:grid-cols-2 gap-4">`)
			for _, card := range data.Cards {
				h.render(ctx, rateCard(card))
			}
			h.raw(`</div>`)
		}

		h.raw(`<div class="text-sm text-center text-slate-500">`)
		h.raw(`<p>AGYAL consistently outperforms traditional banks by leveraging advanced technology and a global network of opportunities.</p>`)
		h.raw(`<p class="mt-2">Note: Yields are indicative and subject to change. Always consider your investment goals and risk tolerance.</p>`)
		h.raw(`</div></div></div>`)
		return h.err
	})
}

func rateCard(c RateCard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		figure := "text-sm"
		if c.Highlight {
			figure = "text-sm text-emerald-700 font-bold"
		}
		h.raw(`<div class="border rounded-xl p-4">`)
		h.raw(`<h3 class="text-base sm:text-lg font-semibold mb-2">`)
		h.text(c.Title)
		h.raw(`</h3><p`)
		h.attr("class", figure)
		h.raw(`>High: `)
		h.text(c.High)
		h.raw(`</p><p`)
		h.attr("class", figure)
		h.raw(`>Average: `)
		h.text(c.Average)
		h.raw(`</p><p class="text-xs mt-2 text-slate-500">`)
		h.text(c.Note)
		h.raw(`</p></div>`)
		return h.err
	})
}
