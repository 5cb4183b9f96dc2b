package views

import (
	"github.com/a-h/templ"

	"github.com/khorlingling/site/content"
)

// EmailPattern mirrors the server-side check so browsers can flag bad input early.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

type field struct {
	id, label, kind, placeholder string
}

var contactFields = []field{
	{"name", "Full Name", "text", "Your name"},
	{"email", "Email", "email", "you@example.com"},
	{"organization", "Organization / School", "text", "e.g. NUS, Debate Club"},
	{"message", "Message", "textarea", "How can Ms Khor help you today?"},
}

// ContactSection renders the contact channels and the inquiry form.
// contact.js binds to the form through its data attributes.
func ContactSection(info content.Info) templ.Component {
	return component(func(o *out) {
		o.raw(`<section class="section" id="contact"><h2 class="section-heading">Connect with Ms Khor</h2>`)
		o.raw(`<div class="contact-grid"><div class="contact-channels">`)
		o.raw(`<p class="lead">Interested in collaborating for workshops, speaker engagements, or career mentorship? Feel free to reach out via professional channels.</p>`)
		channel(o, info.LinkedIn, "LinkedIn", "Professional Profile")
		if info.Email != "" {
			channel(o, "mailto:"+info.Email, "Email", "Inquiries & Bookings")
		}
		o.raw(`</div><div class="card"><form class="contact-form" novalidate`)
		o.attr("data-contact-form", contactRoute)
		o.raw(`>`)
		for _, f := range contactFields {
			formField(o, f)
		}
		o.raw(`<div class="form-status" role="status" aria-live="polite" hidden></div>`)
		o.raw(`<button type="submit" class="btn btn-dark btn-block" data-idle-label="Send Inquiry" data-loading-label="Sending...">Send Inquiry</button>`)
		o.raw(`</form></div></div></section>`)
	})
}

func channel(o *out, href, title, subtitle string) {
	if href == "" {
		href = "#"
	}
	o.raw(`<a class="channel"`)
	o.attr("href", href)
	o.raw(`><h5>`)
	o.text(title)
	o.raw(`</h5><p>`)
	o.text(subtitle)
	o.raw(`</p></a>`)
}

func formField(o *out, f field) {
	o.raw(`<div class="form-field"><label`)
	o.attr("for", f.id)
	o.raw(`>`)
	o.text(f.label)
	o.raw(`</label>`)
	if f.kind == "textarea" {
		o.raw(`<textarea rows="4" required`)
	} else {
		o.raw(`<input required`)
		o.attr("type", f.kind)
	}
	o.attr("id", f.id)
	o.attr("name", f.id)
	o.attr("placeholder", f.placeholder)
	if f.kind == "email" {
		o.attr("pattern", EmailPattern)
	}
	if f.kind == "textarea" {
		o.raw(`></textarea>`)
	} else {
		o.raw(`>`)
	}
	o.raw(`</div>`)
}
