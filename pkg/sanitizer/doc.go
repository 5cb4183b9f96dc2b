// Package sanitizer cleans HTML produced from markdown content and
// normalizes free text submitted through the contact form.
package sanitizer
