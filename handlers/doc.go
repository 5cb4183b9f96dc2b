// Package handlers holds the HTTP handlers of the site: the page, the
// contact API and the application error handlers.
package handlers
