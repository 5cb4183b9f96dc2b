// Package health serves liveness and readiness probes.
//
// Liveness always answers OK while the process runs. Readiness runs named
// checks in parallel under a shared timeout and answers 503 when any fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "mail-config": contactService.Healthcheck(),
//	}))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// asks for JSON with an Accept header or ?format=json:
//
//	{"status":"unhealthy","checks":{"mail-config":{"status":"unhealthy","error":"..."}}}
package health
