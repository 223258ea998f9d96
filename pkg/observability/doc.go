/*
Package observability exports Prometheus metrics for validation runs.

A Recorder counts validations per schema and outcome, counts failing fields,
and records validation latency. It satisfies registry.Observer so that a
registry can report every run:

	rec := observability.NewRecorder()
	reg := registry.Default()
	reg.Observe(rec)

Metrics live on the Recorder's own prometheus.Registry and can be written to
a node_exporter textfile with WriteTextfile.
*/
package observability
