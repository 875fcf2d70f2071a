/*
Package metrics provides prometheus-based metrics collection for the
planning service, covering the HTTP surface, the planning pipeline, the
text-generation backend, and the caches.

The Collector registers its metrics through promauto against the default
registry, namespaced per service. It satisfies the recorder interfaces
declared by the workflow, strategy, search, and llm packages, so those
packages stay free of prometheus imports.
*/
package metrics
