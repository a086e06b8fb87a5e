// Package mapping provides the YAML mapping document for plural attributes,
// its validation, assembly into a binding.Metamodel, and suggestion of a
// document from tagged Go structs.
//
// # Schema Overview
//
//	version: "1"
//	options:
//	  empty_values: associations   # associations | allow | reject
//	entities:
//	  - name: Book
//	    collections:
//	      - name: tags
//	        kind: set                 # bag | idbag | set | list | array | map
//	        element:
//	          nature: basic           # basic | aggregate | one-to-many | many-to-many | many-to-any
//	          type: {name: string, go: string}
//	          columns: tag            # shorthand for one nullable column
//	      - name: reviews
//	        inverse: true
//	        element:
//	          nature: one-to-many
//	          entity: Review
//	          fetch: join             # select | join | subselect
//	      - name: chapters
//	        kind: list
//	        order_by: position
//	        element:
//	          nature: aggregate
//	          columns:
//	            - {name: title, nullable: false}
//	            - {formula: "upper(title)"}
//
// # Defaults
//
// Parse fills in the schema version, the "associations" empty value policy,
// the "bag" collection kind and the "select" fetch mode. Columns default to
// nullable, insertable and updatable; formulas are never written.
//
// # Pipeline
//
// Validate checks the document structurally and reports diagnostics with the
// attribute role and document path. Assemble validates, then builds and seals
// a binding.Metamodel. Suggest derives a document from an analyze.TypeGraph.
package mapping
