// Package diagnostic provides structured errors, warnings and infos produced
// while validating mapping documents and assembling the metamodel.
//
// Each diagnostic carries a stable code, the attribute role it concerns
// (e.g. "Book.tags") and the document path of the offending value
// (e.g. "entities[0].collections[1].element.nature").
package diagnostic
