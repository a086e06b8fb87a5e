// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an in-memory
// model of the structs in a package and the shape of their fields, which
// mapping.Suggest turns into plural attribute mappings.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind (struct/basic/alias/pointer/slice/array/map/interface/external)
//   - FieldInfo: field name, type, tags, and embedding
package analyze
