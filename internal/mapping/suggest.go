package mapping

import (
	"fmt"
	"strings"

	"plural-binder/internal/analyze"
	"plural-binder/internal/binding"
	"plural-binder/internal/diagnostic"
	"plural-binder/internal/match"
)

// TagName is the struct tag read by Suggest.
//
// A struct with a field tagged `orm:"id"` is an entity. On collection fields
// the tag holds comma-separated flags and key=value options:
//
//	Tags    []string  `orm:"kind=set,column=tag"`
//	Authors []*Author `orm:"many-to-many,inverse,fetch=join"`
//	Notes   []string  `orm:"-"`
const TagName = "orm"

// Suggest derives a mapping document from the entities declared in the given
// packages of graph. The result has defaults applied. Collection fields that
// cannot be mapped are left out and reported as collection_skipped infos.
func Suggest(graph *analyze.TypeGraph, pkgPaths ...string) (*MappingFile, *diagnostic.Diagnostics) {
	mf := &MappingFile{Version: CurrentVersion}
	diags := &diagnostic.Diagnostics{}

	if graph != nil {
		for _, pkgPath := range pkgPaths {
			pkg := graph.Packages[pkgPath]
			if pkg == nil {
				continue
			}

			for _, id := range pkg.Types {
				if t := graph.GetType(id); isEntity(t) {
					mf.Entities = append(mf.Entities, suggestEntity(t, diags))
				}
			}
		}
	}

	applyDefaults(mf)

	return mf, diags
}

type ormTag struct {
	flags map[string]bool
	opts  map[string]string
}

func parseTag(tag string) ormTag {
	res := ormTag{flags: map[string]bool{}, opts: map[string]string{}}

	for part := range strings.SplitSeq(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if k, v, ok := strings.Cut(part, "="); ok {
			res.opts[strings.TrimSpace(k)] = strings.TrimSpace(v)
		} else {
			res.flags[part] = true
		}
	}

	return res
}

func isEntity(t *analyze.TypeInfo) bool {
	if t == nil || t.Kind != analyze.TypeKindStruct {
		return false
	}

	for i := range t.Fields {
		if tagOf(&t.Fields[i]).flags["id"] {
			return true
		}
	}

	return false
}

func tagOf(f *analyze.FieldInfo) ormTag {
	if !f.HasTag(TagName) {
		return ormTag{}
	}

	return parseTag(f.GetTag(TagName))
}

func suggestEntity(t *analyze.TypeInfo, diags *diagnostic.Diagnostics) EntityMapping {
	em := EntityMapping{Name: t.ID.Name}

	for i := range t.Fields {
		f := &t.Fields[i]

		tag := tagOf(f)
		if tag.flags["-"] {
			continue
		}

		shape := f.Type.Deref()
		if shape == nil || !shape.Kind.IsCollection() {
			continue
		}

		name := match.SnakeCase(f.Name)

		elem, skip := suggestElement(f, shape.ElemType, tag)
		if skip != "" {
			diags.AddInfo("collection_skipped", skip, Role(em.Name, name), "")
			continue
		}

		c := CollectionMapping{
			Name:    name,
			Kind:    defaultKind(shape.Kind).String(),
			Inverse: tag.flags["inverse"],
			OrderBy: tag.opts["order_by"],
			Where:   tag.opts["where"],
			Element: elem,
		}

		if kind, ok := tag.opts["kind"]; ok {
			c.Kind = kind
		}

		em.Collections = append(em.Collections, c)
	}

	return em
}

func defaultKind(k analyze.TypeKind) binding.CollectionNature {
	switch k {
	case analyze.TypeKindArray:
		return binding.CollectionArray
	case analyze.TypeKindMap:
		return binding.CollectionMap
	default:
		return binding.CollectionBag
	}
}

// suggestElement maps the element type of a collection field. A non-empty
// reason means the field has no mapping.
func suggestElement(f *analyze.FieldInfo, elem *analyze.TypeInfo, tag ormTag) (ElementMapping, string) {
	stringer := analyze.NewTypeStringer()
	column := match.SnakeCase(f.Name)
	goType := stringer.TypeString(elem)

	res := ElementMapping{
		Fetch: tag.opts["fetch"],
		Type:  &TypeMapping{Go: goType},
	}

	target := elem.Deref()

	switch {
	case target == nil || target.Kind == analyze.TypeKindUnknown:
		return res, fmt.Sprintf("element type %s is not mappable", goType)

	case target.Kind.IsCollection():
		return res, fmt.Sprintf("nested collection %s is not mappable", goType)

	case target.Kind == analyze.TypeKindInterface:
		res.Nature = binding.NatureManyToAny.String()
		res.Columns = ColumnArray{notNull(column + "_type"), notNull(column + "_id")}

	case isEntity(target):
		res.Entity = target.ID.Name
		res.Nature = binding.NatureOneToMany.String()

		// one-to-many keys live on the child table
		if tag.flags[binding.NatureManyToMany.String()] {
			res.Nature = binding.NatureManyToMany.String()
			res.Columns = ColumnArray{notNull(match.SnakeCase(target.ID.Name) + "_id")}
		}

	case target.Kind == analyze.TypeKindStruct:
		res.Nature = binding.NatureAggregate.String()
		res.Columns = ColumnArray{}

		for i := range target.Fields {
			sub := &target.Fields[i]
			if !isScalar(sub.Type.Deref()) {
				continue
			}

			res.Columns = append(res.Columns, ColumnMapping{
				Name:     match.SnakeCase(sub.Name),
				Nullable: boolPtr(sub.Type.Kind == analyze.TypeKindPointer),
			})
		}

		if len(res.Columns) == 0 {
			return res, fmt.Sprintf("aggregate element %s has no scalar fields", goType)
		}

	default:
		res.Nature = binding.NatureBasic.String()
		res.Type.Name = explicitTypeName(target)

		if name, ok := tag.opts["column"]; ok {
			column = name
		}

		res.Columns = ColumnArray{{
			Name:     column,
			Nullable: boolPtr(elem.Kind == analyze.TypeKindPointer),
		}}
	}

	return res, ""
}

func notNull(name string) ColumnMapping {
	return ColumnMapping{Name: name, Nullable: boolPtr(false)}
}

func isScalar(t *analyze.TypeInfo) bool {
	if t == nil {
		return false
	}

	switch t.Kind {
	case analyze.TypeKindBasic, analyze.TypeKindAlias, analyze.TypeKindExternal:
		return true
	default:
		return false
	}
}

// explicitTypeName returns the basic type a scalar is stored as.
func explicitTypeName(t *analyze.TypeInfo) string {
	for t != nil && t.Kind == analyze.TypeKindAlias && t.Underlying != nil {
		t = t.Underlying
	}

	if t == nil {
		return ""
	}

	return analyze.NewTypeStringer().TypeString(t)
}
