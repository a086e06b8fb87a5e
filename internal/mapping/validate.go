package mapping

import (
	"fmt"

	"plural-binder/internal/binding"
	"plural-binder/internal/common"
	"plural-binder/internal/diagnostic"
	"plural-binder/internal/match"
)

const maxSuggestions = 3

// Validate checks a mapping document structurally. It does not build
// bindings; Assemble reports the errors only the binding model can detect.
func Validate(mf *MappingFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if mf.Version != "" && mf.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported mapping version %q", mf.Version), "", "version")
	}

	if _, err := ParseEmptyValuePolicy(mf.Options.EmptyValues); err != nil {
		res.AddError("invalid_option", err.Error(), "", "options.empty_values")
	}

	entities := make([]string, 0, len(mf.Entities))
	seenEntities := map[string]struct{}{}

	for i, e := range mf.Entities {
		path := fmt.Sprintf("entities[%d]", i)

		if e.Name == "" {
			res.AddError("entity_name_missing", "entity name is required", "", path+".name")
			continue
		}

		if _, ok := seenEntities[e.Name]; ok {
			res.AddError("duplicate_entity", fmt.Sprintf("duplicate entity %q", e.Name), "", path+".name")
			continue
		}

		seenEntities[e.Name] = struct{}{}
		entities = append(entities, e.Name)
	}

	for i := range mf.Entities {
		e := &mf.Entities[i]
		if e.Name == "" {
			continue
		}

		if common.IsEmpty(e.Collections) {
			res.AddInfo("entity_without_collections", fmt.Sprintf("entity %q declares no collections", e.Name), "", fmt.Sprintf("entities[%d]", i))
		}

		seenCollections := map[string]struct{}{}

		for j := range e.Collections {
			c := &e.Collections[j]
			path := fmt.Sprintf("entities[%d].collections[%d]", i, j)

			if c.Name == "" {
				res.AddError("collection_name_missing", "collection name is required", "", path+".name")
				continue
			}

			role := Role(e.Name, c.Name)

			if _, ok := seenCollections[c.Name]; ok {
				res.AddError("duplicate_collection", fmt.Sprintf("duplicate collection %q", c.Name), role, path+".name")
				continue
			}

			seenCollections[c.Name] = struct{}{}

			validateCollection(res, role, path, c, entities, seenEntities)
		}
	}

	return res
}

func validateCollection(
	res *diagnostic.Diagnostics,
	role, path string,
	c *CollectionMapping,
	entities []string,
	known map[string]struct{},
) {
	if _, err := binding.ParseCollectionNature(c.Kind); err != nil {
		res.AddError("invalid_kind", err.Error(), role, path+".kind")
	}

	elemPath := path + ".element"

	nature, err := binding.ParseNature(c.Element.Nature)
	if err != nil {
		code := "invalid_nature"
		if c.Element.Nature == "" {
			code = "nature_missing"
		}

		res.AddError(code, err.Error(), role, elemPath+".nature")
	}

	fetch, err := binding.ParseFetchMode(c.Element.Fetch)
	if err != nil {
		res.AddError("invalid_fetch", err.Error(), role, elemPath+".fetch")
	}

	if ref := c.Element.Entity; ref != "" {
		if _, ok := known[ref]; !ok {
			res.AddError("unknown_entity", fmt.Sprintf("unknown entity %q", ref), role, elemPath+".entity",
				match.Closest(ref, entities, maxSuggestions)...)
		}
	}

	for k, col := range c.Element.Columns {
		colPath := fmt.Sprintf("%s.columns[%d]", elemPath, k)

		switch {
		case col.Name == "" && col.Formula == "":
			res.AddError("column_incomplete", "column needs a name or a formula", role, colPath)
		case col.Name != "" && col.Formula != "":
			res.AddError("column_ambiguous", "column cannot have both a name and a formula", role, colPath)
		}
	}

	if !nature.IsValid() {
		return
	}

	if fetch == binding.FetchJoin && !nature.IsAssociation() {
		res.AddWarning("join_fetch_without_association",
			fmt.Sprintf("join fetching has no effect on %s elements", nature), role, elemPath+".fetch")
	}

	if c.Inverse && !nature.IsAssociation() {
		res.AddError("inverse_without_association",
			fmt.Sprintf("%s elements cannot be mapped inverse", nature), role, path+".inverse")
	}
}
