package mapping

import (
	"errors"
	"fmt"
	"strings"

	"plural-binder/internal/binding"
	"plural-binder/internal/diagnostic"
	"plural-binder/internal/logger"
)

// Assemble validates mf and builds a sealed metamodel from it, in document
// order. The metamodel is nil whenever the diagnostics contain errors.
func Assemble(mf *MappingFile, log *logger.Logger) (*binding.Metamodel, *diagnostic.Diagnostics) {
	if log == nil {
		log = logger.Nop()
	}

	diags := Validate(mf)
	if diags.HasErrors() {
		log.Warn("mapping validation failed", "errors", len(diags.Errors))
		return nil, diags
	}

	policy, _ := ParseEmptyValuePolicy(mf.Options.EmptyValues)
	model := binding.NewMetamodel(binding.BuildOptions{EmptyValues: policy})

	for i := range mf.Entities {
		e := &mf.Entities[i]

		for j := range e.Collections {
			c := &e.Collections[j]
			role := Role(e.Name, c.Name)
			path := fmt.Sprintf("entities[%d].collections[%d]", i, j)

			attr, elem := specs(e.Name, c)

			p, err := model.AddPluralAttribute(attr, elem)
			if err != nil {
				addBindingError(diags, role, path, err)
				log.Warn("plural attribute rejected", "role", role, "error", err)
				continue
			}

			element := p.ElementBinding()
			log.Debug("plural attribute bound",
				"role", p.Role(),
				"collection", p.CollectionNature(),
				"nature", element.Nature(),
				"values", element.RelationalValueBindings().Len(),
				"fetch", element.FetchMode(),
			)
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}

	model.Seal()
	log.Info("metamodel assembled", "attributes", model.Len(), "warnings", len(diags.Warnings))

	return model, diags
}

// specs converts a validated collection mapping to binding specs.
func specs(entity string, c *CollectionMapping) (binding.PluralAttributeSpec, binding.ElementSpec) {
	kind, _ := binding.ParseCollectionNature(c.Kind)
	nature, _ := binding.ParseNature(c.Element.Nature)
	fetch, _ := binding.ParseFetchMode(c.Element.Fetch)

	attr := binding.PluralAttributeSpec{
		Entity:     entity,
		Name:       c.Name,
		Collection: kind,
		Inverse:    c.Inverse,
		OrderBy:    c.OrderBy,
		Where:      c.Where,
	}

	elem := binding.ElementSpec{
		Nature:           nature,
		RelationalValues: c.Element.Columns.RelationalValues(),
		FetchMode:        fetch,
		Type:             c.Element.Type.Descriptor(),
		ReferencedEntity: c.Element.Entity,
	}

	return attr, elem
}

func addBindingError(diags *diagnostic.Diagnostics, role, path string, err error) {
	var cfg *binding.ConfigurationError
	if errors.As(err, &cfg) {
		diags.AddError("configuration", cfg.Reason, role, path+"."+documentField(cfg.Field))
		return
	}

	diags.AddError("assembly", err.Error(), role, path)
}

// documentField maps binding field names to mapping document keys.
func documentField(field string) string {
	if rest, ok := strings.CutPrefix(field, "relational_values"); ok {
		return "element.columns" + rest
	}

	switch field {
	case "referenced_entity":
		return "element.entity"
	case "fetch_mode":
		return "element.fetch"
	case "nature":
		return "element.nature"
	case "collection":
		return "kind"
	}

	return field
}
