package dirschema

import (
	"fmt"

	"github.com/KilimcininKorOglu/dsagent/agent"
)

// indexNames maps an attribute-id to the name of the index the storage
// engine exposes for it. Only attributes the Directory Agent actually
// indexes on (spec.md §4.1.1/§4.1.2/§4.1.3) need an entry.
var indexNames = map[agent.AttributeID]string{
	agent.AttrSAMAccountName:     "sAMAccountName",
	agent.AttrObjectSid:          "objectSid",
	agent.AttrObjectGUID:         "objectGUID",
	agent.AttrObjectCategory:     "objectCategory",
	agent.AttrSAMAccountType:     "sAMAccountType",
	agent.AttrPrimaryGroupId:     "primaryGroupID",
	agent.AttrUserAccountControl: "userAccountControl",
}

// classIDs maps a well-known class name to a stable class-id. The Agent
// obtains these values only through FindClassID; objectCategory index keys
// must be written with the same values.
var classIDs = map[string]agent.ClassID{
	agent.ClassSecret:     1,
	agent.ClassKdsRootKey: 2,
	"person":              3,
	"organizationalUnit":  4,
}

// Catalogue is a fixed-table Schema implementation (agent.Schema). Unlike
// the teacher's LDIF-parsed Schema, there is no loader: the attribute and
// class sets this core needs are small and closed, so they are registered
// as package-level tables rather than parsed from definitions at runtime.
type Catalogue struct {
	indexNames map[agent.AttributeID]string
	classIDs   map[string]agent.ClassID
}

// New returns a Catalogue pre-populated with the Directory Agent's fixed
// attribute and class set.
func New() *Catalogue {
	c := &Catalogue{
		indexNames: make(map[agent.AttributeID]string, len(indexNames)),
		classIDs:   make(map[string]agent.ClassID, len(classIDs)),
	}
	for k, v := range indexNames {
		c.indexNames[k] = v
	}
	for k, v := range classIDs {
		c.classIDs[k] = v
	}
	return c
}

// RegisterIndex adds or overrides an attribute's backing index name. Exists
// for tests and deployments that extend the default set.
func (c *Catalogue) RegisterIndex(attr agent.AttributeID, indexName string) {
	c.indexNames[attr] = indexName
}

// RegisterClass adds or overrides a class name's class-id.
func (c *Catalogue) RegisterClass(name string, id agent.ClassID) {
	c.classIDs[name] = id
}

// FindIndexName implements agent.Schema.
func (c *Catalogue) FindIndexName(attr agent.AttributeID) (string, error) {
	name, ok := c.indexNames[attr]
	if !ok {
		return "", fmt.Errorf("dirschema: no index registered for attribute %d", attr)
	}
	return name, nil
}

// FindClassID implements agent.Schema.
func (c *Catalogue) FindClassID(name string) (agent.ClassID, error) {
	id, ok := c.classIDs[name]
	if !ok {
		return 0, fmt.Errorf("dirschema: unknown class %q", name)
	}
	return id, nil
}
