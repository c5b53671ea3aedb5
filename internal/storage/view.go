package storage

import (
	"reflect"
	"strconv"
	"time"

	"github.com/KilimcininKorOglu/dsagent/agent"
)

// objectView is the concrete agent.ObjectView over a Table row. Views
// obtained from a read path (GotoKey/MoveNext) are not editable; only the
// view BeginEdit returns may be mutated.
type objectView struct {
	row      *Row
	editable bool
}

func (v *objectView) DNT() agent.DNT { return v.row.DNT }

func (v *objectView) ReadAttribute(attr agent.AttributeID) (any, bool) {
	val, ok := v.row.Attrs[attr]
	return val, ok
}

func (v *objectView) SetAttribute(attr agent.AttributeID, value any) (bool, error) {
	if !v.editable {
		return false, &agent.OperationError{Reason: "view is not editable", Identifier: v.identifier()}
	}
	old, existed := v.row.Attrs[attr]
	changed := !existed || !reflect.DeepEqual(old, value)
	v.row.Attrs[attr] = value
	return changed, nil
}

func (v *objectView) AddAttribute(attr agent.AttributeID, values []any) (bool, error) {
	if !v.editable {
		return false, &agent.OperationError{Reason: "view is not editable", Identifier: v.identifier()}
	}
	existing, _ := v.row.Attrs[attr].([]any)
	grew := false
	for _, val := range values {
		if containsValue(existing, val) {
			continue
		}
		existing = append(existing, val)
		grew = true
	}
	v.row.Attrs[attr] = existing
	return grew, nil
}

func containsValue(values []any, val any) bool {
	for _, v := range values {
		if reflect.DeepEqual(v, val) {
			return true
		}
	}
	return false
}

func (v *objectView) UpdateAttributeMeta(attr agent.AttributeID, usn int64, timestamp time.Time) error {
	if !v.editable {
		return &agent.OperationError{Reason: "view is not editable", Identifier: v.identifier()}
	}
	v.row.Meta[attr] = attrMeta{usn: usn, timestamp: timestamp}
	return nil
}

func (v *objectView) Delete() error {
	if !v.editable {
		return &agent.OperationError{Reason: "view is not editable", Identifier: v.identifier()}
	}
	v.row.Deleted = true
	return nil
}

func (v *objectView) IsDeleted() bool  { return v.row.Deleted }
func (v *objectView) IsWritable() bool { return v.row.Writable }

func (v *objectView) IsAccount() bool {
	raw, ok := v.row.Attrs[agent.AttrSAMAccountType]
	if !ok {
		return false
	}
	samType, ok := raw.(int32)
	if !ok {
		return false
	}
	switch samType {
	case agent.SamNormalUserAccount, agent.SamWorkstationTrust, agent.SamServerTrust, agent.SamSecurityGroup:
		return true
	default:
		return false
	}
}

func (v *objectView) IsSecurityPrincipal() bool {
	_, ok := v.row.Attrs[agent.AttrObjectSid]
	return ok
}

func (v *objectView) identifier() string {
	return "dnt=" + strconv.FormatInt(int64(v.row.DNT), 10)
}
