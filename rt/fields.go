package rt

import (
	"fmt"
	"sort"
	"strings"
)

// Fields carries entity attributes for create and update calls. Values are
// marshaled as-is, so strings, numbers, and nested objects all pass
// through to RT unchanged.
type Fields map[string]any

// Allowed write fields per entity, matching what the RT REST 2.0 endpoints
// accept. Tickets are deliberately absent: ticket writes take arbitrary
// fields plus CF.{...} custom fields.
var (
	queueFields = allow(
		"Name", "Description", "Lifecycle", "SubjectTag",
		"CorrespondAddress", "CommentAddress",
	)

	assetFields = allow(
		"Name", "Description", "Status", "Owner", "HeldBy", "Contact",
	)

	// "Timzone" is RT's own spelling.
	userFields = allow(
		"EmailAddress", "RealName", "NickName", "Gecos", "Lang", "Timzone",
		"FreeformContactInfo", "SetEnabled", "Enabled", "SetPrivileged",
		"CurrentPass", "Pass1", "Pass2", "Organization",
		"Address1", "Address2", "City", "State", "Zip", "Country",
		"HomePhone", "WorkPhone", "MobilePhone", "PagerPhone", "Comments",
	)
)

func allow(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// FieldError reports a field name the target entity does not accept.
type FieldError struct {
	Kind    string
	Field   string
	Allowed []string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("rt: %q is not a valid %s field (valid fields: %s)",
		e.Field, e.Kind, strings.Join(e.Allowed, ", "))
}

// validateFields rejects field names outside the allowed set before any
// request is sent, mirroring the server-side allow-list.
func validateFields(kind string, allowed map[string]struct{}, fields Fields) error {
	for name := range fields {
		if _, ok := allowed[name]; !ok {
			return &FieldError{
				Kind:    kind,
				Field:   name,
				Allowed: sortedNames(allowed),
			}
		}
	}
	return nil
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
