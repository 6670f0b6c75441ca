package client

import "strings"

const fabricScheme = "fabric:/"

// EntityId converts a hierarchical name such as fabric:/app/svc into the form used in REST paths,
// app~svc. Values that are already ids pass through unchanged.
func EntityId(name string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(name), fabricScheme)
	return strings.ReplaceAll(strings.Trim(trimmed, "/"), "/", "~")
}

// EntityName is the inverse of EntityId.
func EntityName(id string) string {
	if strings.HasPrefix(id, fabricScheme) {
		return id
	}

	return fabricScheme + strings.ReplaceAll(id, "~", "/")
}
