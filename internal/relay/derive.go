package relay

import "strings"

// DeriveDestinationKey maps a source object key to its destination key.
// A key ending in sourceExt (compared case-insensitively) has that suffix
// replaced by targetExt; any other key gets targetExt appended. The result
// depends only on the inputs, so retries always target the same object.
func DeriveDestinationKey(key, sourceExt, targetExt string) string {
	if sourceExt != "" && len(key) >= len(sourceExt) {
		suffix := key[len(key)-len(sourceExt):]
		if strings.EqualFold(suffix, sourceExt) {
			return key[:len(key)-len(sourceExt)] + targetExt
		}
	}
	return key + targetExt
}
