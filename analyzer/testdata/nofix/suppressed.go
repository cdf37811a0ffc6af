//nolint:builderconcat
package nofix

import "strings"

func suppressedFile(s string) string {
	var b strings.Builder
	b.WriteString(s)
	return b.String()
}
