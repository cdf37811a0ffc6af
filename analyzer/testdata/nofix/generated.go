// Code generated by hand. DO NOT EDIT.

package nofix

import "strings"

func generated(s string) string {
	var b strings.Builder
	b.WriteString(s)
	return b.String()
}
