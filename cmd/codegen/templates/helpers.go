package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func signalParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("\ts")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" Source[T")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("],\n")
	}
	return sb.String()
}

func peekArgs(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("s")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(".peek()")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
